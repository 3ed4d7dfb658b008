package handler

const (
	stateOK    = "ok"
	stateEmpty = "empty"
	stateError = "error"
)

type NoticeResponse struct {
	Position    int    `json:"position"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type NoticesResponse struct {
	State   string           `json:"state"`
	Message string           `json:"message,omitempty"`
	Notices []NoticeResponse `json:"notices"`
	Total   int              `json:"total"`
	// More is false when nothing exists beyond the home page notices.
	More bool `json:"more"`
}

type NoticeDetailResponse struct {
	Position    int    `json:"position"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

type TickerItemResponse struct {
	Index int    `json:"index"`
	Date  string `json:"date"`
	Title string `json:"title"`
	HTML  string `json:"html"`
	Text  string `json:"text"`
}

type TickerResponse struct {
	State           string               `json:"state"`
	Items           []TickerItemResponse `json:"items"`
	Speed           float64              `json:"speed"`
	FrameIntervalMS int64                `json:"frame_interval_ms"`
}

type StreamResponse struct {
	ID string `json:"id"`
}

type ImageResponse struct {
	Index int    `json:"index"`
	Src   string `json:"src"`
	Alt   string `json:"alt"`
}

type GalleryResponse struct {
	State       string          `json:"state"`
	Message     string          `json:"message,omitempty"`
	Images      []ImageResponse `json:"images"`
	Visible     int             `json:"visible"`
	Total       int             `json:"total"`
	PerLoad     int             `json:"per_load"`
	CanLoadMore bool            `json:"can_load_more"`
	CanShowLess bool            `json:"can_show_less"`
}

type LightboxResponse struct {
	Image     ImageResponse `json:"image"`
	Animation string        `json:"animation"`
	Prev      int           `json:"prev"`
	Next      int           `json:"next"`
	Total     int           `json:"total"`
}

type SlidesResponse struct {
	State      string          `json:"state"`
	Message    string          `json:"message,omitempty"`
	Slides     []ImageResponse `json:"slides"`
	DurationMS int64           `json:"duration_ms"`
}

type TransitionResponse struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Enter string `json:"enter,omitempty"`
	Exit  string `json:"exit,omitempty"`
}

type ReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type ReportResponse struct {
	ID        string `json:"id"`
	Component string `json:"component"`
	Outcome   string `json:"outcome"`
	Rows      int    `json:"rows"`
	Skipped   int    `json:"skipped"`
	Hidden    int    `json:"hidden"`
	Eligible  int    `json:"eligible"`
	Error     string `json:"error,omitempty"`
	LoadedAt  string `json:"loaded_at"`
}
