package model

import "time"

const (
	ComponentNotices = "notices"
	ComponentTicker  = "ticker"
	ComponentGallery = "gallery"
	ComponentSlides  = "slides"
)

const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeNetworkFailure = "network_failure"
	OutcomeMalformedInput = "malformed_input"
)

// LoadReport describes the outcome of one load of a display component.
type LoadReport struct {
	ID        string    `json:"id"`
	Component string    `json:"component"`
	Outcome   string    `json:"outcome"`
	Rows      int       `json:"rows"`
	Skipped   int       `json:"skipped"`
	Hidden    int       `json:"hidden"`
	Eligible  int       `json:"eligible"`
	Error     string    `json:"error,omitempty"`
	LoadedAt  time.Time `json:"loaded_at"`
}
