package handler

import (
	"net/http"

	"noticeboard/internal/config"
	"noticeboard/internal/frame"
	"noticeboard/internal/model"
	"noticeboard/internal/notice"
	"noticeboard/internal/render"
	"noticeboard/internal/ticker"

	"github.com/gin-gonic/gin"
)

type TickerHandler struct {
	loader    NoticeLoader
	geometry  ticker.Geometry
	speed     float64
	scheduler *frame.Scheduler
	players   *streams[*ticker.Player]
}

func NewTickerHandler(loader NoticeLoader, d config.Display) *TickerHandler {
	geometry := ticker.Geometry{Viewport: d.TickerViewport, GlyphWidth: d.TickerGlyphWidth}

	return &TickerHandler{
		loader:    loader,
		geometry:  geometry,
		speed:     d.TickerSpeed,
		scheduler: frame.NewScheduler(d.FrameInterval),
		players:   newStreams[*ticker.Player](),
	}
}

func tickerOptions() notice.Options {
	opts := notice.DefaultOptions()
	opts.Type = notice.TypeScrolling
	return opts
}

func toTickerItem(i int, n model.Notice) TickerItemResponse {
	return TickerItemResponse{
		Index: i,
		Date:  n.Date,
		Title: n.Title,
		HTML:  render.InlineHTML(n.Title + " " + n.Date + " " + n.Description),
		Text:  ticker.Text(n),
	}
}

func (h *TickerHandler) emptyResponse() TickerResponse {
	return TickerResponse{
		State:           stateEmpty,
		Items:           []TickerItemResponse{},
		Speed:           h.speed,
		FrameIntervalMS: h.scheduler.Interval().Milliseconds(),
	}
}

func (h *TickerHandler) load(c *gin.Context) ([]model.Notice, bool) {
	notices, err := h.loader.Load(c.Request.Context(), tickerOptions())
	if err != nil {
		writeLoadError(c, "ticker", err)
		return nil, false
	}
	return notices, true
}

func (h *TickerHandler) GetTicker(c *gin.Context) {
	notices, ok := h.load(c)
	if !ok {
		return
	}

	res := h.emptyResponse()
	if len(notices) > 0 {
		res.State = stateOK
	}

	for i, n := range notices {
		res.Items = append(res.Items, toTickerItem(i, n))
	}

	c.JSON(http.StatusOK, res)
}

// StreamTicker plays the ticker for one client. The first event, "stream",
// carries the id used to pause and resume it; after that an "advance" event
// is sent each time a new notice enters the bar. A ticker with nothing to
// show answers with the empty state instead of a stream.
func (h *TickerHandler) StreamTicker(c *gin.Context) {
	ctx := c.Request.Context()

	notices, ok := h.load(c)
	if !ok {
		return
	}

	player := ticker.NewPlayer(notices, h.geometry, h.speed, h.scheduler)
	if !player.Start(ctx) {
		c.JSON(http.StatusOK, h.emptyResponse())
		return
	}
	defer player.Stop()

	id := h.players.add(player)
	defer h.players.remove(id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.SSEvent("stream", StreamResponse{ID: id})
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-player.Events():
			c.SSEvent("advance", toTickerItem(ev.Index, ev.Notice))
			c.Writer.Flush()
		}
	}
}

// PauseTicker freezes a running stream in place, as when the visitor
// hovers over the bar.
func (h *TickerHandler) PauseTicker(c *gin.Context) {
	player, ok := h.players.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}

	player.Pause()
	c.Status(http.StatusNoContent)
}

func (h *TickerHandler) ResumeTicker(c *gin.Context) {
	player, ok := h.players.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}

	player.Resume()
	c.Status(http.StatusNoContent)
}
