package handler

import (
	"context"
	"net/http"

	"noticeboard/internal/config"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type SiteHandler struct {
	display config.Display
	db      Pinger
}

// NewSiteHandler serves the display settings and health. db may be nil
// when no database is configured.
func NewSiteHandler(display config.Display, db Pinger) *SiteHandler {
	return &SiteHandler{display: display, db: db}
}

func (h *SiteHandler) GetDisplay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"display":           h.display,
		"frame_interval_ms": h.display.FrameInterval.Milliseconds(),
		"slide_duration_ms": h.display.SlideDuration.Milliseconds(),
	})
}

func (h *SiteHandler) GetHealth(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "disabled",
		})
		return
	}

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
