package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"noticeboard/internal/model"
	"noticeboard/internal/notice"
	"noticeboard/internal/render"

	"github.com/gin-gonic/gin"
)

type NoticeLoader interface {
	Load(ctx context.Context, opts notice.Options) ([]model.Notice, error)
}

// NoticeHandler serves the notice board both as JSON and as the HTML
// fragments the site drops into its containers. Every request reads the
// sheet again.
type NoticeHandler struct {
	loader    NoticeLoader
	renderer  *render.Renderer
	homeCount int
}

func NewNoticeHandler(loader NoticeLoader, renderer *render.Renderer, homeCount int) *NoticeHandler {
	return &NoticeHandler{loader: loader, renderer: renderer, homeCount: homeCount}
}

func (h *NoticeHandler) load(c *gin.Context, maxResults int) ([]model.Notice, bool) {
	opts := notice.DefaultOptions()
	opts.MaxResults = maxResults

	notices, err := h.loader.Load(c.Request.Context(), opts)
	if err != nil {
		writeLoadError(c, model.ComponentNotices, err)
		return nil, false
	}
	return notices, true
}

// writeLoadError answers a failed notice load. A sheet that could not be
// fetched or parsed is shown to visitors as the load failure message.
func writeLoadError(c *gin.Context, component string, err error) {
	slog.Error("error loading notices", "component", component, "error", err)

	if !notice.IsLoadFailure(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"state": stateError,
		"error": render.MessageText(render.MessageLoadFailed),
	})
}

func (h *NoticeHandler) toResponse(notices []model.Notice) NoticesResponse {
	res := NoticesResponse{
		State:   stateOK,
		Notices: []NoticeResponse{},
		Total:   len(notices),
		More:    len(notices) > h.homeCount,
	}

	if len(notices) == 0 {
		res.State = stateEmpty
		res.Message = render.MessageText(render.MessageEmpty)
		return res
	}

	for i, n := range notices {
		res.Notices = append(res.Notices, NoticeResponse{
			Position:    i,
			Date:        n.Date,
			Title:       n.Title,
			Summary:     h.renderer.Summary(n),
			Description: n.Description,
			Type:        string(n.Type),
		})
	}
	return res
}

func (h *NoticeHandler) GetNotices(c *gin.Context) {
	limit := getQueryLimit(c, h.homeCount, 0)

	notices, ok := h.load(c, limit)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.toResponse(notices))
}

func (h *NoticeHandler) GetAllNotices(c *gin.Context) {
	notices, ok := h.load(c, 0)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.toResponse(notices))
}

func (h *NoticeHandler) GetNotice(c *gin.Context) {
	position, ok := getParamIndex("position", c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notice position"})
		return
	}

	notices, ok := h.load(c, 0)
	if !ok {
		return
	}

	if position >= len(notices) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
		return
	}

	n := notices[position]
	c.JSON(http.StatusOK, NoticeDetailResponse{
		Position:    position,
		Date:        n.Date,
		Title:       n.Title,
		Description: n.Description,
		Body:        render.FormatText(n.Description),
	})
}

func (h *NoticeHandler) GetNoticesFragment(c *gin.Context) {
	limit := getQueryLimit(c, h.homeCount, 0)
	h.fragment(c, limit, func(buf *bytes.Buffer, notices []model.Notice) error {
		return h.renderer.Summaries(buf, notices)
	})
}

func (h *NoticeHandler) GetArchiveFragment(c *gin.Context) {
	h.fragment(c, 0, func(buf *bytes.Buffer, notices []model.Notice) error {
		return h.renderer.Archive(buf, notices, h.homeCount)
	})
}

func (h *NoticeHandler) GetNoticeFragment(c *gin.Context) {
	position, ok := getParamIndex("position", c)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid notice position")
		return
	}

	h.fragment(c, 0, func(buf *bytes.Buffer, notices []model.Notice) error {
		if position >= len(notices) {
			c.Status(http.StatusNotFound)
			return h.renderer.Message(buf, render.MessageEmpty)
		}
		return h.renderer.Detail(buf, notices[position])
	})
}

// fragment loads the notices and writes the HTML produced by write. Load
// failures are shown as the inline error message.
func (h *NoticeHandler) fragment(c *gin.Context, maxResults int, write func(*bytes.Buffer, []model.Notice) error) {
	opts := notice.DefaultOptions()
	opts.MaxResults = maxResults

	var buf bytes.Buffer
	status := http.StatusOK

	notices, err := h.loader.Load(c.Request.Context(), opts)
	if err != nil {
		slog.Error("error loading notices", "component", model.ComponentNotices, "error", err)
		status = http.StatusBadGateway
		if !notice.IsLoadFailure(err) {
			status = http.StatusInternalServerError
		}
		err = h.renderer.Message(&buf, render.MessageLoadFailed)
	} else {
		err = write(&buf, notices)
		if c.Writer.Status() != http.StatusOK {
			status = c.Writer.Status()
		}
	}

	if err != nil {
		slog.Error("error rendering notices", "error", err)
		c.String(http.StatusInternalServerError, "Render error")
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
