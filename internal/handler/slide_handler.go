package handler

import (
	"net/http"
	"time"

	"noticeboard/internal/carousel"
	"noticeboard/internal/model"
	"noticeboard/internal/render"

	"github.com/gin-gonic/gin"
)

type SlideHandler struct {
	loader   ImageLoader
	duration time.Duration
	rotators *streams[*carousel.Rotator]
}

func NewSlideHandler(loader ImageLoader, duration time.Duration) *SlideHandler {
	return &SlideHandler{
		loader:   loader,
		duration: duration,
		rotators: newStreams[*carousel.Rotator](),
	}
}

func (h *SlideHandler) slidesResponse(images []model.Image) SlidesResponse {
	res := SlidesResponse{
		State:      stateOK,
		Slides:     toImageResponses(images),
		DurationMS: h.duration.Milliseconds(),
	}
	if len(images) == 0 {
		res.State = stateEmpty
		res.Message = render.MessageText(render.MessageNoSlides)
	}
	return res
}

func (h *SlideHandler) GetSlides(c *gin.Context) {
	images, ok := loadImages(c, h.loader, model.ComponentSlides)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.slidesResponse(images))
}

// StreamSlides rotates a carousel for one client. The first event, "stream",
// carries the id used to jump to a slide; then a "slide" event shows slide
// 0 with no effect and one more follows per transition. With fewer than two
// slides there is nothing to rotate and the slide list is returned instead.
func (h *SlideHandler) StreamSlides(c *gin.Context) {
	ctx := c.Request.Context()

	images, ok := loadImages(c, h.loader, model.ComponentSlides)
	if !ok {
		return
	}

	rotator := carousel.NewRotator(carousel.New(len(images), nil), h.duration)
	if !rotator.Start(ctx) {
		c.JSON(http.StatusOK, h.slidesResponse(images))
		return
	}
	defer rotator.Stop()

	id := h.rotators.add(rotator)
	defer h.rotators.remove(id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	c.SSEvent("stream", StreamResponse{ID: id})
	c.SSEvent("slide", TransitionResponse{})
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-rotator.Transitions():
			c.SSEvent("slide", TransitionResponse{
				From:  t.From,
				To:    t.To,
				Enter: t.Effect.Enter,
				Exit:  t.Effect.Exit,
			})
			c.Writer.Flush()
		}
	}
}

// GoToSlide jumps a running stream to slide index, as a click on its dot
// does, and restarts the rotation interval.
func (h *SlideHandler) GoToSlide(c *gin.Context) {
	rotator, ok := h.rotators.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}

	index, ok := getParamIndex("index", c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide index"})
		return
	}

	if index >= rotator.Len() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slide not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": rotator.GoTo(index)})
}
