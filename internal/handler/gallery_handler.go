package handler

import (
	"context"
	"log/slog"
	"net/http"

	"noticeboard/internal/carousel"
	"noticeboard/internal/gallery"
	"noticeboard/internal/model"
	"noticeboard/internal/render"

	"github.com/gin-gonic/gin"
)

type ImageLoader interface {
	Load(ctx context.Context) ([]model.Image, error)
}

type GalleryHandler struct {
	loader ImageLoader
	pager  gallery.Pager
	picker *carousel.Picker
}

func NewGalleryHandler(loader ImageLoader, perLoad int, picker *carousel.Picker) *GalleryHandler {
	if picker == nil {
		picker = carousel.NewPicker(carousel.EnterClasses(), nil)
	}
	return &GalleryHandler{
		loader: loader,
		pager:  gallery.NewPager(perLoad),
		picker: picker,
	}
}

func toImageResponses(images []model.Image) []ImageResponse {
	res := make([]ImageResponse, len(images))
	for i, img := range images {
		res[i] = ImageResponse{Index: i, Src: img.Src, Alt: img.Alt}
	}
	return res
}

func loadImages(c *gin.Context, loader ImageLoader, component string) ([]model.Image, bool) {
	images, err := loader.Load(c.Request.Context())
	if err != nil {
		slog.Error("error loading images", "component", component, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"state": stateError,
			"error": render.MessageText(render.MessageNoImages),
		})
		return nil, false
	}
	return images, true
}

// GetGallery returns the first visible images. The client sends back the
// count it shows now, already moved by one load more or show less step.
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	images, ok := loadImages(c, h.loader, model.ComponentGallery)
	if !ok {
		return
	}

	total := len(images)
	if total == 0 {
		c.JSON(http.StatusOK, GalleryResponse{
			State:   stateEmpty,
			Message: render.MessageText(render.MessageNoImages),
			Images:  []ImageResponse{},
			PerLoad: h.pager.PerLoad,
		})
		return
	}

	visible := h.pager.Initial(total)
	if c.Query("visible") != "" {
		visible = h.pager.Clamp(getQueryInt("visible", visible, c), total)
	}

	c.JSON(http.StatusOK, GalleryResponse{
		State:       stateOK,
		Images:      toImageResponses(images[:visible]),
		Visible:     visible,
		Total:       total,
		PerLoad:     h.pager.PerLoad,
		CanLoadMore: h.pager.CanLoadMore(visible, total),
		CanShowLess: h.pager.CanShowLess(visible),
	})
}

// GetLightbox opens image index with an entry animation different from the
// previous one. Prev and Next wrap around.
func (h *GalleryHandler) GetLightbox(c *gin.Context) {
	index, ok := getParamIndex("index", c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image index"})
		return
	}

	images, ok := loadImages(c, h.loader, model.ComponentGallery)
	if !ok {
		return
	}

	total := len(images)
	if index >= total {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	img := images[index]
	c.JSON(http.StatusOK, LightboxResponse{
		Image:     ImageResponse{Index: index, Src: img.Src, Alt: img.Alt},
		Animation: h.picker.Pick(),
		Prev:      (index - 1 + total) % total,
		Next:      (index + 1) % total,
		Total:     total,
	})
}
