package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"noticeboard/db"
	"noticeboard/internal/carousel"
	"noticeboard/internal/config"
	"noticeboard/internal/gallery"
	"noticeboard/internal/handler"
	"noticeboard/internal/model"
	"noticeboard/internal/notice"
	"noticeboard/internal/render"
	"noticeboard/internal/report"
	"noticeboard/internal/repository"
	"noticeboard/pkg/source"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	reporters := report.Multi{report.LogReporter{}}

	if cfg.RedisURL != "" {
		err = db.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		reporters = append(reporters, repository.NewReportQueue())
	}

	var pinger handler.Pinger
	var reportRepo *repository.ReportRepository
	if cfg.DatabaseURL != "" {
		err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		pinger = db.DB
		reportRepo = repository.NewReportRepository(db.DB)

		err = reportRepo.EnsureSchema()
		if err != nil {
			log.Fatalf("error creating schema: %v", err)
		}
	}

	noticeLoader := notice.NewLoader(source.Open(cfg.SheetURL, cfg.FetchTimeout), reporters)
	galleryLoader := gallery.NewLoader(source.Open(cfg.GalleryManifest, cfg.FetchTimeout), model.ComponentGallery, reporters)
	slideLoader := gallery.NewLoader(source.Open(cfg.SlidesManifest, cfg.FetchTimeout), model.ComponentSlides, reporters)

	noticeHandler := handler.NewNoticeHandler(noticeLoader, render.New(cfg.Display.SummaryLength), cfg.Display.HomeNoticeCount)
	tickerHandler := handler.NewTickerHandler(noticeLoader, cfg.Display)
	galleryHandler := handler.NewGalleryHandler(galleryLoader, cfg.Display.ImagesPerLoad, carousel.NewPicker(carousel.EnterClasses(), nil))
	slideHandler := handler.NewSlideHandler(slideLoader, cfg.Display.SlideDuration)
	siteHandler := handler.NewSiteHandler(cfg.Display, pinger)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Cache-Control"},
	}))

	r.GET("/api/notices", noticeHandler.GetNotices)
	r.GET("/api/notices/all", noticeHandler.GetAllNotices)
	r.GET("/api/notices/:position", noticeHandler.GetNotice)
	r.GET("/api/ticker", tickerHandler.GetTicker)
	r.GET("/api/ticker/stream", tickerHandler.StreamTicker)
	r.POST("/api/ticker/stream/:id/pause", tickerHandler.PauseTicker)
	r.POST("/api/ticker/stream/:id/resume", tickerHandler.ResumeTicker)
	r.GET("/api/gallery", galleryHandler.GetGallery)
	r.GET("/api/gallery/lightbox/:index", galleryHandler.GetLightbox)
	r.GET("/api/slides", slideHandler.GetSlides)
	r.GET("/api/slides/stream", slideHandler.StreamSlides)
	r.POST("/api/slides/stream/:id/goto/:index", slideHandler.GoToSlide)
	r.GET("/api/display", siteHandler.GetDisplay)
	r.GET("/fragments/notices", noticeHandler.GetNoticesFragment)
	r.GET("/fragments/notices/all", noticeHandler.GetArchiveFragment)
	r.GET("/fragments/notices/:position", noticeHandler.GetNoticeFragment)
	r.GET("/health", siteHandler.GetHealth)

	if reportRepo != nil {
		r.GET("/reports", handler.NewReportHandler(reportRepo).GetReports)
	}

	err = r.Run(fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
