package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL"`

	SheetURL        string        `env:"NOTICE_SHEET_URL,required,notEmpty"`
	GalleryManifest string        `env:"GALLERY_MANIFEST" envDefault:"gallery.json"`
	SlidesManifest  string        `env:"SLIDES_MANIFEST" envDefault:"slides.json"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`

	Storage
	Display Display
}

// Storage locates the optional load report stores. Either may be empty.
type Storage struct {
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
}

// Display holds the presentational settings the site reads at start up.
type Display struct {
	HomeNoticeCount    int           `env:"HOME_NOTICE_COUNT" envDefault:"3" json:"home_notice_count"`
	SummaryLength      int           `env:"SUMMARY_LENGTH" envDefault:"100" json:"summary_length"`
	ImagesPerLoad      int           `env:"IMAGES_PER_LOAD" envDefault:"5" json:"images_per_load"`
	TickerSpeed        float64       `env:"TICKER_SPEED" envDefault:"1" json:"ticker_speed"`
	TickerViewport     float64       `env:"TICKER_VIEWPORT" envDefault:"1200" json:"ticker_viewport"`
	TickerGlyphWidth   float64       `env:"TICKER_GLYPH_WIDTH" envDefault:"9" json:"ticker_glyph_width"`
	FrameInterval      time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms" json:"-"`
	SlideDuration      time.Duration `env:"SLIDE_DURATION" envDefault:"5s" json:"-"`
	ParticleCount      int           `env:"PARTICLE_COUNT" envDefault:"80" json:"particle_count"`
	ConnectionDistance float64       `env:"CONNECTION_DISTANCE" envDefault:"120" json:"connection_distance"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadStorage reads only the store locations, for workers that never touch
// the sheet.
func LoadStorage() (*Storage, error) {
	godotenv.Load()

	var s Storage
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}

func (c *Config) validate() error {
	d := c.Display
	switch {
	case d.HomeNoticeCount < 1:
		return fmt.Errorf("HOME_NOTICE_COUNT must be positive, got %d", d.HomeNoticeCount)
	case d.SummaryLength < 1:
		return fmt.Errorf("SUMMARY_LENGTH must be positive, got %d", d.SummaryLength)
	case d.ImagesPerLoad < 1:
		return fmt.Errorf("IMAGES_PER_LOAD must be positive, got %d", d.ImagesPerLoad)
	case d.TickerSpeed <= 0:
		return fmt.Errorf("TICKER_SPEED must be positive, got %v", d.TickerSpeed)
	case d.FrameInterval <= 0 || d.SlideDuration <= 0:
		return fmt.Errorf("FRAME_INTERVAL and SLIDE_DURATION must be positive")
	}
	return nil
}
