package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"noticeboard/internal/config"
	"noticeboard/internal/gallery"
	"noticeboard/internal/model"
	"noticeboard/internal/notice"
	"noticeboard/internal/report"
	"noticeboard/pkg/delimited"
	"noticeboard/pkg/source"

	"golang.org/x/sync/errgroup"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type noticeLoader interface {
	Load(ctx context.Context, opts notice.Options) ([]model.Notice, error)
}

type imageLoader interface {
	Load(ctx context.Context) ([]model.Image, error)
}

type fetcher struct {
	notices noticeLoader
	gallery imageLoader
	slides  imageLoader
	out     io.Writer
}

func newFetcher(cfg *config.Config, reporter report.Reporter, out io.Writer) *fetcher {
	return &fetcher{
		notices: notice.NewLoader(source.Open(cfg.SheetURL, cfg.FetchTimeout), reporter),
		gallery: gallery.NewLoader(source.Open(cfg.GalleryManifest, cfg.FetchTimeout), model.ComponentGallery, reporter),
		slides:  gallery.NewLoader(source.Open(cfg.SlidesManifest, cfg.FetchTimeout), model.ComponentSlides, reporter),
		out:     out,
	}
}

func (f *fetcher) run(ctx context.Context, component, format string, limit int) error {
	if format != formatJSON && format != formatCSV {
		return fmt.Errorf("unknown format %q", format)
	}

	switch component {
	case model.ComponentNotices, model.ComponentTicker:
		notices, err := f.notices.Load(ctx, noticeOptions(component, limit))
		if err != nil {
			return err
		}
		return writeNotices(f.out, notices, format)
	case model.ComponentGallery:
		return f.printImages(ctx, f.gallery)
	case model.ComponentSlides:
		return f.printImages(ctx, f.slides)
	case "all":
		return f.summarize(ctx)
	default:
		return fmt.Errorf("unknown component %q", component)
	}
}

func noticeOptions(component string, limit int) notice.Options {
	opts := notice.DefaultOptions()
	opts.MaxResults = limit
	if component == model.ComponentTicker {
		opts.Type = notice.TypeScrolling
	}
	return opts
}

func (f *fetcher) printImages(ctx context.Context, loader imageLoader) error {
	images, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	return enc.Encode(images)
}

// summarize loads every component at once and prints one line each. A
// failed component is reported but does not stop the others.
func (f *fetcher) summarize(ctx context.Context) error {
	type result struct {
		count int
		err   error
	}

	components := []string{model.ComponentNotices, model.ComponentTicker, model.ComponentGallery, model.ComponentSlides}

	var mu sync.Mutex
	results := make(map[string]result, len(components))
	record := func(component string, count int, err error) {
		mu.Lock()
		results[component] = result{count: count, err: err}
		mu.Unlock()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, component := range components {
		eg.Go(func() error {
			switch component {
			case model.ComponentGallery:
				images, err := f.gallery.Load(egCtx)
				record(component, len(images), err)
			case model.ComponentSlides:
				images, err := f.slides.Load(egCtx)
				record(component, len(images), err)
			default:
				notices, err := f.notices.Load(egCtx, noticeOptions(component, 0))
				record(component, len(notices), err)
			}
			return nil
		})
	}
	eg.Wait()

	var failed int
	for _, component := range components {
		r := results[component]
		if r.err != nil {
			failed++
			slog.Error("load failed", "component", component, "error", r.err)
			fmt.Fprintf(f.out, "%-8s failed\n", component)
			continue
		}
		fmt.Fprintf(f.out, "%-8s %d\n", component, r.count)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d components failed to load", failed, len(components))
	}
	return nil
}

func writeNotices(w io.Writer, notices []model.Notice, format string) error {
	if format == formatCSV {
		rows := [][]string{{"date", "title", "description", "status", "type"}}
		for _, n := range notices {
			rows = append(rows, []string{n.Date, n.Title, n.Description, string(n.Status), string(n.Type)})
		}
		_, err := io.WriteString(w, delimited.Format(rows))
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(notices)
}
