package main

import (
	"context"
	"log/slog"
	"os"

	"noticeboard/db"
	"noticeboard/internal/config"
	"noticeboard/internal/report"
	"noticeboard/internal/repository"

	"github.com/spf13/cobra"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	var (
		format string
		limit  int
	)

	rootCmd := &cobra.Command{
		Use:   "fetcher [notices|ticker|gallery|slides|all]",
		Short: "Load the notice board sources once and print what visitors would see",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			component := "notices"
			if len(args) == 1 {
				component = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			reporters := report.Multi{report.LogReporter{}}
			if cfg.RedisURL != "" {
				if err := db.ConnectRedis(cmd.Context(), cfg.RedisURL); err != nil {
					slog.Error("error connecting to Redis, reports will only be logged", "error", err)
				} else {
					defer db.CloseRedis()
					reporters = append(reporters, repository.NewReportQueue())
				}
			}

			f := newFetcher(cfg, reporters, cmd.OutOrStdout())
			return f.run(cmd.Context(), component, format, limit)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&format, "format", formatJSON, "output format for notices: json or csv")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "maximum notices to print, 0 for all")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
