// Command ingest is the tennis data ETL CLI.
//
// Usage:
//
//	tennis-ingest run
//	tennis-ingest run --start 2000 --end 2024
//	tennis-ingest run --dry-run
//	tennis-ingest verify
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/client"
	"github.com/albapepper/tennis-data/internal/config"
	"github.com/albapepper/tennis-data/internal/etl"
	"github.com/albapepper/tennis-data/internal/metrics"
	"github.com/albapepper/tennis-data/internal/provider/sackmann"
)

var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "tennis-ingest",
		Short: "ATP match data ETL",
	}

	root.AddCommand(runCmd())
	root.AddCommand(verifyCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	var startYear, endYear int
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rebuild the artifact set from the upstream CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(ctx context.Context, cfg *config.Config) error {
				if cmd.Flags().Changed("start") {
					cfg.StartYear = startYear
				}
				if cmd.Flags().Changed("end") {
					cfg.EndYear = endYear
				}
				if cfg.StartYear > cfg.EndYear {
					return fmt.Errorf("--start (%d) must not be after --end (%d)", cfg.StartYear, cfg.EndYear)
				}

				store, err := openStore(cfg)
				if err != nil {
					return err
				}
				m := metrics.NewPipeline()
				p := etl.New(openSource(cfg), artifact.NewWriter(store, cfg.PruneStalePartitions, logger), etl.Options{
					Years:     cfg.Years(),
					BatchSize: cfg.FetchBatchSize,
				}, m, logger)

				logger.Info("Starting pipeline",
					"start_year", cfg.StartYear, "end_year", cfg.EndYear,
					"batch_size", cfg.FetchBatchSize, "dry_run", dryRun)

				if dryRun {
					_, result, err := p.Build(ctx)
					if err != nil {
						return err
					}
					logger.Info("Dry run finished, nothing written", "summary", result.Summary())
					return nil
				}

				result, err := p.Run(ctx)
				if err != nil {
					logger.Error("Pipeline failed", "error", err)
					return err
				}
				for _, e := range result.Errors {
					logger.Warn("pipeline error", "error", e)
				}
				if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
					logger.Warn("Failed to write metrics textfile", "path", cfg.MetricsTextfile, "error", err)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&startYear, "start", config.DefaultStartYear, "First year to fetch")
	cmd.Flags().IntVar(&endYear, "end", config.DefaultEndYear, "Last year to fetch")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch and aggregate without writing artifacts")
	return cmd
}

// --------------------------------------------------------------------------
// verify command
// --------------------------------------------------------------------------

func verifyCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a published artifact set for internal consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(func(ctx context.Context, cfg *config.Config) error {
				if baseURL == "" {
					baseURL = cfg.ArtifactBaseURL
				}

				var fetcher client.Fetcher
				if baseURL != "" {
					fetcher = client.NewHTTPFetcher(baseURL, cfg.FetchTimeout, logger)
				} else {
					store, err := openStore(cfg)
					if err != nil {
						return err
					}
					fetcher = client.NewStoreFetcher(store)
				}

				start := time.Now()
				report, err := client.NewLoader(fetcher, nil).Verify(ctx)
				if err != nil {
					return fmt.Errorf("load artifacts: %w", err)
				}
				logger.Info("Verify finished",
					"partitions", report.Partitions, "matches", report.Matches,
					"violations", len(report.Violations),
					"duration", time.Since(start).Round(time.Millisecond))
				for _, v := range report.Violations {
					logger.Error("violation", "detail", v)
				}
				if !report.OK() {
					return fmt.Errorf("%d consistency violations", len(report.Violations))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "Artifact base URL (defaults to ARTIFACT_BASE_URL, else the configured store)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// withConfig handles config loading, log level, and context cancellation.
func withConfig(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logLevel.Set(slog.LevelDebug)
	}
	return fn(ctx, cfg)
}

// openSource picks the local mirror when SOURCE_DIR is set, else the remote.
func openSource(cfg *config.Config) *sackmann.ATPHandler {
	if cfg.SourceDir != "" {
		logger.Info("Reading source files from local mirror", "dir", cfg.SourceDir)
		return sackmann.NewATPHandler(sackmann.NewDirSource(cfg.SourceDir), logger)
	}
	c := sackmann.NewClient(cfg.SourceBaseURL, cfg.FetchRequestsPerMinute, cfg.FetchBatchSize, cfg.FetchTimeout, logger)
	return sackmann.NewATPHandler(c, logger)
}

// openStore picks S3 when ARTIFACT_S3_BUCKET is set, else OUTPUT_DIR.
func openStore(cfg *config.Config) (artifact.Store, error) {
	if cfg.UsesS3() {
		s, err := artifact.NewS3Store(cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("open s3 store: %w", err)
		}
		return s, nil
	}
	return artifact.NewFileStore(cfg.OutputDir), nil
}
