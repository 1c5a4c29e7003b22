package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/channelscope/channelscope/client"
	"github.com/channelscope/channelscope/config"
	"github.com/channelscope/channelscope/metrics"
	"github.com/channelscope/channelscope/pipeline"
	"github.com/channelscope/channelscope/report"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}
}

func newRootCommand() *cobra.Command {
	var (
		maxVideos  int
		bestEffort bool
		pdfPath    string
		csvPath    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "channelscope <channel-url-or-id>",
		Short: "Analyze a YouTube channel's public catalog",
		Long: "channelscope ingests a channel's uploads via the YouTube Data API, " +
			"normalizes them into a uniform dataset, and derives engagement, " +
			"virality, revenue-estimate, and trend metrics.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-videos") {
				cfg.MaxVideos = maxVideos
			}
			if cmd.Flags().Changed("best-effort") {
				cfg.BestEffort = bestEffort
			}
			if pdfPath != "" {
				cfg.PDFPath = pdfPath
			}
			if csvPath != "" {
				cfg.CSVPath = csvPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			setupLogging(cfg.LogLevel)
			return run(cmd, args[0], cfg)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&maxVideos, "max-videos", config.DefaultMaxVideos, "maximum catalog entries to ingest")
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "keep partial results when a later page or batch fails")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF report to this path")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write a CSV export to this path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "zerolog level (debug, info, warn, error)")

	return cmd
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func run(cmd *cobra.Command, reference string, cfg *config.Config) error {
	ctx := cmd.Context()

	c, err := client.NewDataAPIClient(cfg.APIKey)
	if err != nil {
		return err
	}
	if err := c.Connect(ctx); err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, c, reference, cfg)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), result)

	if cfg.PDFPath != "" {
		if err := report.WritePDF(cfg.PDFPath, result.Summary); err != nil {
			return err
		}
	}
	if cfg.CSVPath != "" {
		f, err := os.Create(cfg.CSVPath)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, result.Dataset); err != nil {
			return err
		}
		log.Info().Str("path", cfg.CSVPath).Msg("Wrote CSV export")
	}

	return nil
}

func printSummary(w io.Writer, result *pipeline.Result) {
	s := result.Summary

	fmt.Fprintf(w, "\nChannel: %s\n", s.DisplayName)
	fmt.Fprintf(w, "  Videos analyzed:  %d\n", s.TotalVideos)
	fmt.Fprintf(w, "  Total views:      %s\n", report.FormatCount(s.TotalViews))
	fmt.Fprintf(w, "  Subscribers:      %s\n", report.SubscriberDisplay(s.Subscribers))
	fmt.Fprintf(w, "  Avg views:        %s\n", report.FormatCount(int64(s.AverageViews)))
	fmt.Fprintf(w, "  Avg engagement:   %.2f%%\n", s.AverageEngagement)
	fmt.Fprintf(w, "  Top video:        %s (%s views)\n", s.TopVideoTitle, report.FormatCount(s.TopVideoViews))

	shorts, long := metrics.ShortsVsLong(result.Dataset)
	fmt.Fprintf(w, "\nShorts vs Long:\n")
	fmt.Fprintf(w, "  Shorts: %d videos, %s avg views\n", shorts.Count, report.FormatCount(int64(shorts.MeanViews)))
	fmt.Fprintf(w, "  Long:   %d videos, %s avg views\n", long.Count, report.FormatCount(int64(long.MeanViews)))

	if avg, band, err := metrics.AverageViralScore(result.Dataset); err == nil {
		fmt.Fprintf(w, "\nAvg viral score: %.2f (%s)\n", avg, band)
	}

	if stages, err := metrics.Funnel(result.Dataset); err == nil {
		fmt.Fprintf(w, "\nPerformance funnel:\n")
		for _, stage := range stages {
			fmt.Fprintf(w, "  %-20s %d\n", stage.Name, stage.Count)
		}
	}

	if m, err := metrics.Correlations(result.Dataset); err == nil {
		if f1, f2, r := m.StrongestPair(); f1 != "" {
			fmt.Fprintf(w, "\nStrongest relationship: %s and %s (r=%.2f)\n", f1, f2, r)
		}
	}

	if rev, err := metrics.Revenue(result.Dataset); err == nil {
		fmt.Fprintf(w, "\nEstimated revenue (heuristic):\n")
		fmt.Fprintf(w, "  Highest: $%.2f (%s)\n", rev.Top.EstimatedRevenue, truncateTitle(rev.Top.Title))
		fmt.Fprintf(w, "  Average: $%.2f per video\n", rev.Average)
	}
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 45 {
		return title
	}
	return string(runes[:45]) + "..."
}
