package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"task-scheduler/config"
	"task-scheduler/internal/ciperf"
	"task-scheduler/pkg/ghactions"
	"task-scheduler/pkg/log"
)

func main() {
	mock := flag.Bool("mock", false, "use generated data instead of the GitHub API")
	quiet := flag.Bool("quiet", false, "minimal output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	if err := run(ctx, logger, cfg, *mock, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "Performance analysis failed:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log.Logger, cfg *config.Config, mock, quiet bool) error {
	th := thresholdsFromConfig(cfg.CIPerf)

	var analyses []ciperf.RunAnalysis
	if mock {
		if !quiet {
			fmt.Println("Using generated run data (offline mode)")
		}
		analyses = ciperf.MockRuns(20)
	} else {
		client := ghactions.NewClient(cfg.CIPerf.Owner, cfg.CIPerf.Repo, cfg.CIPerf.Token)
		collector := ciperf.NewCollector(client, logger, cfg.CIPerf.Workflow, th)

		var err error
		analyses, err = collector.Collect(ctx)
		if err != nil {
			return err
		}
	}

	summary := ciperf.Summarize(analyses, th)

	store := ciperf.NewStore(cfg.CIPerf.ReportsDir)
	if err := store.Save(summary, analyses); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if !quiet {
		printSummary(summary)
	}

	if summary.HasCriticalAlert() {
		return fmt.Errorf("critical alert raised, see %s", cfg.CIPerf.ReportsDir)
	}

	return nil
}

// thresholdsFromConfig fills unset threshold values with the defaults.
func thresholdsFromConfig(cfg config.CIPerfConfig) ciperf.Thresholds {
	th := ciperf.DefaultThresholds()
	if cfg.TotalTimeSeconds > 0 {
		th.TotalTime = cfg.TotalTimeSeconds
	}
	if cfg.CacheHitRate > 0 {
		th.CacheHitRate = cfg.CacheHitRate
	}
	if cfg.DegradationPercent > 0 {
		th.DegradationPercent = cfg.DegradationPercent
	}
	return th
}

func printSummary(s ciperf.Summary) {
	fmt.Println()
	fmt.Println("PERFORMANCE SUMMARY")
	fmt.Println("===================")
	fmt.Printf("Total runs analyzed: %d\n", s.TotalRuns)
	fmt.Printf("Average duration: %.1f minutes\n", s.AvgDurationMinutes)
	fmt.Printf("Cache hit rate: %.1f%%\n", s.AvgCacheHitRate)
	fmt.Printf("Optimal runs: %d/%d (%d%%)\n", s.OptimalRuns, s.TotalRuns, s.OptimalRate)
	fmt.Printf("Performance trend: %s\n", s.Trend)

	if len(s.Alerts) == 0 {
		fmt.Println("\nNo performance alerts")
		return
	}

	fmt.Println("\nALERTS")
	for _, a := range s.Alerts {
		fmt.Printf("[%s] %s\n", a.Severity, a.Message)
	}
}
