// Command sample-data writes a synthetic competition dataset in the layout
// bias-index reads.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/biasindex/internal/adapters/source"
	"github.com/okian/biasindex/internal/config"
	"github.com/okian/biasindex/internal/sampledata"
	"github.com/okian/biasindex/pkg/logger"
)

func main() {
	var (
		output      = flag.String("output", config.DefaultInputPath, "Output CSV file")
		seasons     = flag.Int("seasons", sampledata.DefaultSeasons, "Number of seasons")
		contestants = flag.Int("contestants", sampledata.DefaultContestants, "Contestants in the first week of a season")
		seed        = flag.Int64("seed", sampledata.DefaultSeed, "Random seed")
		names       = flag.Bool("names", true, "Include a contestant ID column")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := sampledata.Config{
		Seasons:     *seasons,
		Contestants: *contestants,
		Seed:        *seed,
		Columns: source.Columns{
			Season: config.DefaultSeasonColumn,
			Week:   config.DefaultWeekColumn,
			Judge:  config.DefaultJudgeColumn,
			Fan:    config.DefaultFanColumn,
		},
	}
	if *names {
		cfg.NameColumn = "选手"
	}

	n, err := sampledata.WriteFile(ctx, *output, cfg)
	if err != nil {
		logger.Get().Error(ctx, "failed to write sample data", logger.Error(err))
		stop()
		os.Exit(1)
	}
	logger.Get().Info(ctx, "sample data written", logger.String("path", *output), logger.Int("rows", n))
}
