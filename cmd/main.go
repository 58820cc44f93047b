// Command bias-index computes the weekly judge/fan bias index of a dance
// competition dataset under the ranking and percentage rules and saves a
// per-season comparison chart.
//
// Usage:
//
//	bias-index [input.csv]
//
// Configuration is read from BIAS_* environment variables and the optional
// YAML file named by BIAS_CONFIG.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/okian/biasindex/internal/adapters/render"
	"github.com/okian/biasindex/internal/adapters/source"
	app "github.com/okian/biasindex/internal/app"
	"github.com/okian/biasindex/internal/config"
	"github.com/okian/biasindex/internal/domain/ranking"
	"github.com/okian/biasindex/pkg/logger"
	"github.com/okian/biasindex/pkg/metrics"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := logger.Init(logger.WithWriter(stderr)); err != nil {
		_, _ = io.WriteString(stderr, "failed to initialize logging: "+err.Error()+"\n")
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		_, _ = io.WriteString(stderr, "failed to load config: "+err.Error()+"\n")
		return exitFailure
	}
	if len(args) > 0 && args[0] != "" {
		cfg.InputPath = args[0]
	}

	if cfg.LogJSON {
		_ = logger.Init(logger.WithWriter(stderr), logger.WithJSON(true))
	}
	runID := uuid.NewString()
	log := logger.Get().With(logger.String("run_id", runID))
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Validated by config.Load.
	tie, _ := ranking.ParseTieMethod(cfg.TieMethod)

	m := metrics.NewManager(metrics.WithConstLabels(map[string]string{"run_id": runID}))
	chart := render.NewChart(cfg.OutputPath,
		render.WithSize(cfg.ChartWidthIn, cfg.ChartHeightIn),
		render.WithDPI(cfg.ChartDPI),
	)
	svc := app.New(
		app.WithSource(source.NewCSV(cfg.InputPath, source.WithColumns(source.Columns{
			Season: cfg.SeasonColumn,
			Week:   cfg.WeekColumn,
			Judge:  cfg.JudgeColumn,
			Fan:    cfg.FanColumn,
		}))),
		app.WithRenderer(chart),
		app.WithRecorder(m),
		app.WithTieMethod(tie),
		app.WithLogger(log.Named("calculator")),
	)

	log.Info(ctx, "starting run", logger.String("input", cfg.InputPath), logger.String("output", cfg.OutputPath))
	if _, err := svc.Run(ctx); err != nil {
		if errors.Is(err, source.ErrNotFound) {
			_, _ = io.WriteString(stderr, "File not found: "+cfg.InputPath+"\n")
			return exitFailure
		}
		log.Error(ctx, "run failed", logger.Error(err))
		return exitFailure
	}

	if cfg.MetricsPath != "" {
		if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
			log.Error(ctx, "failed to write metrics", logger.String("path", cfg.MetricsPath), logger.Error(err))
			return exitFailure
		}
		log.Info(ctx, "metrics written", logger.String("path", cfg.MetricsPath))
	}

	_, _ = io.WriteString(stdout, "Plot saved to "+cfg.OutputPath+"\n")
	return exitOK
}
