// Package service runs the bias index pipeline: load records, compute weekly
// and seasonal indices, and hand the season table to a renderer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/biasindex/internal/adapters/source"
	"github.com/okian/biasindex/internal/domain/bias"
	"github.com/okian/biasindex/internal/domain/model"
	"github.com/okian/biasindex/internal/domain/ranking"
	"github.com/okian/biasindex/pkg/logger"
)

// Renderer receives the season table at the end of a run.
type Renderer interface {
	Render(ctx context.Context, seasons []model.SeasonSummary) error
}

// Recorder receives run metrics. pkg/metrics.Manager implements it.
type Recorder interface {
	RecordRecordsLoaded(n int)
	RecordWeekProcessed()
	RecordWeekSkipped()
	RecordDegenerate(rule, kind string)
	ObserveComputeDuration(d time.Duration)
	ObserveRenderDuration(d time.Duration)
	SetSeasonIndex(season int, rule string, value float64)
	MarkRunCompleted(t time.Time)
}

// ErrNoSource is returned by Run when the service has no source.
var ErrNoSource = errors.New("no record source configured")

// Report is the outcome of a run.
type Report struct {
	Weekly  []model.WeeklyIndex
	Seasons []model.SeasonSummary
	Stats   Stats
}

// Service wires a source, the calculation and a renderer together.
type Service struct {
	source    source.Source
	renderer  Renderer
	recorder  Recorder
	tieMethod ranking.TieMethod
	logger    logger.Logger
	now       func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets where records come from.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithRenderer sets the sink for the season table. Without one, Run computes
// and logs but draws nothing.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithTieMethod overrides min tie ranking.
func WithTieMethod(m ranking.TieMethod) Option {
	return func(s *Service) { s.tieMethod = m }
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with min tie ranking and no metrics.
func New(opts ...Option) *Service {
	s := &Service{
		recorder:  nopRecorder{},
		tieMethod: ranking.TieMin,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s.logger
}

// Run loads records, computes the weekly and season tables, records metrics
// and renders. An empty input is not an error.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}
	log := s.log()

	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	s.recorder.RecordRecordsLoaded(len(records))
	log.Info(ctx, "records loaded", logger.Int("records", len(records)))

	report := s.Compute(ctx, records)

	if s.renderer != nil {
		start := s.now()
		if err := s.renderer.Render(ctx, report.Seasons); err != nil {
			return report, fmt.Errorf("render: %w", err)
		}
		s.recorder.ObserveRenderDuration(s.now().Sub(start))
	}

	s.recorder.MarkRunCompleted(s.now())
	return report, nil
}

// Compute runs the calculation over records and logs the season table.
func (s *Service) Compute(ctx context.Context, records []model.WeeklyRecord) *Report {
	log := s.log()
	start := s.now()

	weekly, stats := ComputeWeekly(records, s.tieMethod)
	seasons := Summarize(weekly)

	s.recorder.ObserveComputeDuration(s.now().Sub(start))
	for i := 0; i < len(weekly); i++ {
		s.recorder.RecordWeekProcessed()
	}
	for i := 0; i < stats.WeeksSkipped; i++ {
		s.recorder.RecordWeekSkipped()
	}
	for rule, kinds := range stats.Degenerate {
		for kind, n := range kinds {
			for i := 0; i < n; i++ {
				s.recorder.RecordDegenerate(rule.String(), kind.String())
			}
		}
	}

	for _, w := range weekly {
		log.Debug(ctx, "week computed",
			logger.Int("season", w.Season),
			logger.Int("week", w.Week),
			logger.Int("contestants", w.Contestants),
			logger.Float64("i_ranking", w.Ranking),
			logger.Float64("i_percent", w.Percent),
		)
	}
	for _, ss := range seasons {
		s.recorder.SetSeasonIndex(ss.Season, bias.RuleRanking.String(), ss.Ranking)
		s.recorder.SetSeasonIndex(ss.Season, bias.RulePercentage.String(), ss.Percent)
		log.Info(ctx, "season summary",
			logger.Int("season", ss.Season),
			logger.Int("weeks", ss.Weeks),
			logger.Float64("i_ranking", ss.Ranking),
			logger.String("ranking_leans", bias.Lean(ss.Ranking).String()),
			logger.Float64("i_percent", ss.Percent),
			logger.String("percent_leans", bias.Lean(ss.Percent).String()),
		)
	}
	log.Info(ctx, "bias index computed",
		logger.Int("weeks", len(weekly)),
		logger.Int("weeks_skipped", stats.WeeksSkipped),
		logger.Int("seasons", len(seasons)),
		logger.String("tie_method", s.tieMethod.String()),
	)

	return &Report{Weekly: weekly, Seasons: seasons, Stats: stats}
}

type nopRecorder struct{}

func (nopRecorder) RecordRecordsLoaded(int)              {}
func (nopRecorder) RecordWeekProcessed()                 {}
func (nopRecorder) RecordWeekSkipped()                   {}
func (nopRecorder) RecordDegenerate(string, string)      {}
func (nopRecorder) ObserveComputeDuration(time.Duration) {}
func (nopRecorder) ObserveRenderDuration(time.Duration)  {}
func (nopRecorder) SetSeasonIndex(int, string, float64)  {}
func (nopRecorder) MarkRunCompleted(time.Time)           {}
