package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/okian/biasindex/internal/domain/model"
	"github.com/okian/biasindex/pkg/logger"
)

// Constants for contestant generation.
const (
	skillMean        = 0.7
	skillSpread      = 0.15
	popularitySpread = 0.8
	formSpread       = 0.08
	fanFormSpread    = 0.3
	totalVotesMin    = 500_000
	totalVotesRange  = 1_500_000
)

type contestant struct {
	id         string
	skill      float64 // 0..1, drives judge scores
	popularity float64 // log-scale fan appeal
}

// Row is a generated record with its contestant ID.
type Row struct {
	model.WeeklyRecord
	Contestant string
}

// Generate produces rows for c.Seasons seasons. Each week eliminates the
// contestant with the worst combined rank, so the last week of a season has a
// single contestant and is the singleton week the calculator skips.
func Generate(ctx context.Context, c Config) ([]Row, error) {
	if c.Seasons <= 0 || c.Contestants < 2 {
		return nil, fmt.Errorf("sampledata: need at least one season and two contestants, got %d and %d", c.Seasons, c.Contestants)
	}
	rng := rand.New(rand.NewSource(c.Seed)) //nolint:gosec // deterministic seed for reproducible datasets

	var rows []Row
	for season := 1; season <= c.Seasons; season++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cast, err := newCast(rng, c.Contestants)
		if err != nil {
			return nil, err
		}
		for week := 1; len(cast) > 0; week++ {
			weekRows := playWeek(rng, season, week, cast)
			rows = append(rows, weekRows...)
			cast = eliminate(cast, weekRows)
		}
	}
	logger.Get().Debug(ctx, "sample data generated", logger.Int("rows", len(rows)), logger.Int("seasons", c.Seasons))
	return rows, nil
}

func newCast(rng *rand.Rand, n int) ([]contestant, error) {
	cast := make([]contestant, n)
	for i := range cast {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("sampledata: contestant id: %w", err)
		}
		cast[i] = contestant{
			id:         id.String(),
			skill:      clamp(skillMean+rng.NormFloat64()*skillSpread, 0.2, 1),
			popularity: rng.NormFloat64() * popularitySpread,
		}
	}
	return cast, nil
}

func playWeek(rng *rand.Rand, season, week int, cast []contestant) []Row {
	appeal := make([]float64, len(cast))
	var total float64
	for i, c := range cast {
		appeal[i] = math.Exp(c.popularity + rng.NormFloat64()*fanFormSpread)
		total += appeal[i]
	}
	votes := totalVotesMin + rng.Float64()*totalVotesRange

	rows := make([]Row, len(cast))
	for i, c := range cast {
		var judge float64
		for j := 0; j < judgesPerWeek; j++ {
			mark := math.Round(clamp(c.skill+rng.NormFloat64()*formSpread, 0.1, 1) * maxJudgeMark)
			judge += mark
		}
		rows[i] = Row{
			WeeklyRecord: model.WeeklyRecord{
				Season:     season,
				Week:       week,
				JudgeScore: judge,
				FanVote:    math.Round(votes * appeal[i] / total),
			},
			Contestant: c.id,
		}
	}
	return rows
}

// eliminate drops the contestant with the lowest judge score, breaking
// near ties on the fan vote.
func eliminate(cast []contestant, rows []Row) []contestant {
	if len(cast) <= 1 {
		return nil
	}
	order := make([]int, len(cast))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := rows[order[a]], rows[order[b]]
		return ra.JudgeScore+ra.FanVote/1e5 < rb.JudgeScore+rb.FanVote/1e5
	})
	out := make([]contestant, 0, len(cast)-1)
	for i, c := range cast {
		if i != order[0] {
			out = append(out, c)
		}
	}
	return out
}

// Write encodes rows as CSV with a header built from c.
func Write(w io.Writer, c Config, rows []Row) error {
	cw := csv.NewWriter(w)
	header := []string{c.Columns.Season, c.Columns.Week}
	if c.NameColumn != "" {
		header = append(header, c.NameColumn)
	}
	header = append(header, c.Columns.Judge, c.Columns.Fan)
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, 0, len(header))
	for _, r := range rows {
		rec = rec[:0]
		rec = append(rec, strconv.Itoa(r.Season), strconv.Itoa(r.Week))
		if c.NameColumn != "" {
			rec = append(rec, r.Contestant)
		}
		rec = append(rec,
			strconv.FormatFloat(r.JudgeScore, 'f', -1, 64),
			strconv.FormatFloat(r.FanVote, 'f', -1, 64),
		)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile generates a dataset and writes it to path.
func WriteFile(ctx context.Context, path string, c Config) (int, error) {
	rows, err := Generate(ctx, c)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	if err := Write(f, c, rows); err != nil {
		_ = f.Close()
		return 0, err
	}
	return len(rows), f.Close()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
