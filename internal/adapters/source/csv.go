package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/okian/biasindex/internal/domain/model"
)

const utf8BOM = "\ufeff"

// CSVSource reads records from a CSV file with a header row.
type CSVSource struct {
	path    string
	columns Columns
	comma   rune
}

// NewCSV creates a source for the file at path. Columns default to the
// English headers Season, Week, JudgeScore and FanVote.
func NewCSV(path string, opts ...Option) *CSVSource {
	s := &CSVSource{
		path: path,
		columns: Columns{
			Season: "Season",
			Week:   "Week",
			Judge:  "JudgeScore",
			Fan:    "FanVote",
		},
		comma: ',',
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file the source reads.
func (s *CSVSource) Path() string { return s.path }

// Load opens the file and decodes it. A missing file yields ErrNotFound.
func (s *CSVSource) Load(ctx context.Context) ([]model.WeeklyRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.Decode(ctx, f)
}

// Decode reads records from r. Rows must carry a season and week that parse
// as integers and a judge score and fan vote that are finite and non-negative.
func (s *CSVSource) Decode(ctx context.Context, r io.Reader) ([]model.WeeklyRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = s.comma
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := s.index(header)
	if err != nil {
		return nil, err
	}

	var records []model.WeeklyRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec, err := s.parse(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

type columnIndex struct {
	season, week, judge, fan int
}

func (s *CSVSource) index(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		// Duplicate headers resolve to the first occurrence.
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}
	find := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.season, err = find(s.columns.Season); err != nil {
		return idx, err
	}
	if idx.week, err = find(s.columns.Week); err != nil {
		return idx, err
	}
	if idx.judge, err = find(s.columns.Judge); err != nil {
		return idx, err
	}
	if idx.fan, err = find(s.columns.Fan); err != nil {
		return idx, err
	}
	return idx, nil
}

func (s *CSVSource) parse(row []string, idx columnIndex, line int) (model.WeeklyRecord, error) {
	var rec model.WeeklyRecord
	var err error
	if rec.Season, err = parseKey(row[idx.season], s.columns.Season, line); err != nil {
		return rec, err
	}
	if rec.Week, err = parseKey(row[idx.week], s.columns.Week, line); err != nil {
		return rec, err
	}
	if rec.JudgeScore, err = parseAmount(row[idx.judge], s.columns.Judge, line); err != nil {
		return rec, err
	}
	if rec.FanVote, err = parseAmount(row[idx.fan], s.columns.Fan, line); err != nil {
		return rec, err
	}
	return rec, nil
}

// parseKey accepts integers, including integral floats such as "3.0" that
// spreadsheet exports produce.
func parseKey(field, column string, line int) (int, error) {
	field = strings.TrimSpace(field)
	if n, err := strconv.Atoi(field); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: line %d column %q: %q is not an integer", ErrInvalidValue, line, column, field)
	}
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%w: line %d column %q: %q is out of range", ErrInvalidValue, line, column, field)
	}
	return int(f), nil
}

func parseAmount(field, column string, line int) (float64, error) {
	field = strings.TrimSpace(field)
	f, err := strconv.ParseFloat(field, 64)
	switch {
	case err != nil:
		return 0, fmt.Errorf("%w: line %d column %q: %q is not a number", ErrInvalidValue, line, column, field)
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, fmt.Errorf("%w: line %d column %q: %q is not finite", ErrInvalidValue, line, column, field)
	case f < 0:
		return 0, fmt.Errorf("%w: line %d column %q: %q is negative", ErrInvalidValue, line, column, field)
	}
	return f, nil
}
