// Package sampledata generates synthetic competition seasons in the input
// layout read by the bias index calculator.
package sampledata

import "github.com/okian/biasindex/internal/adapters/source"

// Defaults for a dataset shaped like the original show.
const (
	DefaultSeasons     = 34
	DefaultContestants = 12
	DefaultSeed        = 42

	maxJudgeMark  = 10
	judgesPerWeek = 3
)

// Config holds generation parameters.
type Config struct {
	Seasons     int            // number of seasons
	Contestants int            // contestants in week 1; one is eliminated per week
	Seed        int64          // random seed; equal seeds give equal files
	Columns     source.Columns // header names
	NameColumn  string         // optional contestant column; empty omits it
}
