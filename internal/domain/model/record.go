// Package model contains domain models passed between layers.
package model

import "fmt"

// WeeklyRecord is one contestant's standing in one week of a season.
type WeeklyRecord struct {
	Season     int     // season number
	Week       int     // week number within the season
	JudgeScore float64 // judges' total score
	FanVote    float64 // estimated fan vote
}

// WeekKey identifies a week of competition.
type WeekKey struct {
	Season int
	Week   int
}

// Less orders keys by season, then week.
func (k WeekKey) Less(o WeekKey) bool {
	if k.Season != o.Season {
		return k.Season < o.Season
	}
	return k.Week < o.Week
}

func (k WeekKey) String() string {
	return fmt.Sprintf("S%02dW%02d", k.Season, k.Week)
}

// CompetitionWeek holds the records sharing a WeekKey, in input order.
type CompetitionWeek struct {
	Key     WeekKey
	Records []WeeklyRecord
}

// JudgeScores returns the judge scores aligned with Records.
func (w CompetitionWeek) JudgeScores() []float64 {
	out := make([]float64, len(w.Records))
	for i, r := range w.Records {
		out[i] = r.JudgeScore
	}
	return out
}

// FanVotes returns the fan votes aligned with Records.
func (w CompetitionWeek) FanVotes() []float64 {
	out := make([]float64, len(w.Records))
	for i, r := range w.Records {
		out[i] = r.FanVote
	}
	return out
}

// WeeklyIndex is the bias index of one week under both rules.
type WeeklyIndex struct {
	Season      int
	Week        int
	Contestants int
	Ranking     float64 // index under the rank-sum rule
	Percent     float64 // index under the percentage-share rule
}

// SeasonSummary averages WeeklyIndex values over the retained weeks of a season.
type SeasonSummary struct {
	Season  int
	Weeks   int
	Ranking float64
	Percent float64
}
