package service

import (
	"sort"

	"github.com/okian/biasindex/internal/domain/bias"
	"github.com/okian/biasindex/internal/domain/model"
	"github.com/okian/biasindex/internal/domain/ranking"
)

// MinContestants is the smallest week that can be ranked meaningfully.
const MinContestants = 2

// Stats describes what a weekly computation did with its input.
type Stats struct {
	Records      int
	WeeksTotal   int
	WeeksSkipped int
	// Degenerate counts fixed-value indices per rule and kind.
	Degenerate map[bias.Rule]map[bias.Degeneracy]int
}

// Group splits records into competition weeks ordered by season then week.
// Records keep their input order within a week.
func Group(records []model.WeeklyRecord) []model.CompetitionWeek {
	byKey := make(map[model.WeekKey][]model.WeeklyRecord)
	for _, r := range records {
		k := model.WeekKey{Season: r.Season, Week: r.Week}
		byKey[k] = append(byKey[k], r)
	}

	weeks := make([]model.CompetitionWeek, 0, len(byKey))
	for k, rs := range byKey {
		weeks = append(weeks, model.CompetitionWeek{Key: k, Records: rs})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Key.Less(weeks[j].Key) })
	return weeks
}

// EvaluateWeek applies both rules to a week and returns the result per rule.
func EvaluateWeek(w model.CompetitionWeek, method ranking.TieMethod) map[bias.Rule]bias.Result {
	judge, fan := w.JudgeScores(), w.FanVotes()
	out := make(map[bias.Rule]bias.Result, len(bias.Rules))
	for _, rule := range bias.Rules {
		out[rule] = bias.EvaluateOutcome(bias.Build(rule, judge, fan, method))
	}
	return out
}

// ComputeWeekly returns one WeeklyIndex per week holding at least
// MinContestants records. Smaller weeks are left out.
func ComputeWeekly(records []model.WeeklyRecord, method ranking.TieMethod) ([]model.WeeklyIndex, Stats) {
	weeks := Group(records)
	stats := Stats{
		Records:    len(records),
		WeeksTotal: len(weeks),
		Degenerate: make(map[bias.Rule]map[bias.Degeneracy]int),
	}

	weekly := make([]model.WeeklyIndex, 0, len(weeks))
	for _, w := range weeks {
		if len(w.Records) < MinContestants {
			stats.WeeksSkipped++
			continue
		}
		results := EvaluateWeek(w, method)
		for rule, r := range results {
			if r.Degenerate == bias.DegenerateNone {
				continue
			}
			if stats.Degenerate[rule] == nil {
				stats.Degenerate[rule] = make(map[bias.Degeneracy]int)
			}
			stats.Degenerate[rule][r.Degenerate]++
		}
		weekly = append(weekly, model.WeeklyIndex{
			Season:      w.Key.Season,
			Week:        w.Key.Week,
			Contestants: len(w.Records),
			Ranking:     results[bias.RuleRanking].Value,
			Percent:     results[bias.RulePercentage].Value,
		})
	}
	return weekly, stats
}

// Summarize averages each season's weekly indices, ordered by season.
func Summarize(weekly []model.WeeklyIndex) []model.SeasonSummary {
	type acc struct {
		n                int
		ranking, percent float64
	}
	bySeason := make(map[int]*acc)
	for _, w := range weekly {
		a, ok := bySeason[w.Season]
		if !ok {
			a = &acc{}
			bySeason[w.Season] = a
		}
		a.n++
		a.ranking += w.Ranking
		a.percent += w.Percent
	}

	out := make([]model.SeasonSummary, 0, len(bySeason))
	for season, a := range bySeason {
		out = append(out, model.SeasonSummary{
			Season:  season,
			Weeks:   a.n,
			Ranking: a.ranking / float64(a.n),
			Percent: a.percent / float64(a.n),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}
