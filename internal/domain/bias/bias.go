// Package bias computes how closely a week's final standings follow the
// judges versus the fans under the two aggregation rules.
package bias

import (
	"fmt"

	"github.com/okian/biasindex/internal/domain/ranking"
)

// Fixed index values for weeks where the final order matches the judges exactly.
const (
	// Balanced is the index when the final order equals both base orders.
	Balanced = 1.0
	// JudgeBiasCap replaces the unbounded ratio when the final order equals the
	// judge order but not the fan order.
	JudgeBiasCap = 10.0
)

// Rule is an aggregation rule combining judge scores and fan votes.
type Rule int

const (
	// RuleRanking sums the judge rank and fan rank; lower is better.
	RuleRanking Rule = iota
	// RulePercentage sums each metric's share of its week total; higher is better.
	RulePercentage
)

// Rules lists every rule in reporting order.
var Rules = []Rule{RuleRanking, RulePercentage} //nolint:gochecknoglobals // fixed enumeration

func (r Rule) String() string {
	switch r {
	case RuleRanking:
		return "ranking"
	case RulePercentage:
		return "percentage"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Outcome is one rule applied to one week.
type Outcome struct {
	Rule     Rule
	Judge    ranking.Vector
	Fan      ranking.Vector
	Combined []float64
	Final    ranking.Vector
}

// Shares divides every value by the sum of values. A zero sum yields a share of
// zero for every element.
func Shares(values []float64) []float64 {
	shares := make([]float64, len(values))
	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return shares
	}
	for i, v := range values {
		shares[i] = v / total
	}
	return shares
}

// Build applies rule to a week's judge scores and fan votes, aligned by record.
// Base ranks put the highest score and the most votes first.
func Build(rule Rule, judge, fan []float64, method ranking.TieMethod) Outcome {
	out := Outcome{
		Rule:  rule,
		Judge: ranking.Rank(judge, false, method),
		Fan:   ranking.Rank(fan, false, method),
	}

	switch rule {
	case RulePercentage:
		js, fs := Shares(judge), Shares(fan)
		out.Combined = make([]float64, len(js))
		for i := range js {
			out.Combined[i] = js[i] + fs[i]
		}
		out.Final = ranking.Rank(out.Combined, false, method)
	default:
		out.Combined = ranking.Add(out.Judge, out.Fan)
		out.Final = ranking.Rank(out.Combined, true, method)
	}
	return out
}
