package bias

import "github.com/okian/biasindex/internal/domain/ranking"

// Degeneracy records which branch of the index formula produced a value.
type Degeneracy int

const (
	// DegenerateNone is a plain fan/judge distance ratio.
	DegenerateNone Degeneracy = iota
	// DegenerateIdentity means both distances were zero.
	DegenerateIdentity
	// DegenerateCapped means only the judge distance was zero.
	DegenerateCapped
)

func (d Degeneracy) String() string {
	switch d {
	case DegenerateIdentity:
		return "identity"
	case DegenerateCapped:
		return "capped"
	default:
		return "none"
	}
}

// Result is a bias index together with the distances it was derived from.
type Result struct {
	Value         float64
	FanDistance   float64
	JudgeDistance float64
	Degenerate    Degeneracy
}

// Evaluate computes I = L1(final, fan) / L1(final, judge). A zero judge
// distance yields Balanced when the fan distance is also zero and JudgeBiasCap
// otherwise.
func Evaluate(final, judge, fan ranking.Vector) Result {
	r := Result{
		FanDistance:   ranking.L1Distance(final, fan),
		JudgeDistance: ranking.L1Distance(final, judge),
	}
	switch {
	case r.JudgeDistance == 0 && r.FanDistance == 0:
		r.Value = Balanced
		r.Degenerate = DegenerateIdentity
	case r.JudgeDistance == 0:
		r.Value = JudgeBiasCap
		r.Degenerate = DegenerateCapped
	default:
		r.Value = r.FanDistance / r.JudgeDistance
	}
	return r
}

// Index returns only the index value of Evaluate.
func Index(final, judge, fan ranking.Vector) float64 {
	return Evaluate(final, judge, fan).Value
}

// EvaluateOutcome evaluates the index of a built outcome.
func EvaluateOutcome(o Outcome) Result {
	return Evaluate(o.Final, o.Judge, o.Fan)
}

// Leaning classifies an index value.
type Leaning int

const (
	LeanBalanced Leaning = iota
	LeanJudges
	LeanFans
)

func (l Leaning) String() string {
	switch l {
	case LeanJudges:
		return "judges"
	case LeanFans:
		return "fans"
	default:
		return "balanced"
	}
}

// Lean reports which side an index value favours.
func Lean(i float64) Leaning {
	switch {
	case i > Balanced:
		return LeanJudges
	case i < Balanced:
		return LeanFans
	default:
		return LeanBalanced
	}
}
