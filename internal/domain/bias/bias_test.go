package bias_test

import (
	"testing"

	"github.com/okian/biasindex/internal/domain/bias"
	"github.com/okian/biasindex/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestShares(t *testing.T) {
	Convey("Given metric values for a week", t, func() {
		Convey("When the total is positive", func() {
			shares := bias.Shares([]float64{30, 10, 60})

			Convey("Then each share is value over total", func() {
				So(shares[0], ShouldAlmostEqual, 0.3)
				So(shares[1], ShouldAlmostEqual, 0.1)
				So(shares[2], ShouldAlmostEqual, 0.6)
			})
		})

		Convey("When every value is zero", func() {
			shares := bias.Shares([]float64{0, 0, 0})

			Convey("Then every share is zero", func() {
				So(shares, ShouldResemble, []float64{0, 0, 0})
			})
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a week where judges and fans disagree completely", t, func() {
		judge := []float64{30, 25, 20}
		fan := []float64{10, 20, 30}

		Convey("When applying the ranking rule", func() {
			o := bias.Build(bias.RuleRanking, judge, fan, ranking.TieMin)

			Convey("Then base ranks are reversed and the combined sums tie", func() {
				So(o.Rule, ShouldEqual, bias.RuleRanking)
				So(o.Judge, ShouldResemble, ranking.Vector{1, 2, 3})
				So(o.Fan, ShouldResemble, ranking.Vector{3, 2, 1})
				So(o.Combined, ShouldResemble, []float64{4, 4, 4})
				So(o.Final, ShouldResemble, ranking.Vector{1, 1, 1})
			})

			Convey("And the index is balanced", func() {
				r := bias.EvaluateOutcome(o)
				So(r.FanDistance, ShouldEqual, 3)
				So(r.JudgeDistance, ShouldEqual, 3)
				So(r.Value, ShouldEqual, 1.0)
				So(r.Degenerate, ShouldEqual, bias.DegenerateNone)
			})
		})

		Convey("When applying the percentage rule", func() {
			o := bias.Build(bias.RulePercentage, judge, fan, ranking.TieMin)

			Convey("Then the larger fan shares decide the final order", func() {
				So(o.Final, ShouldResemble, ranking.Vector{3, 2, 1})
				r := bias.EvaluateOutcome(o)
				So(r.FanDistance, ShouldEqual, 0)
				So(r.JudgeDistance, ShouldEqual, 4)
				So(r.Value, ShouldEqual, 0)
			})
		})

		Convey("When ranking with average ties", func() {
			o := bias.Build(bias.RuleRanking, judge, fan, ranking.TieAverage)

			Convey("Then the tied final ranks take the mean position", func() {
				So(o.Final, ShouldResemble, ranking.Vector{2, 2, 2})
				So(bias.EvaluateOutcome(o).Value, ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given a week with zero judge scores", t, func() {
		judge := []float64{0, 0, 0}
		fan := []float64{3, 2, 1}

		Convey("When applying the percentage rule", func() {
			o := bias.Build(bias.RulePercentage, judge, fan, ranking.TieMin)

			Convey("Then only fan shares contribute", func() {
				So(o.Combined[0], ShouldAlmostEqual, 0.5)
				So(o.Combined[1], ShouldAlmostEqual, 1.0/3)
				So(o.Combined[2], ShouldAlmostEqual, 1.0/6)
				So(o.Final, ShouldResemble, ranking.Vector{1, 2, 3})
			})

			Convey("And the all-tied judge ranks make the outcome lean to fans", func() {
				So(o.Judge, ShouldResemble, ranking.Vector{1, 1, 1})
				So(bias.EvaluateOutcome(o).Value, ShouldEqual, 0)
			})
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Given rank vectors", t, func() {
		Convey("When final equals both judge and fan order", func() {
			v := ranking.Vector{1, 2}
			r := bias.Evaluate(v, v, v)

			Convey("Then the index is the balanced identity", func() {
				So(r.Value, ShouldEqual, bias.Balanced)
				So(r.Degenerate, ShouldEqual, bias.DegenerateIdentity)
			})
		})

		Convey("When final equals the judge order but not the fan order", func() {
			r := bias.Evaluate(ranking.Vector{1, 2, 3}, ranking.Vector{1, 2, 3}, ranking.Vector{1, 1, 3})

			Convey("Then the index is capped", func() {
				So(r.Value, ShouldEqual, bias.JudgeBiasCap)
				So(r.Value, ShouldEqual, 10.0)
				So(r.Degenerate, ShouldEqual, bias.DegenerateCapped)
			})
		})

		Convey("When both distances are positive", func() {
			i := bias.Index(ranking.Vector{1, 2, 3, 4}, ranking.Vector{2, 1, 3, 4}, ranking.Vector{4, 3, 2, 1})

			Convey("Then the index is their ratio", func() {
				// fan distance 3+1+1+3, judge distance 1+1
				So(i, ShouldEqual, 4.0)
			})
		})
	})

	Convey("Given a two-contestant week where judges and fans agree", t, func() {
		judge := []float64{28, 21}
		fan := []float64{0.6, 0.4}

		Convey("Then both rules are balanced", func() {
			for _, rule := range bias.Rules {
				o := bias.Build(rule, judge, fan, ranking.TieMin)
				So(bias.EvaluateOutcome(o).Value, ShouldEqual, 1.0)
			}
		})
	})

	Convey("Given a week whose final order follows the judges", t, func() {
		judge := []float64{30, 20, 10}
		fan := []float64{15, 15, 5}

		Convey("Then both rules hit the cap", func() {
			for _, rule := range bias.Rules {
				o := bias.Build(rule, judge, fan, ranking.TieMin)
				So(o.Final, ShouldResemble, ranking.Vector{1, 2, 3})
				So(bias.EvaluateOutcome(o).Degenerate, ShouldEqual, bias.DegenerateCapped)
			}
		})
	})
}

func TestLean(t *testing.T) {
	Convey("Given index values", t, func() {
		So(bias.Lean(2.5), ShouldEqual, bias.LeanJudges)
		So(bias.Lean(0.4), ShouldEqual, bias.LeanFans)
		So(bias.Lean(1.0), ShouldEqual, bias.LeanBalanced)
		So(bias.LeanJudges.String(), ShouldEqual, "judges")
		So(bias.RulePercentage.String(), ShouldEqual, "percentage")
	})
}
