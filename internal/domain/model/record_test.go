package model_test

import (
	"testing"

	"github.com/okian/biasindex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWeekKey(t *testing.T) {
	Convey("Given week keys", t, func() {
		a := model.WeekKey{Season: 2, Week: 9}
		b := model.WeekKey{Season: 3, Week: 1}
		c := model.WeekKey{Season: 3, Week: 4}

		Convey("Then they order by season before week", func() {
			So(a.Less(b), ShouldBeTrue)
			So(b.Less(c), ShouldBeTrue)
			So(c.Less(a), ShouldBeFalse)
			So(a.Less(a), ShouldBeFalse)
		})

		Convey("And they print compactly", func() {
			So(c.String(), ShouldEqual, "S03W04")
		})
	})
}

func TestCompetitionWeek(t *testing.T) {
	Convey("Given a competition week", t, func() {
		w := model.CompetitionWeek{
			Key: model.WeekKey{Season: 1, Week: 2},
			Records: []model.WeeklyRecord{
				{Season: 1, Week: 2, JudgeScore: 24, FanVote: 0.3},
				{Season: 1, Week: 2, JudgeScore: 27, FanVote: 0.7},
			},
		}

		Convey("Then the metric columns stay aligned with the records", func() {
			So(w.JudgeScores(), ShouldResemble, []float64{24, 27})
			So(w.FanVotes(), ShouldResemble, []float64{0.3, 0.7})
		})
	})
}
