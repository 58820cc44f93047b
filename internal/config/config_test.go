package config_test

import (
	"testing"

	"github.com/okian/biasindex/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should match the original dataset layout", func() {
			convey.So(cfg.InputPath, convey.ShouldEqual, "全赛季每周估计详情.csv")
			convey.So(cfg.OutputPath, convey.ShouldEqual, "images/bias_index_compare.png")
			convey.So(cfg.SeasonColumn, convey.ShouldEqual, "赛季")
			convey.So(cfg.WeekColumn, convey.ShouldEqual, "周数")
			convey.So(cfg.JudgeColumn, convey.ShouldEqual, "裁判总分")
			convey.So(cfg.FanColumn, convey.ShouldEqual, "估计粉丝票")
			convey.So(cfg.TieMethod, convey.ShouldEqual, "min")
			convey.So(cfg.ChartDPI, convey.ShouldEqual, 300)
			convey.So(cfg.MetricsPath, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
