package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/biasindex/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("BIAS_INPUT_PATH", "data/weeks.csv")
			_ = os.Setenv("BIAS_OUTPUT_PATH", "out/chart.png")
			_ = os.Setenv("BIAS_CHART_DPI", "150")
			_ = os.Setenv("BIAS_TIE_METHOD", "dense")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.InputPath, convey.ShouldEqual, "data/weeks.csv")
				convey.So(cfg.OutputPath, convey.ShouldEqual, "out/chart.png")
				convey.So(cfg.ChartDPI, convey.ShouldEqual, 150)
				convey.So(cfg.TieMethod, convey.ShouldEqual, "dense")
				convey.So(cfg.SeasonColumn, convey.ShouldEqual, config.DefaultSeasonColumn)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
input_path: "season.csv"
season_column: "Season"
week_column: "Week"
judge_column: "JudgeTotal"
fan_column: "FanVotes"
chart_width_in: 10
metrics_path: "bias.prom"
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv("BIAS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.InputPath, convey.ShouldEqual, "season.csv")
				convey.So(cfg.SeasonColumn, convey.ShouldEqual, "Season")
				convey.So(cfg.WeekColumn, convey.ShouldEqual, "Week")
				convey.So(cfg.JudgeColumn, convey.ShouldEqual, "JudgeTotal")
				convey.So(cfg.FanColumn, convey.ShouldEqual, "FanVotes")
				convey.So(cfg.ChartWidthIn, convey.ShouldEqual, 10)
				convey.So(cfg.ChartHeightIn, convey.ShouldEqual, 6)
				convey.So(cfg.MetricsPath, convey.ShouldEqual, "bias.prom")
				convey.So(cfg.OutputPath, convey.ShouldEqual, config.DefaultOutputPath)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, "input_path: \"season.csv\"\nchart_dpi: 72\n")
			_ = os.Setenv("BIAS_CONFIG", tmpFile)
			_ = os.Setenv("BIAS_INPUT_PATH", "override.csv")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.InputPath, convey.ShouldEqual, "override.csv") // Overridden by env
				convey.So(cfg.ChartDPI, convey.ShouldEqual, 72)              // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("BIAS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("BIAS_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty input path", func() {
			_ = os.Setenv("BIAS_INPUT_PATH", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "input_path must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown tie method", func() {
			_ = os.Setenv("BIAS_TIE_METHOD", "ordinal")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "tie_method")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("BIAS_CHART_DPI", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive DPI", func() {
			_ = os.Setenv("BIAS_CHART_DPI", "0")

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

// clearConfigEnvVars removes all BIAS_* variables used by tests.
func clearConfigEnvVars() {
	for _, k := range []string{
		"BIAS_CONFIG",
		"BIAS_INPUT_PATH",
		"BIAS_OUTPUT_PATH",
		"BIAS_METRICS_PATH",
		"BIAS_CHART_DPI",
		"BIAS_TIE_METHOD",
		"BIAS_LOG_LEVEL",
	} {
		_ = os.Unsetenv(k)
	}
}

// createTempConfigFile writes content to a YAML file under t.TempDir.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
