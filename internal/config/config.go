// Package config defines the calculator's configuration and how it is loaded.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables on top of the defaults.
// - Validation errors wrap ErrInvalidConfig; load errors wrap ErrLoadConfig.
package config

// Defaults matching the original dataset and chart.
const (
	DefaultInputPath  = "全赛季每周估计详情.csv"
	DefaultOutputPath = "images/bias_index_compare.png"

	DefaultSeasonColumn = "赛季"
	DefaultWeekColumn   = "周数"
	DefaultJudgeColumn  = "裁判总分"
	DefaultFanColumn    = "估计粉丝票"

	defaultChartWidthIn  = 14.0
	defaultChartHeightIn = 6.0
	defaultChartDPI      = 300
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output to JSON.
	LogJSON bool `koanf:"log_json"`

	// InputPath is the CSV file holding one row per contestant per week.
	InputPath string `koanf:"input_path"`

	// OutputPath is where the PNG chart is written.
	OutputPath string `koanf:"output_path"`

	// MetricsPath, when set, receives a Prometheus textfile after the run.
	MetricsPath string `koanf:"metrics_path"`

	// Column headers of the input file.
	SeasonColumn string `koanf:"season_column"`
	WeekColumn   string `koanf:"week_column"`
	JudgeColumn  string `koanf:"judge_column"`
	FanColumn    string `koanf:"fan_column"`

	// TieMethod is one of min, average, dense. Only min reproduces the
	// published index.
	TieMethod string `koanf:"tie_method"`

	// Chart geometry in inches and dots per inch.
	ChartWidthIn  float64 `koanf:"chart_width_in"`
	ChartHeightIn float64 `koanf:"chart_height_in"`
	ChartDPI      int     `koanf:"chart_dpi"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		InputPath:     DefaultInputPath,
		OutputPath:    DefaultOutputPath,
		SeasonColumn:  DefaultSeasonColumn,
		WeekColumn:    DefaultWeekColumn,
		JudgeColumn:   DefaultJudgeColumn,
		FanColumn:     DefaultFanColumn,
		TieMethod:     "min",
		ChartWidthIn:  defaultChartWidthIn,
		ChartHeightIn: defaultChartHeightIn,
		ChartDPI:      defaultChartDPI,
	}
}
