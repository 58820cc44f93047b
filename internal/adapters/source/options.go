package source

// Option applies a configuration option to the CSVSource.
type Option func(*CSVSource)

// WithColumns sets the header names to read. Empty names keep the current value.
func WithColumns(c Columns) Option {
	return func(s *CSVSource) {
		if c.Season != "" {
			s.columns.Season = c.Season
		}
		if c.Week != "" {
			s.columns.Week = c.Week
		}
		if c.Judge != "" {
			s.columns.Judge = c.Judge
		}
		if c.Fan != "" {
			s.columns.Fan = c.Fan
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(s *CSVSource) {
		if r != 0 {
			s.comma = r
		}
	}
}
