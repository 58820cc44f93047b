// Package source loads weekly contestant records from delimited files.
package source

import (
	"context"

	"github.com/okian/biasindex/internal/domain/model"
)

// Source provides the records of a run.
type Source interface {
	// Load returns every record in input order.
	Load(ctx context.Context) ([]model.WeeklyRecord, error)
}

// Columns names the four input columns the calculator needs.
type Columns struct {
	Season string
	Week   string
	Judge  string
	Fan    string
}
