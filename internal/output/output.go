package output

import (
	"context"

	"github.com/crimson-sun/steerage/internal/model"
)

// Output defines the interface for survival report destinations.
type Output interface {
	Write(ctx context.Context, report model.Report) error
	Close() error
}

// Format names for report encoding.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)
