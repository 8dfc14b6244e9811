package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/steerage/internal/model"
	"github.com/crimson-sun/steerage/internal/output"
)

// Output writes survival reports to stdout, either as rendered text
// tables or as pretty-printed JSON.
type Output struct {
	w      io.Writer
	format string
	chart  bool
}

// New creates a stdout Output. chart controls whether text reports carry
// the bar chart; it is ignored for JSON.
func New(format string, chart bool) *Output {
	return &Output{w: os.Stdout, format: format, chart: chart}
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	if o.format == output.FormatJSON {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(o.w, output.RenderText(report, o.chart)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
