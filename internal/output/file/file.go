package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/steerage/internal/model"
	"github.com/crimson-sun/steerage/internal/output"
)

const defaultBufSize = 32 * 1024

// Option configures a file Output.
type Option func(*Output)

// WithBufSize sets the bufio.Writer buffer size. Default: 32KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes survival reports to a file with buffered I/O. Text reports
// are separated by a blank line; JSON reports are written as NDJSON. The
// file is truncated on open since reports are regenerated per run.
type Output struct {
	mu      sync.Mutex
	f       *os.File
	w       *bufio.Writer
	format  string
	chart   bool
	bufSize int
}

// New creates a file output writing to path.
func New(path, format string, chart bool, opts ...Option) (*Output, error) {
	o := &Output{format: format, chart: chart, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(o)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	return o, nil
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.format == output.FormatJSON {
		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("file output: marshal: %w", err)
		}
		data = append(data, '\n')
		if _, err := o.w.Write(data); err != nil {
			return fmt.Errorf("file output: write: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(o.w, output.RenderText(report, o.chart)); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
