package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/steerage/internal/ingest"
	"github.com/crimson-sun/steerage/internal/model"
	"github.com/crimson-sun/steerage/internal/output"
	"github.com/crimson-sun/steerage/internal/survival"
)

// Titles of the two survival reports, in emission order.
const (
	classTitle = "Survival Rate by Passenger Class"
	ageTitle   = "Survival Rate by Age Group"
)

// Pipeline connects the loader and the report outputs into a one-shot
// analysis run: load → summarize by class and age band → write reports.
type Pipeline struct {
	loader *ingest.Loader
	out    output.Output
}

// New creates a Pipeline from the given components.
func New(loader *ingest.Loader, out output.Output) *Pipeline {
	return &Pipeline{loader: loader, out: out}
}

// Run executes one analysis of the dataset at path. Loader failures
// propagate with their structured diagnostics intact.
func (p *Pipeline) Run(ctx context.Context, path string) error {
	runID := uuid.NewString()
	log := slog.With("run", runID, "path", path)

	records, err := p.loader.Load(path)
	if err != nil {
		return fmt.Errorf("pipeline load: %w", err)
	}
	log.Info("dataset loaded", "records", len(records))

	reports := []model.Report{
		p.report(runID, path, classTitle, "class", len(records), survival.ByClass(records)),
		p.report(runID, path, ageTitle, "age", len(records), survival.ByAgeBand(records)),
	}
	for _, r := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.out.Write(ctx, r); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
		log.Debug("report written", "dimension", r.Dimension, "groups", len(r.Rows))
	}
	return nil
}

func (p *Pipeline) report(runID, source, title, dimension string, records int, rows []model.Summary) model.Report {
	return model.Report{
		RunID:       runID,
		Title:       title,
		Dimension:   dimension,
		Source:      source,
		Records:     records,
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.out.Close()
}
