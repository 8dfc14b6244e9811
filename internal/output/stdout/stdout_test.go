package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/steerage/internal/model"
	"github.com/crimson-sun/steerage/internal/output"
)

func report() model.Report {
	return model.Report{
		RunID:     "run-1",
		Title:     "Survival Rate by Passenger Class",
		Dimension: "class",
		Source:    "passengers.csv",
		Records:   2,
		Rows: []model.Summary{
			{Group: "1", Survivors: 1, Total: 2, Rate: 50},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	o := &Output{w: &buf, format: output.FormatTable, chart: false}

	if err := o.Write(context.Background(), report()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Survival Rate by Passenger Class") {
		t.Fatalf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "50.00") {
		t.Fatalf("missing two-decimal rate:\n%s", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	o := &Output{w: &buf, format: output.FormatJSON}

	if err := o.Write(context.Background(), report()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded model.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Dimension != "class" || len(decoded.Rows) != 1 || decoded.Rows[0].Rate != 50 {
		t.Fatalf("round-tripped report mismatch: %+v", decoded)
	}
}

func TestClose(t *testing.T) {
	if err := New(output.FormatTable, true).Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
