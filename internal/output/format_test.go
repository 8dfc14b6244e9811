package output

import (
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/steerage/internal/model"
)

func testReport() model.Report {
	return model.Report{
		RunID:       "run-1",
		Title:       "Survival Rate by Passenger Class",
		Dimension:   "class",
		Source:      "passengers.csv",
		Records:     3,
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Rows: []model.Summary{
			{Group: "1", Survivors: 1, Total: 2, Rate: 50},
			{Group: "3", Survivors: 1, Total: 3, Rate: 100.0 / 3},
		},
	}
}

func TestRenderTextTable(t *testing.T) {
	got := RenderText(testReport(), false)

	if !strings.HasPrefix(got, "Survival Rate by Passenger Class\n") {
		t.Fatalf("missing title, got:\n%s", got)
	}
	if !strings.Contains(got, "source: passengers.csv") {
		t.Fatalf("missing source line, got:\n%s", got)
	}
	// Rates render with exactly two decimals.
	if !strings.Contains(got, "50.00") {
		t.Fatalf("expected 50.00 in output:\n%s", got)
	}
	if !strings.Contains(got, "33.33") {
		t.Fatalf("expected 33.33 in output:\n%s", got)
	}
	if strings.Contains(got, "█") {
		t.Fatalf("chart rendered despite withChart=false:\n%s", got)
	}
}

func TestRenderTextRowOrderPreserved(t *testing.T) {
	got := RenderText(testReport(), false)
	first := strings.Index(got, "50.00")
	second := strings.Index(got, "33.33")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("rows out of order:\n%s", got)
	}
}

func TestRenderChart(t *testing.T) {
	rows := []model.Summary{
		{Group: "full", Survivors: 2, Total: 2, Rate: 100},
		{Group: "empty", Survivors: 0, Total: 2, Rate: 0},
	}
	got := RenderChart(rows)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 chart lines, got %d:\n%s", len(lines), got)
	}
	if strings.Count(lines[0], "█") != chartWidth {
		t.Fatalf("100%% bar should fill the chart width:\n%s", lines[0])
	}
	if strings.Count(lines[1], "█") != 0 {
		t.Fatalf("0%% bar should be empty:\n%s", lines[1])
	}
	if !strings.Contains(lines[1], "0.00%") {
		t.Fatalf("chart line missing rate value:\n%s", lines[1])
	}
}

func TestRenderTextWithChart(t *testing.T) {
	got := RenderText(testReport(), true)
	if !strings.Contains(got, "█") {
		t.Fatalf("expected chart bars in output:\n%s", got)
	}
}
