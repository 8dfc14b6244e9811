package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/crimson-sun/steerage/internal/model"
)

const chartWidth = 40

// RenderText renders a report as an aligned text table, rates with two
// decimals, optionally followed by a proportional bar chart.
func RenderText(r model.Report, withChart bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "source: %s  records: %d  run: %s\n\n", r.Source, r.Records, r.RunID)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Group\tSurvivors\tTotal\tRate (%)")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", row.Group, row.Survivors, row.Total, row.Rate)
	}
	tw.Flush()

	if withChart && len(r.Rows) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderChart(r.Rows))
	}
	return b.String()
}

// RenderChart renders one horizontal bar per summary row, scaled so a
// 100% rate fills the full chart width.
func RenderChart(rows []model.Summary) string {
	labelWidth := 0
	for _, row := range rows {
		if len(row.Group) > labelWidth {
			labelWidth = len(row.Group)
		}
	}

	var b strings.Builder
	for _, row := range rows {
		filled := int(row.Rate/100*chartWidth + 0.5)
		if filled > chartWidth {
			filled = chartWidth
		}
		fmt.Fprintf(&b, "%-*s %s%s %6.2f%%\n", labelWidth, row.Group,
			strings.Repeat("█", filled), strings.Repeat("░", chartWidth-filled), row.Rate)
	}
	return b.String()
}
