// Package survival partitions normalized passenger records by a grouping
// key and computes per-group survival rates.
package survival

import (
	"strconv"

	"github.com/crimson-sun/steerage/internal/model"
)

// SummarizeBy partitions records by key and returns one summary per group
// in the given order. Groups with no members are skipped, so an empty
// record set yields an empty summary and no division by zero can occur.
// Records are read-only; nothing here mutates them.
func SummarizeBy(records []model.Passenger, key func(model.Passenger) string, order []string) []model.Summary {
	survivors := make(map[string]int, len(order))
	totals := make(map[string]int, len(order))
	for _, p := range records {
		k := key(p)
		totals[k]++
		if p.Survived == 1 {
			survivors[k]++
		}
	}

	summaries := make([]model.Summary, 0, len(order))
	for _, group := range order {
		total := totals[group]
		if total == 0 {
			continue
		}
		summaries = append(summaries, model.Summary{
			Group:     group,
			Survivors: survivors[group],
			Total:     total,
			Rate:      100 * float64(survivors[group]) / float64(total),
		})
	}
	return summaries
}

// ByClass summarizes survival by cabin class, ordered 1 (highest) to 3.
func ByClass(records []model.Passenger) []model.Summary {
	return SummarizeBy(records,
		func(p model.Passenger) string { return strconv.Itoa(p.CabinClass) },
		[]string{"1", "2", "3"})
}

// ByAgeBand summarizes survival by age band, in band order (ascending
// lower bound), not alphabetically.
func ByAgeBand(records []model.Passenger) []model.Summary {
	order := make([]string, 0, len(model.Bands()))
	for _, b := range model.Bands() {
		order = append(order, b.String())
	}
	return SummarizeBy(records,
		func(p model.Passenger) string { return model.BandFor(p.Age).String() },
		order)
}
