package model

import "time"

// Summary is one row of a survival report: a group of passengers and the
// share of them that survived, as a percentage.
type Summary struct {
	Group     string  `json:"group"`
	Survivors int     `json:"survivors"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"` // 100 * Survivors / Total
}

// Report is the output type — an ordered survival summary for one grouping
// dimension, computed fresh per run and never mutated after creation.
type Report struct {
	RunID       string    `json:"run_id"`
	Title       string    `json:"title"`
	Dimension   string    `json:"dimension"` // "class" or "age"
	Source      string    `json:"source"`    // input file the records came from
	Records     int       `json:"records"`   // dataset size behind the summary
	GeneratedAt time.Time `json:"generated_at"`
	Rows        []Summary `json:"rows"`
}
