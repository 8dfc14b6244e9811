package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/crimson-sun/steerage/internal/model"
	"github.com/crimson-sun/steerage/internal/stats"
)

const (
	defaultMinColumns = 10
	defaultClass      = 3
)

// Option configures a Loader.
type Option func(*Loader)

// WithHypotheses replaces the default decode search order.
func WithHypotheses(hyps []Hypothesis) Option {
	return func(l *Loader) { l.hypotheses = hyps }
}

// WithMinColumns sets the column count below which a parsed table is
// rejected as structurally wrong. Default: 10.
func WithMinColumns(n int) Option {
	return func(l *Loader) { l.minColumns = n }
}

// WithCache memoizes Load results in the given cache.
func WithCache(c *Cache) Option {
	return func(l *Loader) { l.cache = c }
}

// Loader turns a delimited text file of unknown encoding and delimiter
// into normalized passenger records.
type Loader struct {
	hypotheses []Hypothesis
	minColumns int
	cache      *Cache
}

// NewLoader creates a Loader with the default hypothesis order.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		hypotheses: DefaultHypotheses(),
		minColumns: defaultMinColumns,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, decodes, and normalizes the dataset at path. It fails with
// *NotFoundError, *DecodeExhaustedError, or *MissingColumnsError; either a
// fully normalized record set is returned or nothing is. Results are
// read-only when a cache is configured, since cached slices are shared.
func (l *Loader) Load(path string) ([]model.Passenger, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	key := cacheKey{path: path, mtime: info.ModTime().UnixNano(), size: info.Size()}
	if l.cache != nil {
		if records, ok := l.cache.get(key); ok {
			slog.Debug("dataset served from cache", "path", path, "records", len(records))
			return records, nil
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	header, rows, hyp, ok := decodeTable(raw, l.hypotheses, l.minColumns)
	if !ok {
		return nil, &DecodeExhaustedError{Path: path, Tried: hypothesisNames(l.hypotheses)}
	}
	slog.Debug("dataset decoded", "path", path, "hypothesis", hyp.String(),
		"columns", len(header), "rows", len(rows))

	repaired := RepairHeader(header)
	idx, missing := LocateSchema(repaired)
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing, Present: repaired}
	}

	records := coerceRows(rows, idx)
	if l.cache != nil {
		l.cache.put(key, records)
	}
	return records, nil
}

// coerceRows types every row and imputes missing ages with the median of
// the present ones. The median is taken before any substitution so the
// imputed values do not feed back into it.
func coerceRows(rows [][]string, idx map[string]int) []model.Passenger {
	records := make([]model.Passenger, 0, len(rows))
	var present []float64
	for _, row := range rows {
		p := model.Passenger{
			CabinClass: coerceClass(cell(row, idx["pclass"])),
			Survived:   coerceSurvived(cell(row, idx["survived"])),
			Age:        math.NaN(),
		}
		if age, ok := parseAge(cell(row, idx["age"])); ok {
			p.Age = age
			present = append(present, age)
		}
		records = append(records, p)
	}

	median := stats.Median(present)
	for i := range records {
		if math.IsNaN(records[i].Age) {
			records[i].Age = median
		}
	}
	return records
}

// cell is bounds-safe row access; a short row reads as a missing value.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// isMissing reports whether a cell holds one of the conventional
// missing-value tokens.
func isMissing(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "na", "nan", "null":
		return true
	}
	return false
}

// coerceClass parses a cabin class, defaulting to 3 (lowest) when the cell
// is absent, unparseable, or outside the 1..3 domain. Spreadsheet exports
// write integers as "3.0", so values go through a float parse first.
func coerceClass(s string) int {
	if isMissing(s) {
		return defaultClass
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != math.Trunc(v) {
		return defaultClass
	}
	c := int(v)
	if c < 1 || c > 3 {
		return defaultClass
	}
	return c
}

// coerceSurvived parses a survival flag; anything other than an exact 1
// reads as 0.
func coerceSurvived(s string) int {
	if isMissing(s) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if v == 1 {
		return 1
	}
	return 0
}

// parseAge parses a non-negative age; ok is false for missing tokens,
// unparseable text, and negative values, all of which are imputed later.
func parseAge(s string) (float64, bool) {
	if isMissing(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
