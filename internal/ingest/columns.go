package ingest

import (
	"slices"
	"strings"
)

const bom = "\uFEFF"

// utf8BOMMojibake is what a UTF-8 byte-order mark becomes after passing
// through a single-byte decoder.
const utf8BOMMojibake = "ï»¿"

// requiredColumns are the logical names the schema must provide, in the
// order they are reported when missing.
var requiredColumns = []string{"pclass", "survived", "age"}

// RepairName normalizes one column name: BOM artifacts are removed wherever
// they appear (some exporters leave one mid-name after concatenation),
// surrounding whitespace is trimmed, and the result is lowercased.
func RepairName(name string) string {
	name = strings.ReplaceAll(name, bom, "")
	name = strings.ReplaceAll(name, utf8BOMMojibake, "")
	return strings.ToLower(strings.TrimSpace(name))
}

// RepairHeader returns a new header with every column name repaired.
func RepairHeader(header []string) []string {
	repaired := make([]string, len(header))
	for i, name := range header {
		repaired[i] = RepairName(name)
	}
	return repaired
}

// LocateSchema finds the required columns in a repaired header. It returns
// the column index per logical name and the logical names that are absent.
// On a duplicated column name the first occurrence wins.
func LocateSchema(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		if !slices.Contains(requiredColumns, name) {
			continue
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	return idx, missing
}
