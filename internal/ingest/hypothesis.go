package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Hypothesis is one candidate (character encoding, field delimiter) pair
// tried during ingestion. The zero delimiter is invalid.
type Hypothesis struct {
	Encoding  string
	Delimiter rune

	enc encoding.Encoding // nil means strict UTF-8
}

func (h Hypothesis) String() string {
	return h.Encoding + "/" + delimiterName(h.Delimiter)
}

func delimiterName(d rune) string {
	switch d {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	}
	return fmt.Sprintf("%q", d)
}

var (
	errInvalidUTF8     = errors.New("invalid utf-8 byte sequence")
	errUndecodableByte = errors.New("byte has no mapping in this encoding")
)

// decode turns raw bytes into text under the hypothesis's encoding.
// Single-byte decoders substitute U+FFFD for unmapped bytes instead of
// failing, so a replacement rune in the output is treated as a decode
// failure here. Latin-1 maps every byte and therefore never fails.
func (h Hypothesis) decode(raw []byte) (string, error) {
	if h.enc == nil {
		if !utf8.Valid(raw) {
			return "", errInvalidUTF8
		}
		return string(raw), nil
	}
	text, err := h.enc.NewDecoder().String(string(raw))
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", errUndecodableByte
	}
	return text, nil
}

// parse splits decoded text into a header row and data rows using the
// hypothesis's delimiter.
func (h Hypothesis) parse(text string) (header []string, rows [][]string, err error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = h.Delimiter
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("empty table")
	}
	return records[0], records[1:], nil
}

// DefaultHypotheses returns the fixed search order: encodings outermost,
// from the restrictive Windows legacy codepage through the
// accept-anything latin-1 fallback to strict UTF-8, crossed with the
// delimiter candidates comma, semicolon, tab.
func DefaultHypotheses() []Hypothesis {
	encodings := []struct {
		name string
		enc  encoding.Encoding
	}{
		{"windows-1252", charmap.Windows1252},
		{"latin-1", charmap.ISO8859_1},
		{"utf-8", nil},
	}
	delimiters := []rune{',', ';', '\t'}

	hyps := make([]Hypothesis, 0, len(encodings)*len(delimiters))
	for _, e := range encodings {
		for _, d := range delimiters {
			hyps = append(hyps, Hypothesis{Encoding: e.name, Delimiter: d, enc: e.enc})
		}
	}
	return hyps
}

// decodeTable evaluates hypotheses in order and returns the first parsed
// table with at least minColumns columns and one data row. A low column
// count means the delimiter collapsed the fields into garbage, so such a
// parse is rejected even though it "succeeded". Any per-hypothesis error
// advances the search; ok is false when every hypothesis is exhausted.
func decodeTable(raw []byte, hyps []Hypothesis, minColumns int) (header []string, rows [][]string, hyp Hypothesis, ok bool) {
	for _, h := range hyps {
		text, err := h.decode(raw)
		if err != nil {
			slog.Debug("hypothesis rejected", "hypothesis", h.String(), "reason", err)
			continue
		}
		header, rows, err := h.parse(text)
		if err != nil {
			slog.Debug("hypothesis rejected", "hypothesis", h.String(), "reason", err)
			continue
		}
		if len(header) < minColumns || len(rows) == 0 {
			slog.Debug("hypothesis rejected", "hypothesis", h.String(),
				"columns", len(header), "rows", len(rows))
			continue
		}
		return header, rows, h, true
	}
	return nil, nil, Hypothesis{}, false
}

func hypothesisNames(hyps []Hypothesis) []string {
	names := make([]string, len(hyps))
	for i, h := range hyps {
		names[i] = h.String()
	}
	return names
}
