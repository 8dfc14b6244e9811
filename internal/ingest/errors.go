package ingest

import (
	"fmt"
	"strings"
)

// NotFoundError reports a dataset path that does not exist. No decode
// hypotheses are attempted for a missing file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset %s: file not found", e.Path)
}

// DecodeExhaustedError reports that no (encoding, delimiter) hypothesis
// produced an acceptable table. Tried lists every hypothesis in the order
// it was attempted.
type DecodeExhaustedError struct {
	Path  string
	Tried []string
}

func (e *DecodeExhaustedError) Error() string {
	return fmt.Sprintf("dataset %s: no encoding/delimiter hypothesis produced a usable table (tried: %s)",
		e.Path, strings.Join(e.Tried, ", "))
}

// MissingColumnsError reports that the table decoded but the required
// schema is absent. Present carries the repaired header so the caller can
// diagnose the mismatch without re-reading the file.
type MissingColumnsError struct {
	Missing []string
	Present []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("required columns missing: %s (file has: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Present, ", "))
}
