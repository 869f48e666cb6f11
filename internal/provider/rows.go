package provider

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RawRow is one source line keyed by header name. Columns missing from a
// short row are absent rather than empty.
type RawRow map[string]string

// Get returns the trimmed value of a column and whether the row has it.
func (r RawRow) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Text returns the trimmed column value, or "" when absent.
func (r RawRow) Text(col string) string {
	return r[col]
}

// Int normalizes a column with Int.
func (r RawRow) Int(col string) *int { return Int(r[col]) }

// Float normalizes a column with Float.
func (r RawRow) Float(col string) *float64 { return Float(r[col]) }

// Str normalizes a column with String.
func (r RawRow) Str(col string) *string { return String(r[col]) }

// ParseRows reads header-driven CSV text into raw rows.
//
// Rows may be shorter or longer than the header; blank lines are skipped.
// A header with empty or duplicate names, or text the tokenizer rejects,
// is an error for the whole unit.
func ParseRows(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)
	if err := validateHeader(header); err != nil {
		return nil, fmt.Errorf("validate header: %w", err)
	}

	var rows []RawRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if blank(rec) {
			continue
		}
		rows = append(rows, parseRecord(header, rec))
	}
	return rows, nil
}

func validateHeader(header []string) error {
	fields := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		header[i] = h
		if h == "" {
			return fmt.Errorf("header contains empty name at %d: %v", i, header)
		}
		if pos, exists := fields[h]; exists {
			return fmt.Errorf("%s appeared at both %d and %d in header", h, pos, i)
		}
		fields[h] = i
	}
	return nil
}

func parseRecord(header, rec []string) RawRow {
	n := min(len(header), len(rec))
	row := make(RawRow, n)
	for i := 0; i < n; i++ {
		row[header[i]] = strings.TrimSpace(rec[i])
	}
	return row
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
