// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table reads and writes the delimited tabular files the pipeline
// stages exchange. A Table is a header row plus string cells; typing is the
// caller's concern. Writes go through a temp file and rename so a failed
// run never leaves a partially written dataset.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingInput reports that the source dataset does not exist at the
// configured path.
var ErrMissingInput = errors.New("missing input file")

// ErrMalformedInput reports that the header row could not be parsed into
// columns.
var ErrMalformedInput = errors.New("malformed input")

// Table is an in-memory delimited dataset: one header row and zero or more
// data rows. Every row has exactly len(Header) cells; short source rows are
// padded with empty cells on load.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell returns the value at (row, column name), or "" if the column is
// absent.
func (t *Table) Cell(row int, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 {
		return ""
	}
	return t.Rows[row][i]
}

// Load reads a CSV file into a Table. The header row is required; its
// labels are stripped of surrounding whitespace. Data rows shorter than
// the header are padded with empty cells, longer rows are truncated.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %v", ErrMalformedInput, path, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := &Table{Header: header}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading rows of %s: %v", ErrMalformedInput, path, err)
		}
		t.Rows = append(t.Rows, normalizeWidth(row, len(header)))
	}
	return t, nil
}

// Save writes the Table as CSV to path, creating parent directories if
// absent. The write is atomic: content goes to a temp file in the
// destination directory, which is renamed over path on success.
func (t *Table) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Header); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// WriteFileAtomic writes data to path with the same temp-then-rename
// discipline as Save, creating parent directories if absent.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// normalizeWidth pads or truncates row to exactly width cells.
func normalizeWidth(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
