// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cleanse transforms a raw researcher CSV into the canonical
// cleaned dataset: headers trimmed and renamed to canonical names, numeric
// cells coerced with per-cell tolerance, and rows missing either required
// field dropped.
package cleanse

import (
	"fmt"
	"io"

	"github.com/pdiddy/scholar-metrics/internal/table"
	"github.com/pdiddy/scholar-metrics/pkg/types"
)

// Summary holds counts from a cleaning run.
type Summary struct {
	RowsRead    int
	RowsKept    int
	RowsDropped int
}

// Clean applies the full cleaning transform to a loaded table, in place
// order: rename headers, coerce numeric columns, drop rows without a
// usable document_count or total_citations. Columns outside the rename
// map pass through under their original (trimmed) names.
func Clean(t *table.Table) (*table.Table, Summary) {
	out := &table.Table{Header: make([]string, len(t.Header))}
	for i, h := range t.Header {
		if canonical, ok := types.RenameMap[h]; ok {
			out.Header[i] = canonical
		} else {
			out.Header[i] = h
		}
	}

	numeric := make([]bool, len(out.Header))
	for i, h := range out.Header {
		for _, col := range types.NumericColumns {
			if h == col {
				numeric[i] = true
			}
		}
	}

	docIdx := out.ColumnIndex(types.ColDocumentCount)
	citIdx := out.ColumnIndex(types.ColTotalCitations)

	summary := Summary{RowsRead: len(t.Rows)}
	for _, row := range t.Rows {
		cleaned := make([]string, len(row))
		for i, cell := range row {
			if !numeric[i] {
				cleaned[i] = cell
				continue
			}
			if v, ok := CoerceNumeric(cell); ok {
				cleaned[i] = FormatNumeric(v)
			} else {
				cleaned[i] = ""
			}
		}

		// A row survives only with both core variables present. A missing
		// canonical column nulls the field for every row.
		if docIdx < 0 || citIdx < 0 || cleaned[docIdx] == "" || cleaned[citIdx] == "" {
			summary.RowsDropped++
			continue
		}
		out.Rows = append(out.Rows, cleaned)
		summary.RowsKept++
	}
	return out, summary
}

// Run executes the cleaning stage end to end: load the raw CSV, clean it,
// and atomically write the canonical dataset, creating the destination
// directory if absent. Progress goes to w.
func Run(cfg types.CleanConfig, w io.Writer) (Summary, error) {
	raw, err := table.Load(cfg.InputPath)
	if err != nil {
		return Summary{}, err
	}

	cleaned, summary := Clean(raw)

	if err := cleaned.Save(cfg.OutputPath); err != nil {
		return summary, fmt.Errorf("saving cleaned dataset: %w", err)
	}

	fmt.Fprintf(w, "rows read: %d, kept: %d, dropped: %d\n",
		summary.RowsRead, summary.RowsKept, summary.RowsDropped)
	fmt.Fprintf(w, "Cleaned file saved to: %s\n", cfg.OutputPath)
	return summary, nil
}
