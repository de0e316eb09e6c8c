// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record and configuration types for the
// scholar-metrics pipeline.
package types

// Canonical column names used in the cleaned dataset. The cleaner renames
// source headers to these; every downstream stage addresses columns by them.
const (
	ColResearcherName = "researcher_name"
	ColDocumentCount  = "document_count"
	ColTotalCitations = "total_citations"
	ColCNCI           = "cnci"
	ColHIndex         = "h_index"
	ColPctOpenAccess  = "pct_open_access"
)

// NumericColumns lists the canonical columns that carry numeric values.
// Cells in these columns are coerced to numbers during cleaning.
var NumericColumns = []string{
	ColDocumentCount,
	ColTotalCitations,
	ColCNCI,
	ColHIndex,
	ColPctOpenAccess,
}

// RenameMap maps known source header labels to canonical column names.
// Headers absent from the map pass through unchanged.
var RenameMap = map[string]string{
	"Name":                                ColResearcherName,
	"Web of Science Documents":            ColDocumentCount,
	"Times Cited":                         ColTotalCitations,
	"Category Normalized Citation Impact": ColCNCI,
	"H-Index":                             ColHIndex,
	"% All Open Access Documents":         ColPctOpenAccess,
}

// Researcher is one cleaned bibliometric record. DocumentCount and
// TotalCitations are always present; every retained row has both. The
// remaining numeric fields are nil when the source cell was missing or
// failed coercion.
type Researcher struct {
	// Name is the researcher's display name. May be empty.
	Name string `json:"researcher_name" yaml:"researcher_name"`

	// DocumentCount is the number of indexed documents.
	DocumentCount float64 `json:"document_count" yaml:"document_count"`

	// TotalCitations is the total citation count across documents.
	TotalCitations float64 `json:"total_citations" yaml:"total_citations"`

	// CNCI is the category-normalized citation impact.
	CNCI *float64 `json:"cnci,omitempty" yaml:"cnci,omitempty"`

	// HIndex is the researcher's h-index.
	HIndex *float64 `json:"h_index,omitempty" yaml:"h_index,omitempty"`

	// PctOpenAccess is the percentage of open-access documents, in [0,100],
	// stored without a percent symbol.
	PctOpenAccess *float64 `json:"pct_open_access,omitempty" yaml:"pct_open_access,omitempty"`
}
