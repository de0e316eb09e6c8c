// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanse

import (
	"strconv"
	"strings"
)

// CoerceNumeric converts a raw cell value to a number. Every literal "%"
// is removed and surrounding whitespace trimmed before parsing, so
// "12.5%" and "12.5" coerce to the same value. Returns ok=false when the
// cell cannot be parsed; coercion failure is never an error, the cell
// degrades to null.
func CoerceNumeric(cell string) (v float64, ok bool) {
	s := strings.ReplaceAll(cell, "%", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumeric renders a coerced value back to its canonical textual
// form: the shortest decimal representation that round-trips. Identical
// inputs always produce identical output, which keeps repeated cleaning
// runs byte-identical.
func FormatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
