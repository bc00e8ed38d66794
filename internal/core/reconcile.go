package core

// reconcile.go matches a file's header cells against a canonical schema and
// works out how many header rows the file carries.
//
// Some upstream exports repeat the header block in three languages, one row
// per language. Those continuation rows are recognized by what they are not:
// real data in this domain always carries a document URL, so a row with no
// URL-like cell is treated as another header row.

import (
	"strings"

	"github.com/tt44mm/csvrepair/internal/schema"
)

// Reconciliation is the outcome of matching a header row against a schema.
type Reconciliation struct {
	// Mapping maps each matched raw header cell to its canonical column
	// name. Raw headers that match no variant are absent; their data is
	// dropped during reshaping.
	Mapping map[string]string

	// Missing lists canonical columns absent from the file, in schema order.
	Missing []string

	// positions maps canonical names to the source column position that
	// supplies their data. With duplicate raw headers the last position
	// wins.
	positions map[string]int
}

// Found returns the number of matched header cells.
func (r Reconciliation) Found() int {
	return len(r.Mapping)
}

// Position returns the source column position feeding the given canonical
// column, or false if the column is missing from the file.
func (r Reconciliation) Position(canonical string) (int, bool) {
	pos, ok := r.positions[canonical]
	return pos, ok
}

// Reconcile matches raw header cells against the schema. Each cell is
// trimmed and stripped of a leading byte order mark before comparison;
// matching is exact and case-sensitive against every variant of every
// column, first declared column wins, and each raw header contributes at
// most one mapping entry.
func Reconcile(sch schema.Schema, header []string) Reconciliation {
	rec := Reconciliation{
		Mapping:   make(map[string]string),
		positions: make(map[string]int),
	}

	found := make(map[string]bool, sch.Len())
	for pos, raw := range header {
		canonical, ok := sch.Resolve(CleanHeaderCell(raw))
		if !ok {
			continue
		}
		rec.Mapping[raw] = canonical
		rec.positions[canonical] = pos
		found[canonical] = true
	}

	for _, name := range sch.Names() {
		if !found[name] {
			rec.Missing = append(rec.Missing, name)
		}
	}
	return rec
}

// CleanHeaderCell strips surrounding whitespace and a leading byte order
// mark from a raw header cell.
func CleanHeaderCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(s)
}

// HeaderRowCount reports how many leading rows form the header block: three
// when rows 2 and 3 both look like header-continuation rows, otherwise one.
func HeaderRowCount(rows [][]string) int {
	if len(rows) >= 3 && isHeaderContinuation(rows[1]) && isHeaderContinuation(rows[2]) {
		return 3
	}
	return 1
}

// isHeaderContinuation reports whether a row qualifies as a translated
// header row: none of its cells may contain a URL-like substring.
func isHeaderContinuation(row []string) bool {
	for _, cell := range row {
		if looksLikeURL(cell) {
			return false
		}
	}
	return true
}

func looksLikeURL(s string) bool {
	s = strings.ToLower(s)
	return strings.Contains(s, "http://") ||
		strings.Contains(s, "https://") ||
		strings.Contains(s, "www.")
}

// BuildHeaderBlock produces the output header rows. A single-row header is
// replaced by the canonical display names. A multi-row header is rebuilt
// column by column: matched columns keep their source cells so translations
// survive, missing columns get the schema variant for that row's language
// slot, falling back to the canonical name.
func BuildHeaderBlock(sch schema.Schema, rec Reconciliation, source [][]string) [][]string {
	if len(source) == 1 {
		return [][]string{sch.Names()}
	}

	block := make([][]string, len(source))
	for r := range source {
		row := make([]string, sch.Len())
		for c, col := range sch.Columns {
			if pos, ok := rec.Position(col.Name()); ok {
				row[c] = cellAt(source[r], pos)
			} else {
				row[c] = col.VariantAt(r)
			}
		}
		block[r] = row
	}
	return block
}
