package core

// reshape.go turns positionally-aligned source rows into rows in canonical
// column order. All cell access goes through cellAt, so ragged rows (shorter
// than the header) read as empty instead of panicking.

import (
	"strings"

	"github.com/tt44mm/csvrepair/internal/schema"
)

// Reshaper maps source rows into canonical schema order.
type Reshaper struct {
	sch     schema.Schema
	rec     Reconciliation
	idIndex int

	// IDHadContent records whether the identifier column ever held
	// non-empty content before redaction. Reporting only; the output is
	// blanked either way.
	IDHadContent bool
}

// NewReshaper builds a reshaper for one reconciled file.
func NewReshaper(sch schema.Schema, rec Reconciliation) *Reshaper {
	return &Reshaper{
		sch:     sch,
		rec:     rec,
		idIndex: sch.IndexOf(sch.Identifier),
	}
}

// Reshape builds one output row in schema order: matched columns read their
// positionally-aligned source cell, missing columns backfill empty, and the
// identifier column is always forced to empty.
func (rs *Reshaper) Reshape(row []string) []string {
	out := make([]string, rs.sch.Len())
	for i, col := range rs.sch.Columns {
		pos, ok := rs.rec.Position(col.Name())
		if !ok {
			continue
		}
		value := cellAt(row, pos)
		if i == rs.idIndex {
			if strings.TrimSpace(value) != "" {
				rs.IDHadContent = true
			}
			continue
		}
		out[i] = value
	}
	return out
}

// CodeIndex returns the schema position of the code column, or -1 if the
// schema declares none.
func (rs *Reshaper) CodeIndex() int {
	return rs.sch.IndexOf(rs.sch.CodeColumn)
}

// cellAt returns the field at pos, or empty when the row is shorter.
func cellAt(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}
