// Package schema defines the canonical column layouts that import files are
// reconciled against. Each canonical column carries the list of header
// spellings accepted for it, so the same schema matches German, English and
// French exports of the upstream system.
package schema

// ColumnSpec describes a single canonical column. Variants holds every header
// spelling accepted for the column; Variants[0] is the canonical display name
// used in output files.
type ColumnSpec struct {
	Variants []string
}

// Name returns the canonical display name of the column.
func (c ColumnSpec) Name() string {
	return c.Variants[0]
}

// Matches reports whether the given cleaned header cell equals any accepted
// variant of this column. Comparison is exact and case-sensitive.
func (c ColumnSpec) Matches(header string) bool {
	for _, v := range c.Variants {
		if header == v {
			return true
		}
	}
	return false
}

// VariantAt returns the variant at the given index, falling back to the
// canonical name when the column declares no variant for that language slot.
func (c ColumnSpec) VariantAt(i int) string {
	if i >= 0 && i < len(c.Variants) {
		return c.Variants[i]
	}
	return c.Variants[0]
}

// Schema is an ordered set of canonical columns plus the two columns that
// receive special treatment during reshaping.
type Schema struct {
	// Columns in canonical output order. Variant lists should be pairwise
	// disjoint across columns; if they are not, the first declared column
	// wins and no merging takes place.
	Columns []ColumnSpec

	// Identifier names the column whose content is always blanked in the
	// output, regardless of what the source file carried.
	Identifier string

	// CodeColumn names the column subject to prefix rewriting.
	CodeColumn string
}

// Len returns the number of canonical columns.
func (s Schema) Len() int {
	return len(s.Columns)
}

// Names returns the canonical display names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name()
	}
	return names
}

// IndexOf returns the schema position of the given canonical name, or -1.
func (s Schema) IndexOf(name string) int {
	for i, c := range s.Columns {
		if c.Name() == name {
			return i
		}
	}
	return -1
}

// Resolve returns the canonical name for a cleaned header cell, matching
// every variant of every column in declaration order. The first match wins.
func (s Schema) Resolve(header string) (string, bool) {
	for _, c := range s.Columns {
		if c.Matches(header) {
			return c.Name(), true
		}
	}
	return "", false
}
