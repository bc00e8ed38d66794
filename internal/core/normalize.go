package core

// normalize.go rewrites embedded line breaks and stray delimiters inside
// field values so that every record fits on one physical output line.
//
// The order of operations inside a field matters:
//
//  1. CRLF is replaced before bare LF and bare CR, so a Windows break counts
//     once instead of twice.
//  2. Any occurrence of the active delimiter is replaced with a colon. This
//     changes field content, so every hit is recorded with line/column
//     provenance for the run report.
//  3. Trailing markers are stripped repeatedly, so a field that ended in
//     several blank lines ends clean instead of in a run of markers.

import (
	"regexp"
	"strings"
)

// previewLimit bounds the field excerpt stored with each delimiter hit.
const previewLimit = 50

// DelimiterHit records one content-changing delimiter replacement.
type DelimiterHit struct {
	Line    int    // 1-indexed row
	Column  int    // 1-indexed field position
	Preview string // truncated field value before replacement
}

// NormalizeResult reports what the normalizer changed.
type NormalizeResult struct {
	LineBreaks      int            // line-break sequences replaced by the marker
	DelimiterHits   []DelimiterHit // provenance of delimiter replacements
	Delimiters      int            // delimiter characters replaced
	TrailingMarkers int            // trailing markers stripped
}

// NormalizeRows rewrites every field of every row in place. The marker is
// inserted bounded by single spaces; delim is the active field delimiter.
func NormalizeRows(rows [][]string, delim rune, marker string) NormalizeResult {
	var res NormalizeResult

	token := " " + marker + " "
	trailing := regexp.MustCompile(`\s*` + regexp.QuoteMeta(marker) + `\s*$`)
	delimStr := string(delim)

	for i, row := range rows {
		for j, field := range row {
			field, res.LineBreaks = replaceBreaks(field, token, res.LineBreaks)

			if n := strings.Count(field, delimStr); n > 0 {
				res.Delimiters += n
				res.DelimiterHits = append(res.DelimiterHits, DelimiterHit{
					Line:    i + 1,
					Column:  j + 1,
					Preview: preview(field),
				})
				field = strings.ReplaceAll(field, delimStr, ":")
			}

			for {
				stripped := trailing.ReplaceAllString(field, "")
				if stripped == field {
					break
				}
				res.TrailingMarkers++
				field = stripped
			}

			row[j] = field
		}
	}
	return res
}

// replaceBreaks substitutes the three line-break sequences, CRLF first so
// its constituent characters are not counted separately.
func replaceBreaks(field, token string, count int) (string, int) {
	count += strings.Count(field, "\r\n")
	field = strings.ReplaceAll(field, "\r\n", token)

	count += strings.Count(field, "\n")
	field = strings.ReplaceAll(field, "\n", token)

	count += strings.Count(field, "\r")
	field = strings.ReplaceAll(field, "\r", token)

	return field, count
}

func preview(s string) string {
	if len(s) > previewLimit {
		return s[:previewLimit] + "..."
	}
	return s
}
