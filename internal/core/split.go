package core

// split.go partitions an oversized output into part files. The size check
// happens once, against the unsplit file; individual parts carry the full
// header block plus their slice of data rows and may themselves exceed the
// threshold.

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tt44mm/csvrepair/internal/codec"
)

// SplitResult reports the part files written.
type SplitResult struct {
	Files     []string
	RowCounts []int
}

// ChunkRows partitions data rows into groups of size; the last group may be
// smaller. Row order is preserved within and across groups, and the groups
// are views into data, not copies.
func ChunkRows(data [][]string, size int) [][][]string {
	if size <= 0 || len(data) == 0 {
		return nil
	}
	chunks := make([][][]string, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// PartPath derives the name of part n by inserting the index before the
// extension: out.csv -> out_part1.csv.
func PartPath(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_part%d%s", strings.TrimSuffix(path, ext), n, ext)
}

// WriteChunks writes one file per group of rows, each prefixed with a
// verbatim copy of the header block, in the same delimiter and encoding as
// the unsplit output.
func WriteChunks(path string, header [][]string, data [][]string, size int, delim rune, c codec.Codec) (SplitResult, error) {
	var res SplitResult
	for i, chunk := range ChunkRows(data, size) {
		rows := make([][]string, 0, len(header)+len(chunk))
		rows = append(rows, header...)
		rows = append(rows, chunk...)

		part := PartPath(path, i+1)
		if err := codec.WriteFile(part, rows, delim, c); err != nil {
			return res, fmt.Errorf("write part %d: %w", i+1, err)
		}
		res.Files = append(res.Files, part)
		res.RowCounts = append(res.RowCounts, len(chunk))
	}
	return res, nil
}
