package core

// pipeline.go wires the transform steps into one synchronous run:
// detect -> parse -> normalize -> reconcile -> reshape -> write -> split.
// The whole file is materialized in memory before anything is written; there
// is no streaming mode and no partial-success state.

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tt44mm/csvrepair/internal/codec"
	"github.com/tt44mm/csvrepair/internal/logging"
	"github.com/tt44mm/csvrepair/internal/schema"
)

// Options configures one optimizer run.
type Options struct {
	InputPath  string
	OutputPath string // empty derives <base>_optimized<ext>

	Schema schema.Schema

	// Marker replaces embedded line breaks (default "<br>").
	Marker string

	// ChunkRows is the number of data rows per part file.
	ChunkRows int

	// SplitThreshold is the on-disk size above which splitting is offered.
	SplitThreshold int64

	// ConfirmSplit decides whether an oversized output is split into the
	// given number of parts. nil means splitting is unavailable (the
	// deterministic no-op for non-interactive runs).
	ConfirmSplit func(parts int) bool

	// Tokens supplies the AcCode replacement token. nil skips all rewrites.
	Tokens TokenSource
}

// Result is the run report.
type Result struct {
	RunID      string
	InputPath  string
	OutputPath string

	Encoding  string
	Delimiter rune

	HeaderRows int
	DataRows   int

	FoundColumns   int
	MissingColumns []string

	LineBreaks      int
	Delimiters      int
	DelimiterHits   []DelimiterHit
	TrailingMarkers int

	IDHadContent bool
	CodeRewrites int

	OutputSize int64
	ChunkFiles []string
	ChunkRows  []int

	Duration time.Duration
}

// Run executes the full pipeline against one input file.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	res := &Result{
		RunID:      uuid.NewString(),
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
	}
	if res.OutputPath == "" {
		res.OutputPath = DeriveOutputPath(opts.InputPath)
	}
	marker := opts.Marker
	if marker == "" {
		marker = "<br>"
	}
	logger := logging.FromContext(logging.WithRunID(ctx, res.RunID))

	c, text, err := codec.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	res.Encoding = c.Name()
	res.Delimiter = codec.SniffDelimiter(text)
	logger.Info("input detected",
		"file", opts.InputPath,
		"encoding", res.Encoding,
		"delimiter", string(res.Delimiter),
	)

	rows, err := codec.ParseRecords(text, res.Delimiter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	norm := NormalizeRows(rows, res.Delimiter, marker)
	res.LineBreaks = norm.LineBreaks
	res.Delimiters = norm.Delimiters
	res.DelimiterHits = norm.DelimiterHits
	res.TrailingMarkers = norm.TrailingMarkers

	res.HeaderRows = HeaderRowCount(rows)
	rec := Reconcile(opts.Schema, rows[0])
	res.FoundColumns = rec.Found()
	res.MissingColumns = rec.Missing
	if len(rec.Missing) > 0 {
		logger.Warn("missing columns backfilled", "columns", strings.Join(rec.Missing, ", "))
	}

	header := BuildHeaderBlock(opts.Schema, rec, rows[:res.HeaderRows])
	dataRows := rows[res.HeaderRows:]
	res.DataRows = len(dataRows)

	reshaper := NewReshaper(opts.Schema, rec)
	session := NewSession(opts.Tokens)
	codeIdx := reshaper.CodeIndex()

	reshaped := make([][]string, 0, len(dataRows))
	for _, row := range dataRows {
		out := reshaper.Reshape(row)
		if codeIdx >= 0 {
			out[codeIdx] = session.Rewrite(out[codeIdx])
		}
		reshaped = append(reshaped, out)
	}
	res.IDHadContent = reshaper.IDHadContent
	res.CodeRewrites = session.Rewrites

	outRows := make([][]string, 0, len(header)+len(reshaped))
	outRows = append(outRows, header...)
	outRows = append(outRows, reshaped...)
	if err := codec.WriteFile(res.OutputPath, outRows, res.Delimiter, c); err != nil {
		return nil, err
	}

	info, err := os.Stat(res.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("stat output: %w", err)
	}
	res.OutputSize = info.Size()
	logger.Info("output written",
		"file", res.OutputPath,
		"rows", res.DataRows,
		"bytes", res.OutputSize,
	)

	if opts.SplitThreshold > 0 && res.OutputSize > opts.SplitThreshold && opts.ConfirmSplit != nil {
		parts := len(ChunkRows(reshaped, opts.ChunkRows))
		if parts > 1 && opts.ConfirmSplit(parts) {
			split, err := WriteChunks(res.OutputPath, header, reshaped, opts.ChunkRows, res.Delimiter, c)
			if err != nil {
				return nil, err
			}
			res.ChunkFiles = split.Files
			res.ChunkRows = split.RowCounts
			logger.Info("output split", "parts", len(split.Files), "rows_per_part", opts.ChunkRows)
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

// DeriveOutputPath builds the default output name next to the input:
// dokumente.csv -> dokumente_optimized.csv.
func DeriveOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_optimized" + ext
}
