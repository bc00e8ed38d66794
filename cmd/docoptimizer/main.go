// Command docoptimizer checks and optimizes document-import CSV files:
// it normalizes embedded line breaks, reconciles the header against the
// expected column layout, blanks the ID column, optionally rewrites AcCodes,
// and splits oversized output into part files.
//
// Usage:
//
//	docoptimizer [input.csv [output.csv]]
//
// With no arguments and an attached terminal, both paths are prompted for.
// The output path defaults to <input>_optimized<ext>.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tt44mm/csvrepair/internal/config"
	"github.com/tt44mm/csvrepair/internal/core"
	"github.com/tt44mm/csvrepair/internal/logging"
	"github.com/tt44mm/csvrepair/internal/prompt"
	"github.com/tt44mm/csvrepair/internal/schema"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		msg := core.MapError(err)
		fmt.Printf("Error [%s]: %s\n", msg.Code, msg.Message)
		fmt.Printf("  %s\n", msg.Action)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	sch, ok := schema.Get(cfg.Pipeline.Profile)
	if !ok {
		return fmt.Errorf("unknown schema profile %q (registered: %v)", cfg.Pipeline.Profile, schema.Keys())
	}

	input, output, err := resolvePaths(args)
	if err != nil {
		return err
	}

	interactive := prompt.Interactive()
	opts := core.Options{
		InputPath:      input,
		OutputPath:     output,
		Schema:         sch,
		Marker:         cfg.Pipeline.Marker,
		ChunkRows:      cfg.Split.ChunkRows,
		SplitThreshold: cfg.Split.ThresholdBytes,
		ConfirmSplit:   splitPolicy(cfg.Split.Confirm, interactive),
	}
	if interactive {
		opts.Tokens = promptTokenSource{p: prompt.New()}
	}

	res, err := core.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	report(res)
	return nil
}

// resolvePaths reads input and output paths from the positional arguments,
// prompting for both when none are given and a terminal is attached.
func resolvePaths(args []string) (string, string, error) {
	switch len(args) {
	case 0:
		if !prompt.Interactive() {
			return "", "", errors.New("usage: docoptimizer <input.csv> [output.csv]")
		}
		p := prompt.New()
		input, err := p.Line("Path to the CSV file: ")
		if err != nil || input == "" {
			return "", "", errors.New("no input path given")
		}
		output, err := p.Line("Output file (Enter for automatic): ")
		if err != nil {
			output = ""
		}
		return input, output, nil
	case 1:
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", errors.New("usage: docoptimizer <input.csv> [output.csv]")
	}
}

// splitPolicy translates the configured confirmation mode into the split
// decision callback. nil disables splitting entirely.
func splitPolicy(mode string, interactive bool) func(parts int) bool {
	switch mode {
	case config.SplitAlways:
		return func(int) bool { return true }
	case config.SplitAsk:
		if interactive {
			p := prompt.New()
			return func(parts int) bool {
				return p.YesNo(fmt.Sprintf("Output exceeds the size limit. Split into %d files?", parts))
			}
		}
	}
	return nil
}

// promptTokenSource asks the operator for the AcCode replacement token.
type promptTokenSource struct {
	p *prompt.Prompter
}

func (s promptTokenSource) Token() (string, bool) {
	return s.p.Token(fmt.Sprintf("AcCode replacement token (%d characters): ", core.TokenLength), core.TokenLength)
}

// report prints the human-readable run summary to stdout.
func report(res *core.Result) {
	fmt.Println("Optimization complete")
	fmt.Printf("  Input:     %s (%s, delimiter %q)\n", res.InputPath, res.Encoding, res.Delimiter)
	fmt.Printf("  Output:    %s\n", res.OutputPath)
	fmt.Printf("  Rows:      %d data rows, %d header row(s)\n", res.DataRows, res.HeaderRows)
	fmt.Printf("  Columns:   %d matched, %d missing\n", res.FoundColumns, len(res.MissingColumns))
	for _, col := range res.MissingColumns {
		fmt.Printf("    - %s (added empty)\n", col)
	}
	if res.LineBreaks > 0 {
		fmt.Printf("  Line breaks replaced: %d (trailing markers removed: %d)\n", res.LineBreaks, res.TrailingMarkers)
	}
	if res.Delimiters > 0 {
		fmt.Printf("  Delimiters inside fields replaced with ':': %d\n", res.Delimiters)
		for _, hit := range res.DelimiterHits {
			fmt.Printf("    line %d, column %d: %s\n", hit.Line, hit.Column, hit.Preview)
		}
	}
	if res.IDHadContent {
		fmt.Println("  ID column: content removed")
	}
	if res.CodeRewrites > 0 {
		fmt.Printf("  AcCodes rewritten: %d\n", res.CodeRewrites)
	}
	if len(res.ChunkFiles) > 0 {
		fmt.Printf("  Split into %d files:\n", len(res.ChunkFiles))
		for i, f := range res.ChunkFiles {
			fmt.Printf("    %s (%d rows)\n", f, res.ChunkRows[i])
		}
	}
	fmt.Printf("  Duration:  %s\n", res.Duration)
}
