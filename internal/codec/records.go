package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseRecords parses decoded text into rows using the given delimiter.
// Rows may be ragged; no per-record field count is enforced.
func ParseRecords(text string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// MarshalRecords renders rows as minimally-quoted delimited text.
func MarshalRecords(rows [][]string, delim rune) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = delim
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return b.String(), nil
}

// WriteFile renders rows with the given delimiter, encodes the result with
// the codec and writes it to path in one piece. There is no atomic rename:
// a crash mid-write leaves a truncated file.
func WriteFile(path string, rows [][]string, delim rune, c Codec) error {
	text, err := MarshalRecords(rows, delim)
	if err != nil {
		return err
	}
	data, err := c.Encode(text)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Name(), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads the whole file and detects its encoding against the default
// candidate list. Peak memory is proportional to file size; export files in
// this domain are small and the tradeoff is accepted.
func ReadFile(path string) (Codec, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	c, text, err := Detect(data, Candidates())
	if err != nil {
		return nil, "", err
	}
	return c, text, nil
}
