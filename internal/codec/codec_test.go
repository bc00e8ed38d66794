package codec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDetect_CandidateOrder(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
		text string
	}{
		{
			"bom file is utf-8-sig",
			append([]byte{0xEF, 0xBB, 0xBF}, []byte("a;b")...),
			"utf-8-sig",
			"a;b",
		},
		{
			"plain ascii is utf-8",
			[]byte("a,b,c"),
			"utf-8",
			"a,b,c",
		},
		{
			"valid multibyte is utf-8",
			[]byte("gr\xc3\xb6\xc3\x9fe"),
			"utf-8",
			"größe",
		},
		{
			"legacy umlaut is windows-1252",
			[]byte("gr\xf6\xdfe"),
			"windows-1252",
			"größe",
		},
		{
			"cp1252 euro sign",
			[]byte("10\x80"),
			"windows-1252",
			"10€",
		},
		{
			"cp1252 hole falls through to latin-1",
			[]byte("a\x81b"),
			"latin-1",
			"ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, text, err := Detect(tt.data, Candidates())
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if c.Name() != tt.want {
				t.Errorf("Detect() codec = %q, want %q", c.Name(), tt.want)
			}
			if text != tt.text {
				t.Errorf("Detect() text = %q, want %q", text, tt.text)
			}
		})
	}
}

func TestDetect_NoCandidateMatches(t *testing.T) {
	// Only reachable with a restricted candidate list.
	_, _, err := Detect([]byte{0xFF, 0xFE}, []Codec{utf8Codec{}})
	if !errors.Is(err, ErrEncodingUndetected) {
		t.Errorf("Detect() error = %v, want ErrEncodingUndetected", err)
	}
}

func TestUTF8Sig_RoundTrip(t *testing.T) {
	c := utf8SigCodec{}
	data, err := c.Encode("a;b")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Errorf("Encode() = % x, want leading BOM", data)
	}
	text, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if text != "a;b" {
		t.Errorf("Decode() = %q, want %q", text, "a;b")
	}
}

func TestUTF8Sig_RejectsMissingBOM(t *testing.T) {
	if _, err := (utf8SigCodec{}).Decode([]byte("a;b")); err == nil {
		t.Error("Decode() without BOM succeeded, want error")
	}
}

func TestWindows1252_RoundTrip(t *testing.T) {
	c := windows1252Codec{}
	data, err := c.Encode("größe €")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	text, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if text != "größe €" {
		t.Errorf("Decode() = %q, want %q", text, "größe €")
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"semicolon present", "a;b;c\n1;2;3", ';'},
		{"comma only", "a,b,c\n1,2,3", ','},
		{"no delimiter defaults to comma", "abc", ','},
		{"semicolon beats comma", "a,b;c", ';'},
		{"semicolon beyond prefix ignored", strings.Repeat("x", DelimiterPrefixSize) + ";", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffDelimiter(tt.text); got != tt.want {
				t.Errorf("SniffDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRecords(t *testing.T) {
	rows, err := ParseRecords("a;b;c\n1;2;3\n", ';')
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}
	want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ParseRecords() = %v, want %v", rows, want)
	}
}

func TestParseRecords_QuotedMultiline(t *testing.T) {
	rows, err := ParseRecords("a;b\n\"line1\nline2\";x\n", ';')
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ParseRecords() rows = %d, want 2", len(rows))
	}
	if rows[1][0] != "line1\nline2" {
		t.Errorf("quoted field = %q, want embedded newline preserved", rows[1][0])
	}
}

func TestParseRecords_RaggedRows(t *testing.T) {
	rows, err := ParseRecords("a;b;c\n1;2\n", ';')
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}
	if len(rows[1]) != 2 {
		t.Errorf("short row kept %d fields, want 2", len(rows[1]))
	}
}

func TestWriteFile_ReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{{"Sprache*", "ID"}, {"größe", ""}}

	if err := WriteFile(path, rows, ';', utf8SigCodec{}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile raw error = %v", err)
	}
	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Error("written file lacks the BOM of its codec")
	}

	c, text, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if c.Name() != "utf-8-sig" {
		t.Errorf("ReadFile() codec = %q, want utf-8-sig", c.Name())
	}
	got, err := ParseRecords(text, ';')
	if err != nil {
		t.Fatalf("ParseRecords() error = %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip = %v, want %v", got, rows)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("ReadFile() on missing file succeeded, want error")
	}
}
