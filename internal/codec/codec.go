// Package codec handles the text-level concerns of import files: picking an
// encoding from a fixed candidate list, sniffing the field delimiter, and
// reading and writing delimited records in the detected encoding.
//
// Encoding detection is trial decoding, not charset analysis. Each candidate
// is asked to decode the whole file; the first one that succeeds wins. This
// is a best-effort heuristic, not a format guarantee: a Latin-1 file full of
// CP1252-only punctuation decodes fine as Latin-1 with the wrong glyphs, and
// nothing here will notice.
package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrEncodingUndetected is returned when no candidate decodes the file.
var ErrEncodingUndetected = errors.New("encoding undetected: no candidate encoding decodes the file")

// utf8BOM is the UTF-8 byte order mark written by Windows tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Codec converts between raw file bytes and text.
type Codec interface {
	// Name returns the encoding label used in logs and reports.
	Name() string

	// Decode converts file bytes to text, or fails if the bytes are not
	// valid in this encoding.
	Decode(data []byte) (string, error)

	// Encode converts text back to file bytes in this encoding.
	Encode(text string) ([]byte, error)
}

// Candidates returns the default ordered candidate list:
// UTF-8 with signature, plain UTF-8, Windows-1252, Latin-1.
//
// Latin-1 accepts any byte sequence, so with this list detection cannot
// fail; ErrEncodingUndetected is only reachable with a custom list.
func Candidates() []Codec {
	return []Codec{
		utf8SigCodec{},
		utf8Codec{},
		windows1252Codec{},
		latin1Codec{},
	}
}

// Detect tries each candidate in order against the full file content and
// returns the first codec that decodes without error, along with the decoded
// text.
func Detect(data []byte, candidates []Codec) (Codec, string, error) {
	for _, c := range candidates {
		text, err := c.Decode(data)
		if err != nil {
			continue
		}
		return c, text, nil
	}
	return nil, "", ErrEncodingUndetected
}

// utf8SigCodec is UTF-8 with a mandatory byte order mark. It sorts first in
// the candidate list so that BOM-carrying files keep their signature on
// rewrite.
type utf8SigCodec struct{}

func (utf8SigCodec) Name() string { return "utf-8-sig" }

func (utf8SigCodec) Decode(data []byte) (string, error) {
	if len(data) < len(utf8BOM) || data[0] != utf8BOM[0] || data[1] != utf8BOM[1] || data[2] != utf8BOM[2] {
		return "", errors.New("missing utf-8 signature")
	}
	body := data[len(utf8BOM):]
	if !utf8.Valid(body) {
		return "", errors.New("invalid utf-8 after signature")
	}
	return string(body), nil
}

func (utf8SigCodec) Encode(text string) ([]byte, error) {
	out := make([]byte, 0, len(utf8BOM)+len(text))
	out = append(out, utf8BOM...)
	return append(out, text...), nil
}

// utf8Codec is plain UTF-8 without a signature.
type utf8Codec struct{}

func (utf8Codec) Name() string { return "utf-8" }

func (utf8Codec) Decode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("invalid utf-8")
	}
	return string(data), nil
}

func (utf8Codec) Encode(text string) ([]byte, error) {
	return []byte(text), nil
}

// windows1252Codec decodes CP1252. Five code points are undefined in CP1252;
// rejecting them keeps this candidate meaningful ahead of Latin-1, which
// accepts everything.
type windows1252Codec struct{}

func (windows1252Codec) Name() string { return "windows-1252" }

func (windows1252Codec) Decode(data []byte) (string, error) {
	for i, b := range data {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return "", fmt.Errorf("byte 0x%02X at offset %d is undefined in windows-1252", b, i)
		}
	}
	return charmap.Windows1252.NewDecoder().String(string(data))
}

func (windows1252Codec) Encode(text string) ([]byte, error) {
	out, err := charmap.Windows1252.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("encode windows-1252: %w", err)
	}
	return []byte(out), nil
}

// latin1Codec decodes ISO 8859-1. Every byte is defined, so decoding never
// fails; it is the terminal fallback of the candidate list.
type latin1Codec struct{}

func (latin1Codec) Name() string { return "latin-1" }

func (latin1Codec) Decode(data []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(data))
}

func (latin1Codec) Encode(text string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("encode latin-1: %w", err)
	}
	return []byte(out), nil
}
