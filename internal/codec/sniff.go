package codec

import "strings"

// DelimiterPrefixSize is how much decoded text the delimiter sniffer looks
// at. A file whose delimiter first occurs after this prefix is mis-detected;
// that is an accepted limitation of the heuristic.
const DelimiterPrefixSize = 1024

// SniffDelimiter picks the field delimiter from a prefix of the decoded
// text: semicolon if one appears anywhere in the prefix, comma otherwise.
func SniffDelimiter(text string) rune {
	prefix := text
	if len(prefix) > DelimiterPrefixSize {
		prefix = prefix[:DelimiterPrefixSize]
	}
	if strings.ContainsRune(prefix, ';') {
		return ';'
	}
	return ','
}
