// Package core contains the transform logic of the import optimizer: header
// reconciliation, row reshaping, line-break normalization, AcCode rewriting
// and chunk splitting. It has no UI dependencies and can be driven by the
// CLI or by tests without modification.
//
// # Error Codes Reference
//
// Failures are mapped to user-facing messages with codes for support
// reference:
//
//	FILE001 - Input file not found
//	          Action: Check the path and try again
//	FILE002 - Input file is empty
//	          Action: Export the file again and retry
//	ENC001  - Encoding could not be detected
//	          Action: Re-save the file as UTF-8
//	CSV001  - File could not be parsed as delimited text
//	          Action: Check for stray quotes or a mixed delimiter
//	ERR000  - Unexpected error (fallback)
//	          Action: Re-run with LOG_LEVEL=debug and report the output
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.
package core

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when the parsed file contains zero rows.
var ErrEmptyInput = errors.New("empty input: no rows after parse")

// UserMessage provides user-friendly error information with a support code.
type UserMessage struct {
	Message string // what happened
	Action  string // what to do about it
	Code    string // support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The input file was not found",
			Action:  "Check the path and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "cannot find the file",
		msg: UserMessage{
			Message: "The input file was not found",
			Action:  "Check the path and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "empty input",
		msg: UserMessage{
			Message: "The input file contains no rows",
			Action:  "Export the file again and retry",
			Code:    "FILE002",
		},
	},
	{
		pattern: "encoding undetected",
		msg: UserMessage{
			Message: "The file's text encoding could not be detected",
			Action:  "Re-save the file as UTF-8",
			Code:    "ENC001",
		},
	},
	{
		pattern: "parse csv",
		msg: UserMessage{
			Message: "The file could not be parsed as delimited text",
			Action:  "Check for stray quotes or a mixed delimiter",
			Code:    "CSV001",
		},
	},
}

// MapError translates a technical error into a user-facing message.
// Unmatched errors fall back to ERR000 with the original text attached.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	lower := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred: " + err.Error(),
		Action:  "Re-run with LOG_LEVEL=debug and report the output",
		Code:    "ERR000",
	}
}
