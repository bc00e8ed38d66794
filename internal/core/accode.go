package core

// accode.go conditionally rewrites the AcCode column of reshaped rows.
//
// AcCodes follow a fixed layout: a two-letter marker, a 3-character
// assignment token, one separator letter, then the code body. Rewriting
// splices a new assignment token into that prefix and keeps the body:
//
//	AC<old-token>A<body>  ->  AC<new-token>A<body>
//
// The token is operator-supplied and solicited at most once per run. The
// one-shot behavior lives in Session rather than package state, so a run
// that declined (or had no interactive input) stays declined without ever
// re-prompting.

import "strings"

const (
	// codeMarker is the two-letter prefix that makes a value eligible.
	codeMarker = "AC"

	// TokenLength is the exact length an assignment token must have.
	TokenLength = 3

	// codeSeparator terminates the rewritten prefix.
	codeSeparator = "A"

	// codeSpliceOffset is where the retained body starts: marker, token
	// and separator together.
	codeSpliceOffset = len(codeMarker) + TokenLength + len(codeSeparator)
)

// TokenSource supplies the replacement token for AcCode rewriting.
// Returning ok=false means no token is available and all rewrites for the
// run are skipped; that is a valid outcome, not an error.
type TokenSource interface {
	Token() (token string, ok bool)
}

// Session holds the per-run token state for the code rewriter.
type Session struct {
	source TokenSource

	asked bool
	skip  bool
	token string

	// Rewrites counts values actually changed, for the run report.
	Rewrites int
}

// NewSession creates a rewrite session. A nil source means rewriting is
// unavailable for the whole run.
func NewSession(source TokenSource) *Session {
	return &Session{source: source}
}

// Rewrite returns the value with a freshly spliced prefix when it is
// eligible, or unchanged otherwise. Values shorter than the splice offset
// are left alone even when they carry the marker.
func (s *Session) Rewrite(value string) string {
	if !strings.HasPrefix(value, codeMarker) {
		return value
	}
	runes := []rune(value)
	if len(runes) < codeSpliceOffset {
		return value
	}

	token, ok := s.acquire()
	if !ok {
		return value
	}

	s.Rewrites++
	return codeMarker + token + codeSeparator + string(runes[codeSpliceOffset:])
}

// acquire returns the cached token, asking the source exactly once per
// session. The outcome is recorded either way, so a skip is as final as a
// success.
func (s *Session) acquire() (string, bool) {
	if s.asked {
		return s.token, !s.skip
	}
	s.asked = true

	if s.source == nil {
		s.skip = true
		return "", false
	}
	token, ok := s.source.Token()
	if !ok || len(token) != TokenLength {
		s.skip = true
		return "", false
	}
	s.token = token
	return token, true
}
