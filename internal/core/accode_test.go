package core

import "testing"

// stubTokens is a scripted token source that counts how often it is asked.
type stubTokens struct {
	token string
	ok    bool
	calls int
}

func (s *stubTokens) Token() (string, bool) {
	s.calls++
	return s.token, s.ok
}

func TestSession_Rewrite(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"standard code", "AC123A45678", "ACXYZA45678"},
		{"splice point exactly at end", "AC123A", "ACXYZA"},
		{"too short to splice", "AC123", "AC123"},
		{"wrong prefix untouched", "BC123A456", "BC123A456"},
		{"lowercase prefix untouched", "ac123A456", "ac123A456"},
		{"empty value", "", ""},
		{"umlaut body survives by rune", "AC123Aöäü", "ACXYZAöäü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&stubTokens{token: "XYZ", ok: true})
			if got := s.Rewrite(tt.value); got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSession_AsksAtMostOnce(t *testing.T) {
	src := &stubTokens{token: "XYZ", ok: true}
	s := NewSession(src)

	s.Rewrite("AC111A1")
	s.Rewrite("AC222A2")
	s.Rewrite("AC333A3")

	if src.calls != 1 {
		t.Errorf("token source asked %d times, want 1", src.calls)
	}
	if s.Rewrites != 3 {
		t.Errorf("Rewrites = %d, want 3", s.Rewrites)
	}
}

func TestSession_DeclinedStaysDeclined(t *testing.T) {
	src := &stubTokens{ok: false}
	s := NewSession(src)

	if got := s.Rewrite("AC111A1"); got != "AC111A1" {
		t.Errorf("Rewrite() after decline = %q, want unchanged", got)
	}
	s.Rewrite("AC222A2")

	if src.calls != 1 {
		t.Errorf("token source asked %d times after decline, want 1", src.calls)
	}
	if s.Rewrites != 0 {
		t.Errorf("Rewrites = %d, want 0", s.Rewrites)
	}
}

func TestSession_WrongLengthTokenSkips(t *testing.T) {
	s := NewSession(&stubTokens{token: "TOOLONG", ok: true})

	if got := s.Rewrite("AC111A1"); got != "AC111A1" {
		t.Errorf("Rewrite() with bad token = %q, want unchanged", got)
	}
	if s.Rewrites != 0 {
		t.Errorf("Rewrites = %d, want 0", s.Rewrites)
	}
}

func TestSession_NilSource(t *testing.T) {
	s := NewSession(nil)

	if got := s.Rewrite("AC111A1"); got != "AC111A1" {
		t.Errorf("Rewrite() with nil source = %q, want unchanged", got)
	}
	if got := s.Rewrite("plain"); got != "plain" {
		t.Errorf("Rewrite() of ineligible value = %q, want unchanged", got)
	}
}

func TestSession_IneligibleValuesNeverAsk(t *testing.T) {
	src := &stubTokens{token: "XYZ", ok: true}
	s := NewSession(src)

	s.Rewrite("plain text")
	s.Rewrite("")
	s.Rewrite("AC12")

	if src.calls != 0 {
		t.Errorf("token source asked %d times for ineligible values, want 0", src.calls)
	}
}
