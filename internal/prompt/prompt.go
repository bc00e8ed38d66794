// Package prompt provides the interactive stdin prompting used for path
// entry, the AcCode token and the split confirmation. All prompting is gated
// on an attached terminal; without one, callers fall back to skipping the
// optional step instead of blocking on a pipe that never answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Prompter reads answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompter bound to stdin/stdout.
func New() *Prompter {
	return &Prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

// Line prints the label and returns the trimmed answer. Surrounding quotes
// are stripped so paths pasted from a file manager work as-is.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(answer), `"'`), nil
}

// YesNo asks until it gets a y/n answer; EOF or a plain Enter counts as no.
func (p *Prompter) YesNo(label string) bool {
	for {
		answer, err := p.Line(label + " [y/n]: ")
		if err != nil {
			return false
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "j", "ja":
			return true
		case "n", "no", "nein", "":
			return false
		}
	}
}

// Token asks for a token of exactly length characters, re-prompting on
// shorter or longer input. EOF means no token is available.
func (p *Prompter) Token(label string, length int) (string, bool) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return "", false
		}
		if len([]rune(answer)) == length {
			return answer, true
		}
		fmt.Fprintf(p.out, "Please enter exactly %d characters.\n", length)
	}
}
