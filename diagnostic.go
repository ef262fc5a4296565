package gscript

import (
	"fmt"
	"strings"
)

// Snippet renders the error with the offending source line:
//
//	weighting.gs:4: syntax error: unknown operator "="
//	 4 |   road_class = primary ? 1.2
//	   = hint: did you mean "=="?
//
// source is the full script; when it does not hold the line, Text is shown.
func (e *ParseError) Snippet(source []byte) string {
	var b strings.Builder

	loc := e.File
	if e.Line > 0 {
		if loc != "" {
			loc += ":"
		}
		loc += fmt.Sprintf("%d", e.Line)
	}
	if loc != "" {
		b.WriteString(loc + ": ")
	}
	b.WriteString(e.Kind.String() + ": " + e.Message + "\n")

	if e.Line <= 0 {
		return b.String()
	}

	text := e.Text
	if line, ok := sourceLine(source, e.Line); ok {
		text = line
	}

	gutter := fmt.Sprintf("%d", e.Line)
	fmt.Fprintf(&b, " %s | %s\n", gutter, text)
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " %s = hint: %s\n", strings.Repeat(" ", len(gutter)), e.Suggestion)
	}

	return b.String()
}

// sourceLine returns the 1-based line n of source without its terminator.
func sourceLine(source []byte, n int) (string, bool) {
	if len(source) == 0 {
		return "", false
	}

	lines := strings.Split(string(source), "\n")
	if n > len(lines) {
		return "", false
	}

	return strings.TrimSuffix(lines[n-1], "\r"), true
}
