package gscript

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")

	// ErrStructure indicates an expression line before any assignment start.
	ErrStructure = errors.New("structure error")

	// ErrSyntax indicates a malformed assignment or condition.
	ErrSyntax = errors.New("syntax error")

	// ErrEmptyDocument indicates input without any assignment.
	ErrEmptyDocument = errors.New("empty document")

	// ErrFormat indicates a script that cannot be rendered back to parseable text.
	ErrFormat = errors.New("format error")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// KindStructure is an expression found before any assignment start.
	KindStructure ErrorKind = iota + 1
	// KindSyntax is a missing colon or a malformed condition.
	KindSyntax
	// KindEmptyDocument is an input that yields no assignments.
	KindEmptyDocument
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structure error"
	case KindSyntax:
		return "syntax error"
	case KindEmptyDocument:
		return "empty document"
	default:
		return "error"
	}
}

// sentinel returns the sentinel error for the kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindStructure:
		return ErrStructure
	case KindSyntax:
		return ErrSyntax
	case KindEmptyDocument:
		return ErrEmptyDocument
	default:
		return nil
	}
}

// ParseError is a positional script error meant for display to the script author.
type ParseError struct {
	File       string    `json:"file,omitempty" yaml:"file,omitempty"`             // Source name, if known
	Message    string    `json:"message" yaml:"message"`                           // Human-readable message
	Text       string    `json:"text,omitempty" yaml:"text,omitempty"`             // Offending source text
	Suggestion string    `json:"suggestion,omitempty" yaml:"suggestion,omitempty"` // Optional fix hint
	Kind       ErrorKind `json:"kind" yaml:"kind"`                                 // Error category
	Line       int       `json:"line" yaml:"line"`                                 // 1-based line, 0 when not tied to a line
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.File != "" && e.Line > 0:
		msg = e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	case e.File != "":
		msg = e.File + ": " + msg
	case e.Line > 0:
		msg += " at line " + strconv.Itoa(e.Line)
	}

	msg += ": " + e.Message
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}

	return msg
}

// Is reports whether target is ErrParse or the sentinel of the error kind.
func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}

	s := e.Kind.sentinel()
	return s != nil && target == s
}
