package gscript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Encode writes assignments to writer as script text.
func Encode(w io.Writer, script []*Assignment, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent, blank: fopt.BlankLines}
	if err := wr.writeScript(script); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes assignments to a file.
func EncodeFile(path string, script []*Assignment, opt *FormatOptions) error {
	b, err := Format(script, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders assignments to bytes.
func Format(script []*Assignment, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, script, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes assignments to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Continuation indent
	blank  bool      // Empty line between assignments
}

// writeScript writes all assignments.
func (w *writer) writeScript(script []*Assignment) error {
	for i, a := range script {
		if a == nil {
			return fmt.Errorf("%w: nil assignment at index %d", ErrFormat, i)
		}
		if i > 0 && w.blank {
			if err := w.writeString("\n"); err != nil {
				return err
			}
		}
		if err := w.writeAssignment(a); err != nil {
			return err
		}
	}

	return nil
}

// writeAssignment writes one assignment and its expressions.
func (w *writer) writeAssignment(a *Assignment) error {
	if err := checkName(a.Name); err != nil {
		return err
	}
	if err := w.writeString(a.Name + ":"); err != nil {
		return err
	}

	exprs := a.Expressions

	// Keep an expression declared on the assignment line inline.
	if len(exprs) > 0 && exprs[0].Line == a.Line {
		if err := checkExpression(a.Name, exprs[0]); err != nil {
			return err
		}
		if err := w.writeString(" " + exprs[0].String()); err != nil {
			return err
		}
		exprs = exprs[1:]
	}
	if err := w.writeString("\n"); err != nil {
		return err
	}

	for _, e := range exprs {
		if err := checkExpression(a.Name, e); err != nil {
			return err
		}
		if err := w.writeString(w.indent + e.String() + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// checkName checks that a name survives a parse round trip.
func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty assignment name", ErrFormat)
	case name != strings.TrimLeft(name, " \t"):
		return fmt.Errorf("%w: assignment name %q has leading blanks", ErrFormat, name)
	case strings.ContainsAny(name, ":#\r\n"):
		return fmt.Errorf("%w: assignment name %q contains a reserved character", ErrFormat, name)
	}

	return nil
}

// checkExpression checks that an expression survives a parse round trip.
func checkExpression(name string, e Expression) error {
	value := strings.TrimSpace(e.Value)
	if value == "" || value != e.Value {
		return fmt.Errorf("%w: %s: empty or padded value %q", ErrFormat, name, e.Value)
	}
	if strings.ContainsAny(value, "#\r\n") {
		return fmt.Errorf("%w: %s: value %q contains a reserved character", ErrFormat, name, e.Value)
	}

	if e.Condition == nil {
		if strings.ContainsRune(value, '?') {
			return fmt.Errorf("%w: %s: unconditional value %q contains '?'", ErrFormat, name, e.Value)
		}
		return nil
	}

	c := e.Condition
	for _, tok := range []string{c.Left, c.Operator, c.Right} {
		if !isSingleToken(tok) || strings.ContainsAny(tok, "?#") {
			return fmt.Errorf("%w: %s: invalid condition token %q", ErrFormat, name, tok)
		}
	}

	return nil
}
