package gscript

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Parse parses a script from bytes.
func Parse(data []byte, opt *ParseOptions) ([]*Assignment, error) {
	return Decode(bytes.NewReader(data), opt)
}

// ParseString parses a script from a string.
func ParseString(s string, opt *ParseOptions) ([]*Assignment, error) {
	return Decode(strings.NewReader(s), opt)
}

// Decode parses a script from reader. The reader is consumed but not closed.
// Read errors are returned unchanged.
func Decode(r io.Reader, opt *ParseOptions) ([]*Assignment, error) {
	popt := opt.normalize()
	p := newParser(r, popt)
	return p.parseScript()
}

// DecodeFile parses a script from a file. The file name is used in errors
// unless opt sets one.
func DecodeFile(path string, opt *ParseOptions) ([]*Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	popt := opt.normalize()
	if popt.Filename == "" {
		popt.Filename = path
	}

	return Decode(f, &popt)
}

// parser represents a single-pass line parser.
type parser struct {
	r    *bufio.Reader // Reader for the input
	ops  *Operators    // Recognized condition operators
	log  *slog.Logger  // Debug logger
	opt  ParseOptions  // Options for the parser
	line int           // Physical lines read so far
}

// newParser creates a new parser.
func newParser(r io.Reader, opt ParseOptions) *parser {
	return &parser{
		r:   bufio.NewReader(r),
		ops: opt.operators(),
		log: opt.Logger,
		opt: opt,
	}
}

// parseScript reads every line and assembles the assignments.
func (p *parser) parseScript() ([]*Assignment, error) {
	var (
		out     []*Assignment
		current *Assignment
	)

	for {
		raw, ok, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		kind, stmt := classifyLine(raw, p.opt.AllowTabIndent)
		p.log.Debug("classified line", "line", p.line, "kind", kind, "statement", stmt)

		switch kind {
		case lineBlank:
			continue

		case lineExpression:
			if current == nil {
				return nil, p.errorf(KindStructure, raw, "expression before any assignment start")
			}

			expr, err := p.parseExpression(raw, stmt)
			if err != nil {
				return nil, err
			}
			current.Add(expr)

		case lineAssignment:
			colon := strings.IndexByte(stmt, ':')
			if colon <= 0 {
				return nil, p.errorf(KindSyntax, stmt, "missing colon in assignment declaration")
			}

			current = NewAssignment(stmt[:colon], p.line)
			out = append(out, current)

			// Expression on the same line after ':'.
			rest := strings.TrimSpace(stmt[colon+1:])
			if rest == "" {
				continue
			}

			expr, err := p.parseExpression(raw, rest)
			if err != nil {
				return nil, err
			}
			current.Add(expr)
		}
	}

	if len(out) == 0 {
		return nil, &ParseError{Kind: KindEmptyDocument, Message: "no assignments found", File: p.opt.Filename}
	}

	p.log.Debug("parsed script", "assignments", len(out), "lines", p.line)
	return out, nil
}

// readLine returns the next physical line without its terminator and
// advances the line counter. A line ends at "\n", "\r\n" or a lone "\r".
func (p *parser) readLine() (string, bool, error) {
	var b strings.Builder
	for {
		c, err := p.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", false, err
			}
			if b.Len() == 0 {
				return "", false, nil
			}
			break
		}
		if c == '\n' {
			break
		}
		if c == '\r' {
			if next, err := p.r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = p.r.ReadByte()
			}
			break
		}
		b.WriteByte(c)
	}

	p.line++
	s := b.String()
	if p.line == 1 {
		// Skip UTF-8 BOM if present.
		s = strings.TrimPrefix(s, "\uFEFF")
	}

	return s, true, nil
}

// parseExpression builds an expression and attaches the source name to errors.
func (p *parser) parseExpression(raw, stmt string) (Expression, error) {
	expr, err := buildExpression(raw, stmt, p.line, p.ops)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = p.opt.Filename
		}
		return Expression{}, err
	}

	return expr, nil
}

// errorf creates a parse error at the current line.
func (p *parser) errorf(kind ErrorKind, text, msg string) error {
	return &ParseError{Kind: kind, Message: msg, Text: text, Line: p.line, File: p.opt.Filename}
}
