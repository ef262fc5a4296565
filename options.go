package gscript

import (
	"log/slog"
	"strings"
)

// defaultIndent is the continuation indent used by the writer.
const defaultIndent = "  "

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Logger receives debug records for every classified line. Nil disables logging.
	Logger *slog.Logger
	// Filename is copied into parse errors for diagnostics.
	Filename string
	// Operators replaces the default comparison operator table when non-empty.
	Operators []string
	// ExtraOperators extends the operator table (default or Operators).
	ExtraOperators []string
	// AllowTabIndent treats a leading tab like a leading space when classifying
	// continuation lines. By default only a space marks a continuation.
	AllowTabIndent bool
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent prefixes continuation lines (default is two spaces).
	// It must start with a space and hold only blanks, otherwise the default is used.
	Indent string
	// BlankLines inserts an empty line between assignments.
	BlankLines bool
}

// ValidateOptions controls lint rules.
type ValidateOptions struct {
	// DisableFallbackCheck disables the warning for assignments whose last
	// expression is conditional.
	DisableFallbackCheck bool
	// DisableDuplicateCheck disables the error for names declared more than once.
	DisableDuplicateCheck bool
	// DisableUnreachableCheck disables the warning for expressions placed after
	// an unconditional one.
	DisableUnreachableCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{Logger: slog.New(slog.DiscardHandler)}
	}

	out := *o
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}

	return out
}

// operators builds the operator table described by the options.
func (o ParseOptions) operators() *Operators {
	base := o.Operators
	if len(NewOperators(base...).tokens) == 0 {
		base = defaultOperatorTokens
	}

	tokens := make([]string, 0, len(base)+len(o.ExtraOperators))
	tokens = append(tokens, base...)
	tokens = append(tokens, o.ExtraOperators...)
	return NewOperators(tokens...)
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: defaultIndent}
	}

	out := *o
	if !strings.HasPrefix(out.Indent, " ") || strings.TrimLeft(out.Indent, " \t") != "" {
		out.Indent = defaultIndent
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
