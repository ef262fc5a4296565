package gscript

import "strings"

// lineKind classifies a physical script line.
type lineKind int

// line kinds.
const (
	lineBlank      lineKind = iota // Empty or comment-only
	lineAssignment                 // Starts an assignment at column 0
	lineExpression                 // Indented continuation expression
)

// String returns the kind name.
func (k lineKind) String() string {
	switch k {
	case lineAssignment:
		return "assignment"
	case lineExpression:
		return "expression"
	default:
		return "blank"
	}
}

// classifyLine strips the comment, classifies the line on its untrimmed text
// and returns the trimmed statement.
//
// A '#' after column 0 starts a comment. A '#' at column 0 blanks the line.
func classifyLine(raw string, allowTab bool) (lineKind, string) {
	stmt := raw
	switch i := strings.IndexByte(raw, '#'); {
	case i == 0:
		return lineBlank, ""
	case i > 0:
		stmt = raw[:i]
	}

	kind := lineAssignment
	if strings.HasPrefix(stmt, " ") || (allowTab && strings.HasPrefix(stmt, "\t")) {
		kind = lineExpression
	}

	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return lineBlank, ""
	}

	return kind, stmt
}
