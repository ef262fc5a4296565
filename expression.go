package gscript

import (
	"fmt"
	"strings"
)

// ParseExpression builds an expression from a statement using the default
// operator table. raw is the source line kept for diagnostics.
func ParseExpression(raw, stmt string, line int) (Expression, error) {
	return buildExpression(raw, stmt, line, DefaultOperators())
}

// buildExpression builds a bare or guarded expression from stmt.
func buildExpression(raw, stmt string, line int, ops *Operators) (Expression, error) {
	expr := Expression{Line: line, Raw: raw, Statement: stmt}

	q := strings.IndexByte(stmt, '?')
	if q < 0 {
		expr.Value = stmt
		return expr, nil
	}

	cond, err := parseCondition(strings.TrimSpace(stmt[:q]), ops)
	if err != nil {
		err.Text = raw
		err.Line = line
		return Expression{}, err
	}

	value := strings.TrimSpace(stmt[q+1:])
	if value == "" {
		return Expression{}, &ParseError{Kind: KindSyntax, Message: "missing value after '?'", Text: raw, Line: line}
	}

	expr.Condition = cond
	expr.Value = value
	return expr, nil
}

// parseCondition parses "left op right". The returned error has no position.
func parseCondition(s string, ops *Operators) (*Condition, *ParseError) {
	if s == "" {
		return nil, &ParseError{Kind: KindSyntax, Message: "missing condition before '?'"}
	}

	fields := strings.Fields(s)
	if len(fields) == 3 && ops.Has(fields[1]) {
		return &Condition{Left: fields[0], Operator: fields[1], Right: fields[2]}, nil
	}

	if left, op, right, ok := ops.split(s); ok {
		return &Condition{Left: left, Operator: op, Right: right}, nil
	}

	if len(fields) == 3 {
		err := &ParseError{Kind: KindSyntax, Message: fmt.Sprintf("unknown operator %q", fields[1])}
		if hint := ops.suggest(fields[1]); hint != "" {
			err.Suggestion = fmt.Sprintf("did you mean %q?", hint)
		}
		return nil, err
	}

	return nil, &ParseError{Kind: KindSyntax, Message: "condition must have the form 'left operator right'"}
}
