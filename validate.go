package gscript

import (
	"fmt"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeEmptyAssignment       = "empty_assignment"
	CodeUnreachableExpression = "unreachable_expression"
	CodeMissingFallback       = "missing_fallback"
	CodeDuplicateAssignment   = "duplicate_assignment"
	CodeSelfReference         = "self_reference"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"` // Affected assignment
	Line    int        `json:"line,omitempty" yaml:"line,omitempty"` // Source line of the finding
}

// String renders the issue on one line.
func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("%d: %s: %s: %s", i.Line, i.Level, i.Name, i.Message)
	}

	return fmt.Sprintf("%s: %s: %s", i.Level, i.Name, i.Message)
}

// Validate lints parsed assignments and returns issues.
// It does not evaluate conditions.
func Validate(script []*Assignment, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	seen := make(map[string]int, len(script))
	for _, a := range script {
		if a == nil {
			continue
		}

		if !vopt.DisableDuplicateCheck {
			if first, ok := seen[a.Name]; ok {
				out = append(out, Issue{
					Level:   IssueError,
					Code:    CodeDuplicateAssignment,
					Message: fmt.Sprintf("already declared at line %d", first),
					Name:    a.Name,
					Line:    a.Line,
				})
			} else {
				seen[a.Name] = a.Line
			}
		}

		out = append(out, validateAssignment(a, vopt)...)
	}

	return out
}

// validateAssignment lints a single assignment.
func validateAssignment(a *Assignment, opt ValidateOptions) []Issue {
	if len(a.Expressions) == 0 {
		return []Issue{{Level: IssueWarning, Code: CodeEmptyAssignment, Message: "assignment has no expressions", Name: a.Name, Line: a.Line}}
	}

	var out []Issue
	name := strings.TrimSpace(a.Name)
	unreachable := false
	for i, e := range a.Expressions {
		if c := e.Condition; c != nil && (c.Left == name || c.Right == name) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeSelfReference, Message: "condition references the assigned variable", Name: a.Name, Line: e.Line})
		}

		// Everything after a bare value is never selected.
		if !opt.DisableUnreachableCheck && !unreachable && !e.IsConditional() && i < len(a.Expressions)-1 {
			unreachable = true
			next := a.Expressions[i+1]
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    CodeUnreachableExpression,
				Message: fmt.Sprintf("%d expression(s) after unconditional value are unreachable", len(a.Expressions)-1-i),
				Name:    a.Name,
				Line:    next.Line,
			})
		}
	}

	last := a.Expressions[len(a.Expressions)-1]
	if !opt.DisableFallbackCheck && last.IsConditional() && !hasBareValue(a.Expressions) {
		out = append(out, Issue{Level: IssueWarning, Code: CodeMissingFallback, Message: "no unconditional fallback value", Name: a.Name, Line: last.Line})
	}

	return out
}

// hasBareValue checks if any expression is unconditional.
func hasBareValue(exprs []Expression) bool {
	for _, e := range exprs {
		if !e.IsConditional() {
			return true
		}
	}

	return false
}
