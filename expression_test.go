package gscript

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseExpressionTable(t *testing.T) {
	tests := []struct {
		name    string
		stmt    string
		want    *Condition
		value   string
		wantErr bool
	}{
		{name: "bare_number", stmt: "5", value: "5"},
		{name: "bare_with_spaces", stmt: "max speed", value: "max speed"},
		{name: "equal", stmt: "a == b ? 1", want: &Condition{"a", "==", "b"}, value: "1"},
		{name: "not_equal", stmt: "a != b ? 1", want: &Condition{"a", "!=", "b"}, value: "1"},
		{name: "greater", stmt: "speed > 50 ? slow", want: &Condition{"speed", ">", "50"}, value: "slow"},
		{name: "less_equal", stmt: "x <= 3 ? 0.5", want: &Condition{"x", "<=", "3"}, value: "0.5"},
		{name: "compact", stmt: "a>=b ? 1", want: &Condition{"a", ">=", "b"}, value: "1"},
		{name: "half_compact", stmt: "a ==b ? 1", want: &Condition{"a", "==", "b"}, value: "1"},
		{name: "compact_no_space_value", stmt: "a<b?1", want: &Condition{"a", "<", "b"}, value: "1"},
		{name: "value_keeps_question_mark", stmt: "a == b ? x ? y", want: &Condition{"a", "==", "b"}, value: "x ? y"},
		{name: "value_with_spaces", stmt: "a == b ? some value", want: &Condition{"a", "==", "b"}, value: "some value"},
		{name: "unknown_operator", stmt: "a = b ? 1", wantErr: true},
		{name: "two_tokens", stmt: "a b ? 1", wantErr: true},
		{name: "four_tokens", stmt: "a == b c ? 1", wantErr: true},
		{name: "empty_condition", stmt: "? 1", wantErr: true},
		{name: "empty_value", stmt: "a == b ?", wantErr: true},
		{name: "operator_only", stmt: "== ? 1", wantErr: true},
		{name: "chained_compact", stmt: "a==b==c ? 1", wantErr: true},
		{name: "mixed_chained_compact", stmt: "a<b>=c ? 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := "  " + tt.stmt
			got, err := ParseExpression(raw, tt.stmt, 7)
			if tt.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if perr.Kind != KindSyntax || perr.Line != 7 || perr.Text != raw {
					t.Fatalf("unexpected error payload: %+v", perr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Condition); diff != "" {
				t.Fatalf("unexpected condition (-want +got):\n%s", diff)
			}
			if got.Value != tt.value || got.Statement != tt.stmt || got.Raw != raw || got.Line != 7 {
				t.Fatalf("unexpected expression: %+v", got)
			}
		})
	}
}

func TestUnknownOperatorSuggestion(t *testing.T) {
	_, err := ParseExpression("  a = b ? 1", "a = b ? 1", 2)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Message != `unknown operator "="` {
		t.Fatalf("unexpected message %q", perr.Message)
	}
	if perr.Suggestion != `did you mean "=="?` {
		t.Fatalf("unexpected suggestion %q", perr.Suggestion)
	}

	_, err = ParseExpression("  a ~~ b ? 1", "a ~~ b ? 1", 2)
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Suggestion != "" {
		t.Fatalf("expected no suggestion, got %q", perr.Suggestion)
	}
}

func TestExtraOperators(t *testing.T) {
	src := "x:\n  a in b ? 1\n  a ~= b ? 2\n  a~=b ? 3\n"
	if _, err := ParseString(src, nil); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error without extra operators, got %v", err)
	}

	script, err := ParseString(src, &ParseOptions{ExtraOperators: []string{"in", "~="}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var ops []string
	for _, e := range script[0].Expressions {
		ops = append(ops, e.Condition.Operator)
	}
	if diff := cmp.Diff([]string{"in", "~=", "~="}, ops); diff != "" {
		t.Fatalf("unexpected operators (-want +got):\n%s", diff)
	}

	// Replacing the table drops the defaults.
	if _, err := ParseString("x:\n  a == b ? 1\n", &ParseOptions{Operators: []string{"eq"}}); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error with replaced table, got %v", err)
	}
	if _, err := ParseString("x:\n  a eq b ? 1\n", &ParseOptions{Operators: []string{"eq"}}); err != nil {
		t.Fatalf("parse with replaced table: %v", err)
	}
}
