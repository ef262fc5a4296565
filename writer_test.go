package gscript

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// structureOnly compares names, order, conditions and values.
var structureOnly = cmp.Options{
	cmpopts.IgnoreFields(Assignment{}, "Line"),
	cmpopts.IgnoreFields(Expression{}, "Raw", "Statement", "Line"),
}

func TestRoundTrip(t *testing.T) {
	script, err := DecodeFile(filepath.Join("testdata", "weighting.gs"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := Format(script, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	again, err := Parse(b, nil)
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, b)
	}
	if diff := cmp.Diff(script, again, structureOnly); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}

	// Formatting is stable once canonical.
	b2, err := Format(again, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(b) != string(b2) {
		t.Fatalf("format not stable:\n%s\n---\n%s", b, b2)
	}
}

func TestFormatCanonical(t *testing.T) {
	script, err := ParseString("# header\nmax_speed:   90   # kmh\npriority: a>b ? 2\n  1\nempty:\n", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	b, err := Format(script, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "max_speed: 90\npriority: a > b ? 2\n  1\nempty:\n"
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	b, err = Format(script, &FormatOptions{Indent: "    ", BlankLines: true})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want = "max_speed: 90\n\npriority: a > b ? 2\n    1\n\nempty:\n"
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestFormatInvalidIndentFallsBack(t *testing.T) {
	script := []*Assignment{{Name: "x", Line: 1, Expressions: []Expression{{Value: "1", Line: 2}}}}
	for _, indent := range []string{"", "\t", "--", " x"} {
		b, err := Format(script, &FormatOptions{Indent: indent})
		if err != nil {
			t.Fatalf("format: %v", err)
		}
		if string(b) != "x:\n  1\n" {
			t.Fatalf("indent %q: unexpected output %q", indent, b)
		}
	}
}

func TestFormatBuiltScript(t *testing.T) {
	a := NewAssignment("priority", 0)
	a.Add(Expression{Condition: &Condition{Left: "road_class", Operator: "==", Right: "primary"}, Value: "1.2", Line: 1})
	a.Add(Expression{Value: "1", Line: 2})
	b := NewAssignment("max_speed", 3)
	b.Add(Expression{Value: "90", Line: 3})

	out, err := Format([]*Assignment{a, b}, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "priority:\n  road_class == primary ? 1.2\n  1\nmax_speed: 90\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	got, err := Parse(out, nil)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if diff := cmp.Diff([]*Assignment{a, b}, got, structureOnly); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRejectsUnparseable(t *testing.T) {
	tests := []struct {
		name string
		a    *Assignment
	}{
		{name: "empty_name", a: &Assignment{Name: " "}},
		{name: "leading_blank_name", a: &Assignment{Name: " a"}},
		{name: "leading_tab_name", a: &Assignment{Name: "\ta"}},
		{name: "colon_in_name", a: &Assignment{Name: "a:b"}},
		{name: "hash_in_name", a: &Assignment{Name: "a#b"}},
		{name: "hash_in_value", a: &Assignment{Name: "a", Expressions: []Expression{{Value: "1#2"}}}},
		{name: "empty_value", a: &Assignment{Name: "a", Expressions: []Expression{{Value: ""}}}},
		{name: "question_in_bare_value", a: &Assignment{Name: "a", Expressions: []Expression{{Value: "x ? y"}}}},
		{name: "spaced_operand", a: &Assignment{Name: "a", Expressions: []Expression{{
			Condition: &Condition{Left: "x y", Operator: "==", Right: "z"},
			Value:     "1",
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Format([]*Assignment{tt.a}, nil); !errors.Is(err, ErrFormat) {
				t.Fatalf("expected ErrFormat, got %v", err)
			}
		})
	}

	if _, err := Format([]*Assignment{nil}, nil); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for nil assignment, got %v", err)
	}
}

func TestEncodeFile(t *testing.T) {
	script, err := ParseString("x: 1\n", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.gs")
	if err := EncodeFile(path, script, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "x: 1\n" {
		t.Fatalf("unexpected file content %q", b)
	}
}
