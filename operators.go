package gscript

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// defaultOperatorTokens is the comparison vocabulary shared with the evaluator.
var defaultOperatorTokens = []string{"==", "!=", ">=", "<=", ">", "<"}

// Operators is an ordered set of comparison operator tokens.
type Operators struct {
	tokens   []string            // Tokens in declaration order
	symbolic []string            // Symbolic tokens, longest first
	set      map[string]struct{} // Token lookup
}

// DefaultOperators returns the default operator table: == != >= <= > <.
func DefaultOperators() *Operators {
	return NewOperators(defaultOperatorTokens...)
}

// NewOperators builds an operator table. Empty tokens, duplicates and tokens
// containing blanks, '?', '#' or ':' are ignored.
func NewOperators(tokens ...string) *Operators {
	o := &Operators{set: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if !validOperatorToken(t) {
			continue
		}
		if _, ok := o.set[t]; ok {
			continue
		}

		o.set[t] = struct{}{}
		o.tokens = append(o.tokens, t)
		if isSymbolic(t) {
			o.symbolic = append(o.symbolic, t)
		}
	}

	// Longest match first when splitting compact conditions like "a>=b".
	sort.SliceStable(o.symbolic, func(i, j int) bool {
		return len(o.symbolic[i]) > len(o.symbolic[j])
	})

	return o
}

// Has reports whether tok is a recognized operator.
func (o *Operators) Has(tok string) bool {
	_, ok := o.set[tok]
	return ok
}

// Tokens returns the operator tokens in declaration order.
func (o *Operators) Tokens() []string {
	out := make([]string, len(o.tokens))
	copy(out, o.tokens)
	return out
}

// split splits a compact condition such as "a>=b" at the earliest symbolic
// operator, preferring the longest token at the same offset.
func (o *Operators) split(s string) (left, op, right string, ok bool) {
	best := -1
	for _, t := range o.symbolic {
		i := strings.Index(s, t)
		if i <= 0 {
			continue
		}
		if best == -1 || i < best || (i == best && len(t) > len(op)) {
			best, op = i, t
		}
	}
	if best == -1 {
		return "", "", "", false
	}

	left = strings.TrimSpace(s[:best])
	right = strings.TrimSpace(s[best+len(op):])
	if !isSingleToken(left) || !isSingleToken(right) {
		return "", "", "", false
	}
	// Operands must not hide a second comparison.
	for _, t := range o.symbolic {
		if strings.Contains(left, t) || strings.Contains(right, t) {
			return "", "", "", false
		}
	}

	return left, op, right, true
}

// suggest returns the closest known operator for tok, or "".
func (o *Operators) suggest(tok string) string {
	ranks := fuzzy.RankFindFold(tok, o.tokens)
	if len(ranks) == 0 {
		return ""
	}

	sort.Stable(ranks)
	return ranks[0].Target
}

// validOperatorToken checks if the token can appear in a condition.
func validOperatorToken(t string) bool {
	if t == "" {
		return false
	}

	return !strings.ContainsFunc(t, func(r rune) bool {
		return unicode.IsSpace(r) || r == '?' || r == '#' || r == ':'
	})
}

// isSymbolic checks if the token has no letters or digits.
func isSymbolic(t string) bool {
	return !strings.ContainsFunc(t, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	})
}

// isSingleToken checks if s is a non-empty run of non-blank characters.
func isSingleToken(s string) bool {
	return s != "" && !strings.ContainsFunc(s, unicode.IsSpace)
}
