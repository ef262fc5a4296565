package gscript

// Assignment is a named variable with its ordered candidate expressions.
// Expression order is evaluation priority: the first match wins.
type Assignment struct {
	Name        string       `json:"name" yaml:"name"`                                   // Target variable name
	Expressions []Expression `json:"expressions,omitempty" yaml:"expressions,omitempty"` // Candidates in source order
	Line        int          `json:"line" yaml:"line"`                                   // Declaration line
}

// NewAssignment creates an assignment declared at line.
func NewAssignment(name string, line int) *Assignment {
	return &Assignment{Name: name, Line: line}
}

// Add appends an expression.
func (a *Assignment) Add(e Expression) {
	a.Expressions = append(a.Expressions, e)
}

// Expression is one candidate value, optionally guarded by a condition.
type Expression struct {
	Condition *Condition `json:"condition,omitempty" yaml:"condition,omitempty"` // Guard, nil for a bare value
	Value     string     `json:"value" yaml:"value"`                             // Value text
	Statement string     `json:"statement" yaml:"statement"`                     // Trimmed, comment-stripped statement
	Raw       string     `json:"raw,omitempty" yaml:"raw,omitempty"`             // Source line as read
	Line      int        `json:"line" yaml:"line"`                               // Source line
}

// IsConditional reports whether the expression carries a condition.
func (e Expression) IsConditional() bool {
	return e.Condition != nil
}

// String renders the expression as script text.
func (e Expression) String() string {
	if e.Condition == nil {
		return e.Value
	}

	return e.Condition.String() + " ? " + e.Value
}

// Condition is a three-token comparison guarding an expression.
type Condition struct {
	Left     string `json:"left" yaml:"left"`         // Left operand
	Operator string `json:"operator" yaml:"operator"` // Comparison operator token
	Right    string `json:"right" yaml:"right"`       // Right operand
}

// String renders the condition as "left op right".
func (c *Condition) String() string {
	return c.Left + " " + c.Operator + " " + c.Right
}
