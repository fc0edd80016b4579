package cfgnorm

import "fmt"

// LexError reports a character the tokenizer could not match.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: lexical error: %s", e.Line, e.Message)
}

// StructError reports a line that tokenized but does not form a rule.
type StructError struct {
	Line    int
	Message string
}

func (e *StructError) Error() string {
	return fmt.Sprintf("line %d: structural error: %s", e.Line, e.Message)
}

// ReferenceError reports a non-terminal used on a right-hand side but never
// defined by a rule.
type ReferenceError struct {
	Name string
	LHS  string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("undefined non-terminal %s referenced in a production of %s", e.Name, e.LHS)
}

// InvariantError reports a transformation that finished without establishing
// the promised normal form, or a pass whose convergence bound was exhausted.
type InvariantError struct {
	Pass    string
	Message string
}

func (e *InvariantError) Error() string {
	if e.Pass == "" {
		return "invariant violation: " + e.Message
	}
	return fmt.Sprintf("%s: invariant violation: %s", e.Pass, e.Message)
}

// ResourceError reports a configured growth or work limit being exceeded.
type ResourceError struct {
	Pass    string
	Message string
}

func (e *ResourceError) Error() string {
	if e.Pass == "" {
		return "resource limit exceeded: " + e.Message
	}
	return fmt.Sprintf("%s: resource limit exceeded: %s", e.Pass, e.Message)
}

// invariantErrorf constructs an InvariantError for the given pass.
func invariantErrorf(pass, format string, args ...interface{}) error {
	return &InvariantError{Pass: pass, Message: fmt.Sprintf(format, args...)}
}
