package expr

import (
	"errors"
	"sort"
	"strings"
)

var _ Value = (*Expression)(nil)
var _ Expressioner = (*Expression)(nil)

// Expression is a fragment of SQL text with placeholders, paired with the
// values of those placeholders.
//
// Two kinds of placeholders are recognized in Text:
//
//   - "?" is positional. Positional values are indexed from zero in the
//     order the placeholders appear, regardless of any named ones between.
//   - ":name" is named. A name may appear many times, every occurrence
//     refers to the same value.
//
// A value may itself be an *Expression, an identifier or an Array, the
// compiler lowers those into the resulting SQL text.
type Expression struct {
	Text string

	positional []Value
	named      map[string]Value
	errors     []error // errors during building
}

// New returns an Expression with positional values.
//
//	expr.New("? = ?", expr.NewColumn("id"), 1)
func New(text string, args ...any) *Expression {
	e := &Expression{Text: text}
	for _, arg := range args {
		e.positional = append(e.positional, ValueOf(arg))
	}
	return e
}

// Named returns an Expression with named values.
// Keys may be given with or without the leading colon.
//
//	expr.Named(":a split :a", map[string]any{"a": 5})
func Named(text string, params map[string]any) *Expression {
	e := &Expression{Text: text}
	for k, v := range params {
		e.Bind(k, v)
	}
	return e
}

// Expr implements Expressioner.
func (e *Expression) Expr() *Expression { return e }

func (*Expression) value() {}

// Bind sets the value of the named placeholder.
func (e *Expression) Bind(name string, v any) *Expression {
	if e.named == nil {
		e.named = make(map[string]Value)
	}
	e.named[NormalizeName(name)] = ValueOf(v)
	return e
}

// BindRef binds the named placeholder to the variable ptr points to.
// The variable is read when the statement is executed, not now.
func (e *Expression) BindRef(name string, ptr any) *Expression {
	return e.Bind(name, Ref(ptr))
}

// Set sets the positional value at index i, growing the list as needed.
// Gaps are left undefined.
func (e *Expression) Set(i int, v any) *Expression {
	if i < 0 {
		return e
	}
	for len(e.positional) <= i {
		e.positional = append(e.positional, nil)
	}
	e.positional[i] = ValueOf(v)
	return e
}

// SetRef binds the positional placeholder at index i to the variable
// ptr points to.
func (e *Expression) SetRef(i int, ptr any) *Expression {
	return e.Set(i, Ref(ptr))
}

// Append appends text and positional values. It is used by builders
// that grow an expression step by step.
func (e *Expression) Append(text string, args ...any) *Expression {
	e.Text += text
	for _, arg := range args {
		e.positional = append(e.positional, ValueOf(arg))
	}
	return e
}

// Param returns the positional value at index i.
func (e *Expression) Param(i int) (Value, bool) {
	if e == nil || i < 0 || i >= len(e.positional) || e.positional[i] == nil {
		return nil, false
	}
	return e.positional[i], true
}

// NamedParam returns the value of a named placeholder.
func (e *Expression) NamedParam(name string) (Value, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.named[NormalizeName(name)]
	return v, ok
}

// Names returns the names of the bound named placeholders, sorted.
func (e *Expression) Names() []string {
	if e == nil || len(e.named) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.named))
	for name := range e.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasParams reports whether any value is bound.
func (e *Expression) HasParams() bool {
	return e != nil && (len(e.positional) > 0 || len(e.named) > 0)
}

// NumParams returns the number of positional values.
func (e *Expression) NumParams() int {
	if e == nil {
		return 0
	}
	return len(e.positional)
}

// AddError records an error found while building the expression.
// It is reported when the expression is compiled.
func (e *Expression) AddError(err error) {
	if err != nil {
		e.errors = append(e.errors, err)
	}
}

// Err returns the errors recorded while building, if any.
func (e *Expression) Err() error {
	if e == nil || len(e.errors) == 0 {
		return nil
	}
	return errors.Join(e.errors...)
}

// String returns the raw text.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	return e.Text
}

// NormalizeName returns the placeholder name with the leading colon.
func NormalizeName(name string) string {
	if strings.HasPrefix(name, ":") {
		return name
	}
	return ":" + name
}
