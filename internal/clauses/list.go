package clauses

import (
	"github.com/qjebbs/go-sqlq/expr"
)

var _ expr.Expressioner = (*PrefixedList)(nil)

// PrefixedList represents a SQL clause that consists of multiple elements
// prefixed with a clause keyword, e.g., SET, GROUP BY, RETURNING, etc.
type PrefixedList struct {
	prefix    string
	separator string
	elements  []any
}

// NewPrefixedList creates a new PrefixedList instance.
func NewPrefixedList(clause, separator string) *PrefixedList {
	return &PrefixedList{
		prefix:    clause,
		separator: separator,
	}
}

// SetPrefix sets the clause prefix.
func (b *PrefixedList) SetPrefix(clause string) *PrefixedList {
	b.prefix = clause
	return b
}

// Append add elements.
func (b *PrefixedList) Append(s ...any) *PrefixedList {
	b.elements = append(b.elements, s...)
	return b
}

// Replace replaces all existing elements with the given ones.
func (b *PrefixedList) Replace(elements []any) *PrefixedList {
	b.elements = elements
	return b
}

// Elements returns the elements.
func (b *PrefixedList) Elements() []any {
	if b == nil {
		return nil
	}
	return b.elements
}

// Empty returns whether there is no element.
func (b *PrefixedList) Empty() bool {
	return b == nil || len(b.elements) == 0
}

// Expr implements expr.Expressioner
func (b *PrefixedList) Expr() *expr.Expression {
	if b.Empty() {
		return expr.New("")
	}
	list := expr.List(b.separator, b.elements...)
	if b.prefix == "" {
		return expr.New("?", list)
	}
	return expr.New(b.prefix+" ?", list)
}
