package expr

import "strings"

var (
	_ Expressioner = Alias{}
	_ Expressioner = Listing{}
	_ Expressioner = Values{}
)

// Alias renders as `value AS alias`.
type Alias struct {
	Value any
	Name  Identifier
}

// As returns v aliased as alias.
func As(v any, alias string) Alias {
	return Alias{Value: v, Name: NewIdentifier(alias)}
}

// Expr implements Expressioner.
func (a Alias) Expr() *Expression {
	return New("? AS ?", a.Value, a.Name)
}

// Listing renders its values joined by a separator,
// e.g. `a, b, c` or `x AND y`.
type Listing struct {
	Separator string
	Values    []any
}

// List returns a Listing of values joined by sep.
func List(sep string, values ...any) Listing {
	return Listing{Separator: sep, Values: values}
}

// Expr implements Expressioner.
func (l Listing) Expr() *Expression {
	if len(l.Values) == 0 {
		return New("")
	}
	text := strings.Repeat("?"+l.Separator, len(l.Values)-1) + "?"
	return New(text, l.Values...)
}

// Values is the row values construct:
// `VALUES (row0), (row1), ...`.
type Values struct {
	Rows [][]any
}

// NewValues returns Values with the given rows.
func NewValues(rows ...[]any) Values {
	return Values{Rows: rows}
}

// Row appends a row.
func (v Values) Row(values ...any) Values {
	v.Rows = append(v.Rows, values)
	return v
}

// Expr implements Expressioner.
func (v Values) Expr() *Expression {
	e := New("VALUES ")
	for i, row := range v.Rows {
		if i > 0 {
			e.Append(", ")
		}
		e.Append("(?)", Array(rowValues(row)))
	}
	return e
}

func rowValues(row []any) []Value {
	r := make([]Value, len(row))
	for i, v := range row {
		r[i] = ValueOf(v)
	}
	return r
}
