package clauses

import (
	"errors"

	"github.com/qjebbs/go-sqlq/expr"
)

var _ expr.Expressioner = (*From)(nil)

// From represents a SQL FROM clause with its joins.
type From struct {
	table  any
	joins  []*join
	errors []error // errors during building
}

type join struct {
	kind  string
	table any
	on    any
}

// NewFrom creates a new From instance.
func NewFrom() *From {
	return &From{}
}

// From sets the main table, a Table, a subquery alias or any expression.
func (b *From) From(t any) *From {
	if t == nil {
		b.errors = append(b.errors, errors.New("nil FROM table"))
		return b
	}
	b.table = t
	return b
}

// Join appends a join, e.g. Join("LEFT JOIN", t, on).
// on may be nil, e.g. for CROSS JOIN.
func (b *From) Join(kind string, t any, on any) *From {
	if t == nil {
		b.errors = append(b.errors, errors.New("nil JOIN table"))
		return b
	}
	b.joins = append(b.joins, &join{kind: kind, table: t, on: on})
	return b
}

// HasTable reports whether the main table is set.
func (b *From) HasTable() bool {
	return b != nil && b.table != nil
}

// HasJoins reports whether any join is appended.
func (b *From) HasJoins() bool {
	return b != nil && len(b.joins) > 0
}

// Expr implements expr.Expressioner, `FROM table joins...`.
func (b *From) Expr() *expr.Expression {
	if !b.HasTable() {
		e := b.Joins()
		if b.HasJoins() {
			e.AddError(errors.New("JOIN without FROM table"))
		}
		e.AddError(b.Err())
		return e
	}
	e := expr.New("FROM ?", b.table)
	if b.HasJoins() {
		e.Append(" ?", b.Joins())
	}
	e.AddError(b.Err())
	return e
}

// Err returns the errors found while adding tables.
func (b *From) Err() error {
	if b == nil {
		return nil
	}
	return errors.Join(b.errors...)
}

// Joins returns the joins only, as MySQL writes them in UPDATE.
func (b *From) Joins() *expr.Expression {
	items := make([]any, 0, len(b.joins))
	for _, j := range b.joins {
		if j.on == nil {
			items = append(items, expr.New(j.kind+" ?", j.table))
			continue
		}
		items = append(items, expr.New(j.kind+" ? ON ?", j.table, j.on))
	}
	return expr.New("?", expr.List(" ", items...))
}
