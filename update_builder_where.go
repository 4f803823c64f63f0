package sqlq

import (
	"github.com/qjebbs/go-sqlq/expr"
)

// Where adds a condition with AND, a bare string left operand is a column.
func (b *UpdateBuilder) Where(left any, args ...any) *UpdateBuilder {
	b.where.And(column(left), args...)
	return b
}

// OrWhere adds a condition with OR.
func (b *UpdateBuilder) OrWhere(left any, args ...any) *UpdateBuilder {
	b.where.Or(column(left), args...)
	return b
}

// WhereNot adds a negated condition with AND.
func (b *UpdateBuilder) WhereNot(left any, args ...any) *UpdateBuilder {
	b.where.AndNot(column(left), args...)
	return b
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *UpdateBuilder) WhereIn(col any, list any) *UpdateBuilder {
	return b.Where(col, "IN", list)
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at IS NULL`
func (b *UpdateBuilder) WhereIsNull(col any) *UpdateBuilder {
	return b.Where(col, "IS NULL")
}

// WhereConditions adds prepared conditions as a group with AND.
func (b *UpdateBuilder) WhereConditions(c *expr.Conditions) *UpdateBuilder {
	if !hasConditions(c) {
		return b
	}
	b.where.And(expr.New("(?)", c))
	return b
}
