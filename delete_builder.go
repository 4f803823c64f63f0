package sqlq

import (
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Builder = (*DeleteBuilder)(nil)

// DeleteBuilder is the DELETE statement builder.
// It's recommended to wrap it with your struct to provide a
// more friendly API and improve fragment reusability.
type DeleteBuilder struct {
	target Table
	where  *expr.Conditions // where conditions
	limit  int64            // limit count

	debugger
}

// NewDeleteBuilder returns a new DeleteBuilder.
func NewDeleteBuilder() *DeleteBuilder {
	return &DeleteBuilder{
		where: expr.NewConditions(),
	}
}

// DeleteFrom returns a new DeleteBuilder deleting from the table.
//
//	sqlq.DeleteFrom("orders", "o").Where("status", "=", "closed").Limit(10)
func DeleteFrom(table string, alias ...string) *DeleteBuilder {
	return NewDeleteBuilder().DeleteFrom(NewTable(table, alias...))
}

// DeleteFrom set the Delete target table.
func (b *DeleteBuilder) DeleteFrom(t Table) *DeleteBuilder {
	b.target = t
	return b
}

// Limit set the limit.
func (b *DeleteBuilder) Limit(limit int64) *DeleteBuilder {
	if limit > 0 {
		b.limit = limit
	}
	return b
}

// Where adds a condition with AND, a bare string left operand is a column:
//
//	b.Where("status", "=", "closed")
//	b.Where(expr.New("age > ?", 18))
func (b *DeleteBuilder) Where(left any, args ...any) *DeleteBuilder {
	b.where.And(column(left), args...)
	return b
}

// OrWhere adds a condition with OR.
func (b *DeleteBuilder) OrWhere(left any, args ...any) *DeleteBuilder {
	b.where.Or(column(left), args...)
	return b
}

// WhereNot adds a negated condition with AND.
func (b *DeleteBuilder) WhereNot(left any, args ...any) *DeleteBuilder {
	b.where.AndNot(column(left), args...)
	return b
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *DeleteBuilder) WhereIn(col any, list any) *DeleteBuilder {
	return b.Where(col, "IN", list)
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at IS NULL`
func (b *DeleteBuilder) WhereIsNull(col any) *DeleteBuilder {
	return b.Where(col, "IS NULL")
}

// WhereConditions adds prepared conditions as a group with AND.
func (b *DeleteBuilder) WhereConditions(c *expr.Conditions) *DeleteBuilder {
	if !hasConditions(c) {
		return b
	}
	b.where.And(expr.New("(?)", c))
	return b
}
