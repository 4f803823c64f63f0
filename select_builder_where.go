package sqlq

import (
	"github.com/qjebbs/go-sqlq/expr"
)

// Where adds a condition with AND, a bare string left operand is a column:
//
//	b.Where("status", "=", "open")
//	b.Where(foo.Column("id"), "IN", []int{1, 2})
//	b.Where(expr.New("? > NOW()", foo.Column("expires_at")))
func (b *SelectBuilder) Where(left any, args ...any) *SelectBuilder {
	b.where.And(column(left), args...)
	return b
}

// OrWhere adds a condition with OR.
func (b *SelectBuilder) OrWhere(left any, args ...any) *SelectBuilder {
	b.where.Or(column(left), args...)
	return b
}

// WhereNot adds a negated condition with AND.
func (b *SelectBuilder) WhereNot(left any, args ...any) *SelectBuilder {
	b.where.AndNot(column(left), args...)
	return b
}

// WhereOpen opens a condition group with AND.
// Close it with WhereClose, a group left empty is removed.
func (b *SelectBuilder) WhereOpen() *SelectBuilder {
	b.where.AndOpen()
	return b
}

// OrWhereOpen opens a condition group with OR.
func (b *SelectBuilder) OrWhereOpen() *SelectBuilder {
	b.where.OrOpen()
	return b
}

// WhereClose closes the innermost condition group.
func (b *SelectBuilder) WhereClose() *SelectBuilder {
	b.where.CloseEmpty()
	return b
}

// WhereEquals adds a simple equality condition like `t.id = 1`.
func (b *SelectBuilder) WhereEquals(col any, value any) *SelectBuilder {
	return b.Where(col, "=", value)
}

// WhereIn adds a where IN condition like `t.id IN (1,2,3)`
func (b *SelectBuilder) WhereIn(col any, list any) *SelectBuilder {
	return b.Where(col, "IN", list)
}

// WhereNotIn adds a where NOT IN condition like `t.id NOT IN (1,2,3)`
func (b *SelectBuilder) WhereNotIn(col any, list any) *SelectBuilder {
	return b.Where(col, "NOT IN", list)
}

// WhereBetween adds a BETWEEN condition like `t.created_at BETWEEN ? AND ?`
func (b *SelectBuilder) WhereBetween(col any, start, end any) *SelectBuilder {
	return b.Where(col, "BETWEEN", []any{start, end})
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at IS NULL`
func (b *SelectBuilder) WhereIsNull(col any) *SelectBuilder {
	return b.Where(col, "IS NULL")
}

// WhereIsNotNull adds a IS NOT NULL condition like `t.deleted_at IS NOT NULL`
func (b *SelectBuilder) WhereIsNotNull(col any) *SelectBuilder {
	return b.Where(col, "IS NOT NULL")
}

// WhereExists adds an EXISTS condition.
func (b *SelectBuilder) WhereExists(query any) *SelectBuilder {
	b.where.AndExists(query)
	return b
}

// WhereNotExists adds a NOT EXISTS condition.
func (b *SelectBuilder) WhereNotExists(query any) *SelectBuilder {
	b.where.AndNotExists(query)
	return b
}

// WhereConditions adds prepared conditions as a group with AND.
func (b *SelectBuilder) WhereConditions(c *expr.Conditions) *SelectBuilder {
	if !hasConditions(c) {
		return b
	}
	b.where.And(expr.New("(?)", c))
	return b
}
