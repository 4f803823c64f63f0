package sqlq

import (
	"errors"
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
)

// Build builds the statement with the placeholders of c.
//
// Clauses are written for the dialect of the builder, so c is expected to
// be a compiler of the same dialect. A nil c is the dialect's compiler.
func (b *SelectBuilder) Build(c *compiler.Compiler) (*compiler.Statement, error) {
	if c == nil {
		c = b.dialect.Compiler()
	}
	return build(c, b, &b.debugger)
}

// Dialect returns the dialect the clauses are written for.
func (b *SelectBuilder) Dialect() dialect.Dialect {
	return b.dialect
}

// Debug enables debug mode which logs the interpolated query.
func (b *SelectBuilder) Debug(name ...string) *SelectBuilder {
	b.debugger.Debug(name...)
	return b
}

// Expr implements expr.Expressioner.
func (b *SelectBuilder) Expr() *expr.Expression {
	errs := append([]error{}, b.errors...)
	parts := make([]any, 0, 10)
	if !b.ctes.Empty() {
		parts = append(parts, b.ctes)
	}
	sel := "SELECT ?"
	if b.distinct {
		sel = "SELECT DISTINCT ?"
	}
	if len(b.selects) == 0 {
		errs = append(errs, errors.New("no columns selected"))
	}
	parts = append(parts, expr.New(sel, expr.List(", ", b.selects...)))
	if b.from.HasTable() || b.from.HasJoins() {
		parts = append(parts, b.from)
	}
	if hasConditions(b.where) {
		parts = append(parts, expr.New("WHERE ?", b.where))
	}
	if len(b.groupbys) > 0 {
		parts = append(parts, expr.New("GROUP BY ?", expr.List(", ", b.groupbys...)))
		if hasConditions(b.having) {
			parts = append(parts, expr.New("HAVING ?", b.having))
		}
	} else if hasConditions(b.having) {
		errs = append(errs, errors.New("HAVING without GROUP BY"))
	}
	if !b.order.Empty() {
		parts = append(parts, b.order)
	}
	parts = append(parts, b.limitOffset()...)
	for _, u := range b.unions {
		parts = append(parts, u)
	}
	return statement(parts, errs)
}

// limitOffset writes LIMIT / OFFSET, or the OFFSET / FETCH form of
// dialects without LIMIT.
func (b *SelectBuilder) limitOffset() []any {
	var parts []any
	if b.dialect.Capabilities().SupportsLimitOffset {
		if b.limit > 0 {
			parts = append(parts, expr.New(fmt.Sprintf("LIMIT %d", b.limit)))
		}
		if b.offset > 0 {
			parts = append(parts, expr.New(fmt.Sprintf("OFFSET %d", b.offset)))
		}
		return parts
	}
	if b.limit == 0 && b.offset == 0 {
		return nil
	}
	parts = append(parts, expr.New(fmt.Sprintf("OFFSET %d ROWS", b.offset)))
	if b.limit > 0 {
		parts = append(parts, expr.New(fmt.Sprintf("FETCH NEXT %d ROWS ONLY", b.limit)))
	}
	return parts
}

// subquery wraps a query as `(query) AS alias`.
func subquery(query expr.Expressioner, alias string) *expr.Expression {
	return expr.New("(?) AS ?", query, expr.NewIdentifier(alias))
}
