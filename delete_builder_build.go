package sqlq

import (
	"errors"
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

// Build builds the statement with the placeholders of c.
// A nil c is the compiler of the default dialect.
func (b *DeleteBuilder) Build(c *compiler.Compiler) (*compiler.Statement, error) {
	if c == nil {
		c = defaultDialect.Compiler()
	}
	return build(c, b, &b.debugger)
}

// Debug enables debug mode which logs the interpolated query.
func (b *DeleteBuilder) Debug(name ...string) *DeleteBuilder {
	b.debugger.Debug(name...)
	return b
}

// Expr implements expr.Expressioner.
//
// Clauses are written in a fixed order, clauses not set are omitted:
//
//	DELETE FROM table [AS alias] [WHERE ...] [LIMIT n]
func (b *DeleteBuilder) Expr() *expr.Expression {
	var errs []error
	if b.target.IsZero() {
		errs = append(errs, errors.New("no target table specified for delete"))
	}
	parts := []any{expr.New("DELETE FROM ?", b.target)}
	if hasConditions(b.where) {
		parts = append(parts, expr.New("WHERE ?", b.where))
	}
	if b.limit > 0 {
		parts = append(parts, expr.New(fmt.Sprintf("LIMIT %d", b.limit)))
	}
	return statement(parts, errs)
}
