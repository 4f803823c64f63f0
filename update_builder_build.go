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
func (b *UpdateBuilder) Build(c *compiler.Compiler) (*compiler.Statement, error) {
	if c == nil {
		c = b.dialect.Compiler()
	}
	return build(c, b, &b.debugger)
}

// Dialect returns the dialect the clauses are written for.
func (b *UpdateBuilder) Dialect() dialect.Dialect {
	return b.dialect
}

// Debug enables debug mode which logs the interpolated query.
func (b *UpdateBuilder) Debug(name ...string) *UpdateBuilder {
	b.debugger.Debug(name...)
	return b
}

// Expr implements expr.Expressioner.
//
//	UPDATE t [joins] SET ... [WHERE ...] [ORDER BY ...] [LIMIT n]  -- MySQL
//	UPDATE t SET ... [FROM f [joins]] [WHERE ...]                  -- others
func (b *UpdateBuilder) Expr() *expr.Expression {
	errs := append([]error{}, b.errors...)
	if b.target.IsZero() {
		errs = append(errs, errors.New("no target table specified for update"))
	}
	if b.sets.Empty() {
		errs = append(errs, errors.New("no assignments specified for update"))
	}
	caps := b.dialect.Capabilities()
	parts := []any{expr.New("UPDATE ?", b.target)}
	if caps.SupportsUpdateJoin {
		if b.from.HasTable() {
			errs = append(errs, fmt.Errorf("UPDATE ... FROM is not supported by %s, use joins", b.dialect.Name()))
		}
		if b.from.HasJoins() {
			parts = append(parts, b.from.Joins())
		}
		parts = append(parts, b.sets)
	} else {
		parts = append(parts, b.sets)
		if b.from.HasTable() || b.from.HasJoins() {
			if !caps.SupportsUpdateFrom {
				errs = append(errs, fmt.Errorf("UPDATE ... FROM is not supported by %s", b.dialect.Name()))
			}
			parts = append(parts, b.from)
		}
	}
	if hasConditions(b.where) {
		parts = append(parts, expr.New("WHERE ?", b.where))
	}
	if !b.order.Empty() {
		parts = append(parts, b.order)
	}
	if b.limit > 0 {
		parts = append(parts, expr.New(fmt.Sprintf("LIMIT %d", b.limit)))
	}
	return statement(parts, errs)
}
