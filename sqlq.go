// Package sqlq builds SQL statements. It provides,
//   - SQL builders to craft SELECT, INSERT, UPDATE and DELETE statements.
//   - Expression trees that are independent of the database dialect.
//   - Lowering into literal SQL or natively parameterized statements.
//
// Builders assemble expr.Expression trees, package compiler turns them into
// SQL for a dialect:
//
//	b := sqlq.DeleteFrom("orders", "o").Where("status", "=", "closed").Limit(10)
//	c := dialect.PostgreSQL{}.Compiler(compiler.WithTablePrefix("app_"))
//	stmt, err := b.Build(c)
package sqlq

import (
	"strings"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/clauses"
)

var defaultDialect dialect.Dialect = dialect.PostgreSQL{}

// Builder is the interface for sql builders.
type Builder interface {
	expr.Expressioner

	// Build builds the statement with the placeholders of c, which should
	// be a compiler of the builder's dialect. A nil c is that compiler.
	Build(c *compiler.Compiler) (*compiler.Statement, error)
}

// Table is the table name with optional alias.
type Table = clauses.Table

// NewTable returns a new Table.
//
// Columns of an aliased table are qualified by the alias,
// which never receives the table prefix:
//
//	t := NewTable("orders", "o")
//	t.Column("id") // "o"."id"
var NewTable = clauses.NewTable

// NewSource returns a Table that is never prefixed, e.g. a CTE.
var NewSource = clauses.NewSource

// Order is the sorting order.
type Order = clauses.Order

// orders
const (
	OrderAsc            Order = clauses.OrderAsc
	OrderAscNullsFirst        = clauses.OrderAscNullsFirst
	OrderAscNullsLast         = clauses.OrderAscNullsLast
	OrderDesc                 = clauses.OrderDesc
	OrderDescNullsFirst       = clauses.OrderDescNullsFirst
	OrderDescNullsLast        = clauses.OrderDescNullsLast
)

func pickDialect(d []dialect.Dialect) dialect.Dialect {
	if len(d) > 0 && d[0] != nil {
		return d[0]
	}
	return defaultDialect
}

// column takes a bare name as a column, other values as they are.
func column(v any) any {
	if s, ok := v.(string); ok {
		return expr.NewColumn(s)
	}
	return v
}

func columns(names []string) []any {
	r := make([]any, 0, len(names))
	for _, name := range names {
		r = append(r, expr.NewColumn(name))
	}
	return r
}

func hasConditions(c *expr.Conditions) bool {
	return c != nil && strings.TrimSpace(c.Text) != ""
}

// statement joins the non-empty clauses with spaces.
func statement(parts []any, errs []error) *expr.Expression {
	e := expr.New("?", expr.List(" ", parts...))
	for _, err := range errs {
		e.AddError(err)
	}
	return e
}
