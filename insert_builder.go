package sqlq

import (
	"errors"

	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/clauses"
)

var _ Builder = (*InsertBuilder)(nil)

// InsertBuilder is the INSERT statement builder.
// It's recommended to wrap it with your struct to provide a
// more friendly API and improve fragment reusability.
type InsertBuilder struct {
	dialect    dialect.Dialect
	ctes       *clauses.With
	target     Table
	columns    []string           // insert columns
	values     [][]any            // rows of values
	selects    expr.Expressioner  // insert from select
	conflictOn []string           // conflict target
	conflictDo []*expr.Expression // conflict actions
	excluded   []string           // columns updated from the proposed row
	returning  []string           // returning columns

	debugger
	errors []error // errors during building
}

// NewInsertBuilder returns a new InsertBuilder writing clauses for d,
// PostgreSQL if not given. Build it with a compiler of the same dialect.
func NewInsertBuilder(d ...dialect.Dialect) *InsertBuilder {
	return &InsertBuilder{
		dialect: pickDialect(d),
		ctes:    clauses.NewWith(),
	}
}

// InsertInto returns a new InsertBuilder inserting into the table.
//
//	sqlq.InsertInto("users").Columns("name", "age").Values("ann", 30)
func InsertInto(table string, columns ...string) *InsertBuilder {
	return NewInsertBuilder().InsertInto(NewTable(table)).Columns(columns...)
}

// InsertInto sets the target table for insertion.
func (b *InsertBuilder) InsertInto(t Table) *InsertBuilder {
	b.target = t
	return b
}

// Columns sets the columns for insertion.
func (b *InsertBuilder) Columns(cols ...string) *InsertBuilder {
	b.columns = cols
	return b
}

// Values adds a row of values for insertion.
func (b *InsertBuilder) Values(vals ...any) *InsertBuilder {
	if len(vals) == 0 {
		b.errors = append(b.errors, errors.New("empty row of values"))
		return b
	}
	b.values = append(b.values, vals)
	return b
}

// SetValues sets multiple rows of values for insertion.
func (b *InsertBuilder) SetValues(rows [][]any) *InsertBuilder {
	b.values = rows
	return b
}

// From sets the SELECT query for insertion.
func (b *InsertBuilder) From(s expr.Expressioner) *InsertBuilder {
	b.selects = s
	return b
}

// With adds a CTE to the insert statement.
func (b *InsertBuilder) With(name string, query any) *InsertBuilder {
	b.ctes.Add(name, query)
	return b
}

// Returning sets the columns returned by the statement, written as
// RETURNING or OUTPUT INSERTED depending on the dialect.
func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append(b.returning, columns...)
	return b
}

// OnConflict sets the conflict target. Without any update action the
// conflict is ignored with DO NOTHING.
//
// MySQL has no conflict target, the columns are only used to
// decide that the clause is wanted.
func (b *InsertBuilder) OnConflict(columns ...string) *InsertBuilder {
	b.conflictOn = columns
	return b
}

// DoUpdateSet adds a conflict action setting col to v.
//
//	b.OnConflict("id").DoUpdateSet("hits", expr.New("hits + 1"))
func (b *InsertBuilder) DoUpdateSet(col string, v any) *InsertBuilder {
	b.conflictDo = append(b.conflictDo, expr.New("? = ?", expr.NewColumn(col), v))
	return b
}

// DoUpdateSetExcluded adds conflict actions setting the columns to the
// values proposed for insertion:
//
//	"name" = EXCLUDED."name"  -- PostgreSQL, SQLite
//	`name` = VALUES(`name`)   -- MySQL
func (b *InsertBuilder) DoUpdateSetExcluded(cols ...string) *InsertBuilder {
	b.excluded = append(b.excluded, cols...)
	return b
}
