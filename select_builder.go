package sqlq

import (
	"errors"

	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/clauses"
	"github.com/qjebbs/go-sqlq/internal/util"
)

var _ Builder = (*SelectBuilder)(nil)

// SelectBuilder is the SELECT statement builder.
// It's recommended to wrap it with your struct to provide a
// more friendly API and improve fragment reusability.
type SelectBuilder struct {
	dialect dialect.Dialect
	ctes    *clauses.With
	from    *clauses.From

	selects  []any              // select columns
	where    *expr.Conditions   // where conditions
	groupbys []any              // group by columns, joined with comma.
	having   *expr.Conditions   // having conditions
	order    *clauses.OrderBy   // order by columns, joined with comma.
	distinct bool               // select distinct
	limit    int64              // limit count
	offset   int64              // offset count
	unions   []*expr.Expression // union queries

	debugger
	errors []error // errors during building
}

// NewSelectBuilder returns a new SelectBuilder writing clauses for d,
// PostgreSQL if not given. Build it with a compiler of the same dialect.
func NewSelectBuilder(d ...dialect.Dialect) *SelectBuilder {
	return &SelectBuilder{
		dialect: pickDialect(d),
		ctes:    clauses.NewWith(),
		from:    clauses.NewFrom(),
		where:   expr.NewConditions(),
		having:  expr.NewConditions(),
		order:   clauses.NewOrderBy(),
	}
}

// Select returns a new SelectBuilder selecting the columns,
// bare strings are column names.
//
//	sqlq.Select("id", "name").From(sqlq.NewTable("users"))
func Select(columns ...any) *SelectBuilder {
	return NewSelectBuilder().Select(columns...)
}

// Distinct set the flag for SELECT DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// Indistinct unset the flag for SELECT DISTINCT.
func (b *SelectBuilder) Indistinct() *SelectBuilder {
	b.distinct = false
	return b
}

// Select set the columns in the SELECT clause, bare strings are column
// names. Use expressions or aliases for anything else:
//
//	foo := sqlq.NewTable("foo", "f")
//	b.Select(foo.Column("bar"), expr.As(expr.New("COUNT(*)"), "n"))
func (b *SelectBuilder) Select(columns ...any) *SelectBuilder {
	b.selects = util.Map(columns, column)
	return b
}

// With adds a CTE, reference it with NewSource(name).
func (b *SelectBuilder) With(name string, query any) *SelectBuilder {
	b.ctes.Add(name, query)
	return b
}

// WithRecursive adds a CTE and marks the clause as WITH RECURSIVE.
func (b *SelectBuilder) WithRecursive(name string, query any) *SelectBuilder {
	b.ctes.Recursive().Add(name, query)
	return b
}

// Limit set the limit.
func (b *SelectBuilder) Limit(limit int64) *SelectBuilder {
	if limit > 0 {
		b.limit = limit
	}
	return b
}

// Offset set the offset.
func (b *SelectBuilder) Offset(offset int64) *SelectBuilder {
	if offset > 0 {
		b.offset = offset
	}
	return b
}

// GroupBy set the grouping columns, bare strings are column names.
func (b *SelectBuilder) GroupBy(columns ...any) *SelectBuilder {
	b.groupbys = append(b.groupbys, util.Map(columns, column)...)
	return b
}

// Having adds a HAVING condition with AND.
func (b *SelectBuilder) Having(left any, args ...any) *SelectBuilder {
	b.having.And(column(left), args...)
	return b
}

// OrderBy adds a sorting column, ascending if order is omitted.
//
//	b.OrderBy("created_at", sqlq.OrderDesc)
func (b *SelectBuilder) OrderBy(col any, order ...Order) *SelectBuilder {
	o := OrderAsc
	if len(order) > 0 {
		o = order[0]
	}
	b.order.Add(column(col), o)
	return b
}

// Union unions other builders.
func (b *SelectBuilder) Union(builders ...expr.Expressioner) *SelectBuilder {
	for _, u := range builders {
		if u == nil {
			b.errors = append(b.errors, errors.New("nil query in UNION"))
			continue
		}
		b.unions = append(b.unions, expr.New("UNION ?", u))
	}
	return b
}

// UnionAll unions other builders with 'UNION ALL'.
func (b *SelectBuilder) UnionAll(builders ...expr.Expressioner) *SelectBuilder {
	for _, u := range builders {
		if u == nil {
			b.errors = append(b.errors, errors.New("nil query in UNION ALL"))
			continue
		}
		b.unions = append(b.unions, expr.New("UNION ALL ?", u))
	}
	return b
}
