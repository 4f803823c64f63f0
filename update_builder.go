package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/clauses"
)

var _ Builder = (*UpdateBuilder)(nil)

// UpdateBuilder is the UPDATE statement builder.
// It's recommended to wrap it with your struct to provide a
// more friendly API and improve fragment reusability.
type UpdateBuilder struct {
	dialect dialect.Dialect
	target  Table
	sets    *clauses.PrefixedList // SET assignments
	from    *clauses.From         // tables updated from, and joins
	where   *expr.Conditions      // where conditions
	order   *clauses.OrderBy      // order by columns
	limit   int64                 // limit count

	debugger
	errors []error // errors during building
}

// NewUpdateBuilder returns a new UpdateBuilder writing clauses for d,
// PostgreSQL if not given. Build it with a compiler of the same dialect.
func NewUpdateBuilder(d ...dialect.Dialect) *UpdateBuilder {
	return &UpdateBuilder{
		dialect: pickDialect(d),
		sets:    clauses.NewPrefixedList("SET", ", "),
		from:    clauses.NewFrom(),
		where:   expr.NewConditions(),
		order:   clauses.NewOrderBy(),
	}
}

// Update returns a new UpdateBuilder updating the table.
//
//	sqlq.Update("users").Set("name", "ann").Where("id", "=", 1)
func Update(table string, alias ...string) *UpdateBuilder {
	return NewUpdateBuilder().Update(NewTable(table, alias...))
}

// Update sets the target table.
func (b *UpdateBuilder) Update(t Table) *UpdateBuilder {
	b.target = t
	return b
}

// Set adds an assignment, a bare string column is a column name.
//
//	b.Set("name", "ann")
//	b.Set(t.Column("hits"), expr.New("? + 1", t.Column("hits")))
func (b *UpdateBuilder) Set(col any, value any) *UpdateBuilder {
	b.sets.Append(expr.New("? = ?", column(col), value))
	return b
}

// SetMap adds assignments of the map, in the order of keys.
func (b *UpdateBuilder) SetMap(keys []string, values map[string]any) *UpdateBuilder {
	for _, k := range keys {
		v, ok := values[k]
		if !ok {
			b.errors = append(b.errors, fmt.Errorf("no value for column %q", k))
			continue
		}
		b.Set(k, v)
	}
	return b
}

// From sets the table the update reads from, `UPDATE t SET ... FROM other`.
func (b *UpdateBuilder) From(t Table) *UpdateBuilder {
	b.from.From(t)
	return b
}

// InnerJoin appends an inner join.
//
// MySQL writes joins right after the target table, other dialects
// join them to the FROM table.
func (b *UpdateBuilder) InnerJoin(t Table, on any) *UpdateBuilder {
	b.from.Join("INNER JOIN", t, on)
	return b
}

// LeftJoin appends a left join.
func (b *UpdateBuilder) LeftJoin(t Table, on any) *UpdateBuilder {
	b.from.Join("LEFT JOIN", t, on)
	return b
}

// OrderBy adds a sorting column, ascending if order is omitted.
func (b *UpdateBuilder) OrderBy(col any, order ...Order) *UpdateBuilder {
	o := OrderAsc
	if len(order) > 0 {
		o = order[0]
	}
	b.order.Add(column(col), o)
	return b
}

// Limit set the limit.
func (b *UpdateBuilder) Limit(limit int64) *UpdateBuilder {
	if limit > 0 {
		b.limit = limit
	}
	return b
}
