package sqlq

import "errors"

// From set the from table.
func (b *SelectBuilder) From(t Table) *SelectBuilder {
	b.from.From(t)
	return b
}

// FromQuery set a subquery as the from table, e.g. `(SELECT ...) AS alias`.
func (b *SelectBuilder) FromQuery(query Builder, alias string) *SelectBuilder {
	if query == nil {
		b.errors = append(b.errors, errors.New("nil subquery in FROM"))
		return b
	}
	b.from.From(subquery(query, alias))
	return b
}

// InnerJoin append a inner join table.
//
//	b.InnerJoin(bar, expr.NewConditions().And(bar.Column("foo_id"), "=", foo.Column("id")))
func (b *SelectBuilder) InnerJoin(t Table, on any) *SelectBuilder {
	b.from.Join("INNER JOIN", t, on)
	return b
}

// LeftJoin append a left join table.
func (b *SelectBuilder) LeftJoin(t Table, on any) *SelectBuilder {
	b.from.Join("LEFT JOIN", t, on)
	return b
}

// RightJoin append a right join table.
func (b *SelectBuilder) RightJoin(t Table, on any) *SelectBuilder {
	b.from.Join("RIGHT JOIN", t, on)
	return b
}

// FullJoin append a full join table.
func (b *SelectBuilder) FullJoin(t Table, on any) *SelectBuilder {
	b.from.Join("FULL JOIN", t, on)
	return b
}

// CrossJoin append a cross join table.
func (b *SelectBuilder) CrossJoin(t Table) *SelectBuilder {
	b.from.Join("CROSS JOIN", t, nil)
	return b
}
