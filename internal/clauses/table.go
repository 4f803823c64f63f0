package clauses

import "github.com/qjebbs/go-sqlq/expr"

var _ expr.Expressioner = Table{}

// Table is the table name with optional alias.
type Table struct {
	Name, Alias string

	// Source marks a name that is not a database table, e.g. a CTE.
	// It never receives the table prefix.
	Source bool
}

// NewTable returns a new Table.
//
// The table renders as `name AS alias` in FROM and JOIN clauses, while its
// columns are qualified by the alias, which is never prefixed:
//
//	t := NewTable("orders", "o")
//	t.Column("id") // "o"."id"
func NewTable(name string, alias ...string) Table {
	aliasName := ""
	if len(alias) > 0 {
		aliasName = alias[0]
	}
	return Table{
		Name:  name,
		Alias: aliasName,
	}
}

// NewSource returns a Table that is not prefixed, e.g. a CTE.
func NewSource(name string, alias ...string) Table {
	t := NewTable(name, alias...)
	t.Source = true
	return t
}

// IsZero reports whether the table is zero.
func (t Table) IsZero() bool {
	return t.Name == "" && t.Alias == ""
}

// WithAlias returns a new Table with updated alias.
func (t Table) WithAlias(alias string) Table {
	t.Alias = alias
	return t
}

// AppliedName returns the alias if any, the name otherwise.
func (t Table) AppliedName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// Ref returns the name as a table, or as an identifier for sources.
func (t Table) Ref() expr.Value {
	if t.Source {
		return expr.NewIdentifier(t.Name)
	}
	return expr.NewTable(t.Name)
}

// Column returns a column of the table, qualified by its applied name.
func (t Table) Column(name string) expr.Column {
	switch {
	case t.Alias != "":
		return expr.NewIdentifier(t.Alias).Column(name)
	case t.Source:
		return expr.NewIdentifier(t.Name).Column(name)
	}
	return expr.NewTable(t.Name).Column(name)
}

// Columns returns columns of the table.
func (t Table) Columns(names ...string) []expr.Column {
	r := make([]expr.Column, 0, len(names))
	for _, name := range names {
		r = append(r, t.Column(name))
	}
	return r
}

// Expr implements expr.Expressioner, `name` or `name AS alias`.
func (t Table) Expr() *expr.Expression {
	if t.Alias == "" {
		return expr.New("?", t.Ref())
	}
	return expr.New("? AS ?", t.Ref(), expr.NewIdentifier(t.Alias))
}
