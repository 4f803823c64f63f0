package clauses

import (
	"github.com/qjebbs/go-sqlq/expr"
)

var _ expr.Expressioner = (*With)(nil)

// With represents a SQL WITH clause.
type With struct {
	recursive bool
	ctes      []*cte
}

type cte struct {
	name  string
	query any
}

// NewWith creates a new With instance.
func NewWith() *With {
	return &With{}
}

// Add adds a CTE, replacing the one of the same name.
func (w *With) Add(name string, query any) *With {
	for _, c := range w.ctes {
		if c.name == name {
			c.query = query
			return w
		}
	}
	w.ctes = append(w.ctes, &cte{name: name, query: query})
	return w
}

// Recursive marks the clause as WITH RECURSIVE.
func (w *With) Recursive() *With {
	w.recursive = true
	return w
}

// Empty returns whether there is no CTE.
func (w *With) Empty() bool {
	return w == nil || len(w.ctes) == 0
}

// Expr implements expr.Expressioner
//
// CTE names are identifiers, they never receive the table prefix.
func (w *With) Expr() *expr.Expression {
	if w.Empty() {
		return expr.New("")
	}
	items := make([]any, 0, len(w.ctes))
	for _, c := range w.ctes {
		items = append(items, expr.New("? AS (?)", expr.NewIdentifier(c.name), c.query))
	}
	keyword := "WITH ?"
	if w.recursive {
		keyword = "WITH RECURSIVE ?"
	}
	return expr.New(keyword, expr.List(", ", items...))
}
