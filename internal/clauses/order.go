package clauses

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/expr"
)

var _ expr.Expressioner = (*OrderBy)(nil)

// OrderBy represents a SQL ORDER BY clause.
type OrderBy struct {
	orders []*orderItem
}

// orderItem represents a single order by item.
type orderItem struct {
	column any
	order  Order
}

// Order is the sorting order.
type Order uint

// orders
const (
	OrderAsc Order = iota
	OrderAscNullsFirst
	OrderAscNullsLast
	OrderDesc
	OrderDescNullsFirst
	OrderDescNullsLast
)

var orders = []string{
	"ASC",
	"ASC NULLS FIRST",
	"ASC NULLS LAST",
	"DESC",
	"DESC NULLS FIRST",
	"DESC NULLS LAST",
}

// NewOrderBy creates a new OrderBy instance.
func NewOrderBy() *OrderBy {
	return &OrderBy{}
}

// Add adds an order item.
func (o *OrderBy) Add(column any, order Order) *OrderBy {
	o.orders = append(o.orders, &orderItem{
		column: column,
		order:  order,
	})
	return o
}

// Empty returns whether there is no order item.
func (o *OrderBy) Empty() bool {
	return o == nil || len(o.orders) == 0
}

// Expr implements expr.Expressioner
func (o *OrderBy) Expr() *expr.Expression {
	if o.Empty() {
		return expr.New("")
	}
	items := make([]any, 0, len(o.orders))
	var invalid []error
	for _, item := range o.orders {
		if item.order > OrderDescNullsLast {
			invalid = append(invalid, fmt.Errorf("invalid order: %d", item.order))
			continue
		}
		items = append(items, expr.New("? "+orders[item.order], item.column))
	}
	e := expr.New("ORDER BY ?", expr.List(", ", items...))
	for _, err := range invalid {
		e.AddError(err)
	}
	return e
}
