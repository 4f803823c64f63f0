package expr

import (
	"errors"
	"fmt"
	"strings"
)

var _ Expressioner = (*Conditions)(nil)

// ErrMalformedBetween is recorded when a BETWEEN operand is an array
// of other than two elements.
var ErrMalformedBetween = errors.New("BETWEEN requires exactly two values")

// Conditions builds a predicate expression step by step.
//
// Every condition is added with a logic operator (AND, OR), which is only
// emitted when the current group already holds a condition. Groups are
// opened and closed explicitly, and a group that received nothing can be
// discarded with CloseEmpty:
//
//	c := expr.NewConditions().
//		AndColumn("a", "=", 1).
//		OrOpen().
//		AndColumn("b", "IN", []int{1, 2}).
//		Close()
//	// ? = ? OR (? IN (?))
//
// Operands are single placeholders, the right operand of IN is wrapped in
// parentheses and the right operand of BETWEEN, given as a two element
// array, is split into `? AND ?`.
type Conditions struct {
	Expression

	empty bool     // the current group holds no condition
	opens []string // tokens appended by Open, innermost last
}

// NewConditions returns Conditions, optionally starting with a condition.
// The arguments are the same as Add without the logic operator.
//
//	expr.NewConditions(expr.NewColumn("age"), "BETWEEN", []int{18, 65})
func NewConditions(args ...any) *Conditions {
	c := &Conditions{empty: true}
	if len(args) > 0 {
		c.Add("AND", args[0], args[1:]...)
	}
	return c
}

// IsEmpty reports whether the current group holds no condition.
func (c *Conditions) IsEmpty() bool {
	return c.empty
}

// Add adds a condition. args are the optional operator and right operand.
//
//	c.Add("AND", expr.New("a IS NULL"))
//	c.Add("OR", expr.NewColumn("a"), "=", 1)
//	c.Add("OR", expr.NewColumn("a"), "IS NOT NULL")
func (c *Conditions) Add(logic string, left any, args ...any) *Conditions {
	c.appendLogic(logic)
	c.appendCondition(left, args)
	return c
}

// Not adds a negated condition, e.g. `NOT ? = ?`.
func (c *Conditions) Not(logic string, left any, args ...any) *Conditions {
	c.appendLogic(logic)
	c.Text += "NOT "
	c.appendCondition(left, args)
	return c
}

// Open opens a group, optionally starting it with a condition.
// The arguments after logic are the same as Add.
func (c *Conditions) Open(logic string, args ...any) *Conditions {
	return c.open(logic, "(", args)
}

// NotOpen opens a negated group, e.g. `NOT (`.
func (c *Conditions) NotOpen(logic string, args ...any) *Conditions {
	return c.open(logic, "NOT (", args)
}

// Close closes the innermost group.
func (c *Conditions) Close() *Conditions {
	if n := len(c.opens); n > 0 {
		c.opens = c.opens[:n-1]
	}
	c.Text += ")"
	c.empty = false
	return c
}

// CloseEmpty closes the innermost group, or removes it entirely,
// including its logic operator, if nothing was added to it.
func (c *Conditions) CloseEmpty() *Conditions {
	if !c.empty {
		return c.Close()
	}
	if n := len(c.opens); n > 0 {
		c.Text = strings.TrimSuffix(c.Text, c.opens[n-1])
		c.opens = c.opens[:n-1]
	}
	trimmed := strings.TrimRight(c.Text, " ")
	c.empty = trimmed == "" || strings.HasSuffix(trimmed, "(")
	return c
}

// And adds a condition with AND.
func (c *Conditions) And(left any, args ...any) *Conditions {
	return c.Add("AND", left, args...)
}

// Or adds a condition with OR.
func (c *Conditions) Or(left any, args ...any) *Conditions {
	return c.Add("OR", left, args...)
}

// AndNot adds a negated condition with AND.
func (c *Conditions) AndNot(left any, args ...any) *Conditions {
	return c.Not("AND", left, args...)
}

// OrNot adds a negated condition with OR.
func (c *Conditions) OrNot(left any, args ...any) *Conditions {
	return c.Not("OR", left, args...)
}

// AndOpen opens a group with AND.
func (c *Conditions) AndOpen(args ...any) *Conditions {
	return c.Open("AND", args...)
}

// OrOpen opens a group with OR.
func (c *Conditions) OrOpen(args ...any) *Conditions {
	return c.Open("OR", args...)
}

// AndNotOpen opens a negated group with AND.
func (c *Conditions) AndNotOpen(args ...any) *Conditions {
	return c.NotOpen("AND", args...)
}

// OrNotOpen opens a negated group with OR.
func (c *Conditions) OrNotOpen(args ...any) *Conditions {
	return c.NotOpen("OR", args...)
}

// AndColumn adds a condition with AND, the left operand is a column name.
func (c *Conditions) AndColumn(column string, args ...any) *Conditions {
	return c.Add("AND", NewColumn(column), args...)
}

// OrColumn adds a condition with OR, the left operand is a column name.
func (c *Conditions) OrColumn(column string, args ...any) *Conditions {
	return c.Add("OR", NewColumn(column), args...)
}

// AndColumns adds a condition comparing two columns with AND.
func (c *Conditions) AndColumns(left, operator, right string) *Conditions {
	return c.Add("AND", NewColumn(left), operator, NewColumn(right))
}

// OrColumns adds a condition comparing two columns with OR.
func (c *Conditions) OrColumns(left, operator, right string) *Conditions {
	return c.Add("OR", NewColumn(left), operator, NewColumn(right))
}

// AndExists adds `EXISTS (query)` with AND.
func (c *Conditions) AndExists(query any) *Conditions {
	return c.Add("AND", New("EXISTS (?)", query))
}

// OrExists adds `EXISTS (query)` with OR.
func (c *Conditions) OrExists(query any) *Conditions {
	return c.Add("OR", New("EXISTS (?)", query))
}

// AndNotExists adds `NOT EXISTS (query)` with AND.
func (c *Conditions) AndNotExists(query any) *Conditions {
	return c.Not("AND", New("EXISTS (?)", query))
}

// OrNotExists adds `NOT EXISTS (query)` with OR.
func (c *Conditions) OrNotExists(query any) *Conditions {
	return c.Not("OR", New("EXISTS (?)", query))
}

func (c *Conditions) appendLogic(logic string) {
	if !c.empty {
		c.Text += " " + strings.ToUpper(logic) + " "
	}
}

func (c *Conditions) open(logic, paren string, args []any) *Conditions {
	token := paren
	if !c.empty {
		token = " " + strings.ToUpper(logic) + " " + paren
	}
	c.Text += token
	c.opens = append(c.opens, token)
	c.empty = true
	if len(args) > 0 {
		c.Add(logic, args[0], args[1:]...)
	}
	return c
}

func (c *Conditions) appendCondition(left any, args []any) {
	c.empty = false
	c.Append("?", left)
	if len(args) == 0 {
		return
	}
	op, ok := args[0].(string)
	if !ok {
		c.AddError(fmt.Errorf("operator must be a string, got %T", args[0]))
		return
	}
	op = strings.ToUpper(op)
	c.Text += " " + op
	if len(args) < 2 {
		return
	}
	right := args[1]
	switch op {
	case "IN", "NOT IN":
		c.Append(" (?)", right)
	case "BETWEEN", "NOT BETWEEN":
		arr, ok := ValueOf(right).(Array)
		if !ok {
			c.Append(" ?", right)
			return
		}
		if len(arr) != 2 {
			c.AddError(fmt.Errorf("%w, got %d", ErrMalformedBetween, len(arr)))
			c.Append(" ?", right)
			return
		}
		c.Append(" ? AND ?", arr[0], arr[1])
	default:
		c.Append(" ?", right)
	}
}
