package compiler

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlq/expr"
)

// QuoteIdentifier quotes every segment of v and joins them with dots.
// The table prefix is never applied.
//
// v is a dotted string, a []string of segments, an expr.Path or any of
// expr.Identifier, expr.Column and expr.Table.
func (c *Compiler) QuoteIdentifier(v any) string {
	name, ns := parts(v)
	return c.join(c.identifierNamespace(ns), c.quoteName(name))
}

// QuoteTable quotes v as a table name: the namespace is quoted as an
// identifier and the last segment receives the table prefix.
//
//	// prefix "pre_", quotes "<" and ">"
//	c.QuoteTable("one.two") // <one>.<pre_two>
func (c *Compiler) QuoteTable(v any) string {
	name, ns := parts(v)
	return c.join(c.identifierNamespace(ns), c.quoteName(c.tablePrefix+name))
}

// QuoteColumn quotes v as a column name.
//
// A namespace that is an expr.Table, a plain string or segments denotes a
// table, it is quoted by QuoteTable and receives the prefix. A namespace
// that is an expr.Identifier is quoted by QuoteIdentifier, without prefix.
// A "*" column name is written as is.
func (c *Compiler) QuoteColumn(v any) string {
	name, ns := parts(v)
	var qualifier string
	switch ns := ns.(type) {
	case nil:
	case expr.Table:
		qualifier = c.QuoteTable(ns)
	case expr.Path:
		if len(ns) > 0 {
			qualifier = c.QuoteTable(expr.NewTable(ns...))
		}
	case expr.Identifier:
		qualifier = c.QuoteIdentifier(ns)
	}
	if name == "*" {
		return c.join(qualifier, name)
	}
	return c.join(qualifier, c.quoteName(name))
}

func (c *Compiler) identifierNamespace(ns expr.Namespace) string {
	switch ns := ns.(type) {
	case expr.Path:
		quoted := make([]string, 0, len(ns))
		for _, seg := range ns {
			quoted = append(quoted, c.quoteName(seg))
		}
		return strings.Join(quoted, ".")
	case expr.Identifier:
		return c.QuoteIdentifier(ns)
	case expr.Table:
		return c.QuoteIdentifier(expr.Identifier(ns))
	}
	return ""
}

func (c *Compiler) quoteName(name string) string {
	return c.quoteLeft + name + c.quoteRight
}

func (c *Compiler) join(qualifier, name string) string {
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}

// parts splits v into its last segment and its namespace.
func parts(v any) (string, expr.Namespace) {
	var id expr.Identifier
	switch v := v.(type) {
	case expr.Identifier:
		return v.Name, v.Namespace
	case expr.Column:
		return v.Name, v.Namespace
	case expr.Table:
		return v.Name, v.Namespace
	case string:
		id = expr.NewIdentifier(v)
	case []string:
		id = expr.NewIdentifier(v...)
	case expr.Path:
		id = expr.NewIdentifier(v...)
	case expr.String:
		id = expr.NewIdentifier(string(v))
	default:
		id = expr.NewIdentifier(fmt.Sprint(v))
	}
	return id.Name, id.Namespace
}
