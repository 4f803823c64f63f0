package expr

import "strings"

// Namespace is the qualifier of an identifier:
// a Path, an Identifier or a Table. nil means unqualified.
type Namespace interface {
	namespace()
	segments() []string
}

// Path is a namespace given as plain name segments,
// e.g. Path{"app", "public"}.
//
// When it qualifies a Column, a Path is assumed to denote a table.
type Path []string

// Identifier is a dotted name referring to a database object.
type Identifier struct {
	Name      string
	Namespace Namespace
}

// Column is an identifier referring to a column.
//
// Its namespace, unless it is an Identifier, is quoted as a table and
// receives the table prefix.
type Column struct {
	Name      string
	Namespace Namespace
}

// Table is an identifier referring to a table.
// Its name receives the table prefix when quoted.
type Table struct {
	Name      string
	Namespace Namespace
}

func (Path) namespace()       {}
func (Identifier) namespace() {}
func (Table) namespace()      {}

func (Identifier) value() {}
func (Column) value()     {}
func (Table) value()      {}

func (p Path) segments() []string { return p }

func (i Identifier) segments() []string { return appendSegments(i.Namespace, i.Name) }
func (t Table) segments() []string      { return appendSegments(t.Namespace, t.Name) }

// NewIdentifier returns an Identifier from dotted strings or segments.
// The last segment is the name, the rest is the namespace.
//
//	NewIdentifier("a.b.c")     // {Name: "c", Namespace: Path{"a", "b"}}
//	NewIdentifier("a", "b.c")  // the same
func NewIdentifier(parts ...string) Identifier {
	name, ns := split(parts)
	return Identifier{Name: name, Namespace: ns}
}

// NewColumn returns a Column from dotted strings or segments.
func NewColumn(parts ...string) Column {
	name, ns := split(parts)
	return Column{Name: name, Namespace: ns}
}

// NewTable returns a Table from dotted strings or segments.
func NewTable(parts ...string) Table {
	name, ns := split(parts)
	return Table{Name: name, Namespace: ns}
}

// Column returns a column qualified by the identifier.
// The identifier is never prefixed as a table.
func (i Identifier) Column(name string) Column {
	return Column{Name: name, Namespace: i}
}

// Table returns a table inside the identifier, e.g. a schema.
func (i Identifier) Table(name string) Table {
	return Table{Name: name, Namespace: i}
}

// Segments returns all the name segments, namespace first.
func (i Identifier) Segments() []string { return i.segments() }

// String returns the unquoted dotted name.
func (i Identifier) String() string { return strings.Join(i.segments(), ".") }

// Column returns a column of the table, e.g. "t.id".
func (t Table) Column(name string) Column {
	return Column{Name: name, Namespace: t}
}

// Columns returns columns of the table from names.
func (t Table) Columns(names ...string) []Column {
	r := make([]Column, 0, len(names))
	for _, name := range names {
		r = append(r, t.Column(name))
	}
	return r
}

// AllColumns returns the wildcard column of the table, e.g. "t.*".
func (t Table) AllColumns() Column {
	return t.Column("*")
}

// As returns the table aliased, e.g. `table AS t`.
func (t Table) As(alias string) Alias {
	return Alias{Value: t, Name: NewIdentifier(alias)}
}

// Segments returns all the name segments, namespace first.
func (t Table) Segments() []string { return t.segments() }

// String returns the unquoted dotted name.
func (t Table) String() string { return strings.Join(t.segments(), ".") }

// Segments returns all the name segments, namespace first.
func (c Column) Segments() []string { return appendSegments(c.Namespace, c.Name) }

// String returns the unquoted dotted name.
func (c Column) String() string { return strings.Join(c.Segments(), ".") }

// As returns the column aliased, e.g. `col AS c`.
func (c Column) As(alias string) Alias {
	return Alias{Value: c, Name: NewIdentifier(alias)}
}

func appendSegments(ns Namespace, name string) []string {
	if ns == nil {
		return []string{name}
	}
	segs := ns.segments()
	r := make([]string, 0, len(segs)+1)
	r = append(r, segs...)
	return append(r, name)
}

func split(parts []string) (string, Namespace) {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		segs = append(segs, strings.Split(p, ".")...)
	}
	switch len(segs) {
	case 0:
		return "", nil
	case 1:
		return segs[0], nil
	}
	return segs[len(segs)-1], Path(segs[:len(segs)-1])
}
