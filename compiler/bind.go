package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// BindStyle is the placeholder syntax of a backend.
type BindStyle int

// Bind styles.
const (
	// BindQuestion is the sequential "?" style of MySQL, SQLite and ODBC.
	BindQuestion BindStyle = iota
	// BindDollar is the numbered "$1" style of PostgreSQL.
	BindDollar
	// BindAt is the numbered "@p1" style of SQL Server.
	BindAt
	// BindColon is the numbered ":1" style of Oracle.
	BindColon
)

// Numbered reports whether placeholders carry the parameter number.
// Named parameters are deduplicated in numbered styles only.
func (s BindStyle) Numbered() bool {
	return s != BindQuestion
}

// Placeholder returns the placeholder of the n-th parameter, counting from 1.
func (s BindStyle) Placeholder(n int) string {
	switch s {
	case BindDollar:
		return "$" + strconv.Itoa(n)
	case BindAt:
		return "@p" + strconv.Itoa(n)
	case BindColon:
		return ":" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (s BindStyle) String() string {
	switch s {
	case BindDollar:
		return "dollar"
	case BindAt:
		return "at"
	case BindColon:
		return "colon"
	default:
		return "question"
	}
}

// ParseBindStyle returns the style of a name returned by String.
func ParseBindStyle(name string) (BindStyle, error) {
	for _, s := range []BindStyle{BindQuestion, BindDollar, BindAt, BindColon} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return BindQuestion, fmt.Errorf("unknown bind style %q", name)
}

// Rewrite renumbers the "?" placeholders of hand-written SQL into style.
// Question marks inside quoted strings and quoted identifiers are left
// alone.
//
//	Rewrite(BindDollar, "a = ? AND b = '?'") // a = $1 AND b = '?'
func Rewrite(style BindStyle, query string) string {
	if !style.Numbered() {
		return query
	}
	var (
		b     strings.Builder
		n     int
		quote byte
	)
	b.Grow(len(query) + 8)
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case quote != 0:
			// a doubled quote is an escape and toggles twice
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
		case ch == '?':
			n++
			b.WriteString(style.Placeholder(n))
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}
