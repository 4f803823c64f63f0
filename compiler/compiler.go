// Package compiler lowers expression trees built with package expr into SQL.
//
// A Compiler produces either a fully literal-quoted SQL string (Quote,
// Compile), or a Statement whose placeholders are native to a backend and
// whose parameters are unquoted values (Statement, ParseStatement).
//
// A Compiler is configured once with options and is immutable afterwards,
// it is safe for concurrent use.
package compiler

import (
	"regexp"
)

// DefaultPlaceholderPattern recognizes positional "?" and named ":name"
// placeholders. A "::" is matched as well, so that casts like `a::text` are
// skipped as a whole and never read as a named placeholder.
var DefaultPlaceholderPattern = regexp.MustCompile(`::|\?|:\w+`)

// Compiler quotes values and lowers expressions.
type Compiler struct {
	tablePrefix    string
	quoteLeft      string
	quoteRight     string
	placeholders   *regexp.Regexp
	style          BindStyle
	floatPrecision int
	numericScale   int32
	boolTrue       string
	boolFalse      string
	binary         BinaryEncoder
	str            StringQuoter
}

// New returns a Compiler. Without options it quotes identifiers with
// double quotes, uses "?" placeholders and no table prefix.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		quoteLeft:      `"`,
		quoteRight:     `"`,
		placeholders:   DefaultPlaceholderPattern,
		style:          BindQuestion,
		floatPrecision: 6,
		numericScale:   4,
		boolTrue:       "'1'",
		boolFalse:      "'0'",
		binary:         HexBinary,
		str:            StandardString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// With returns a copy of c with more options applied.
func (c *Compiler) With(opts ...Option) *Compiler {
	cp := *c
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

// TablePrefix returns the configured table prefix.
func (c *Compiler) TablePrefix() string { return c.tablePrefix }

// BindStyle returns the placeholder style of native statements.
func (c *Compiler) BindStyle() BindStyle { return c.style }
