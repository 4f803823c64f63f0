package compiler

import "regexp"

// Option configures a Compiler.
type Option func(*Compiler)

// WithTablePrefix sets the prefix prepended to table names.
func WithTablePrefix(prefix string) Option {
	return func(c *Compiler) {
		c.tablePrefix = prefix
	}
}

// WithQuotes sets the characters wrapping identifiers,
// e.g. "`", "`" for MySQL or "[", "]" for SQL Server.
func WithQuotes(left, right string) Option {
	return func(c *Compiler) {
		c.quoteLeft = left
		c.quoteRight = right
	}
}

// WithPlaceholderPattern overrides the placeholder pattern.
//
// A match is positional when it is "?", named when it is ":" followed by
// a word character, anything else matched is copied as is.
func WithPlaceholderPattern(re *regexp.Regexp) Option {
	return func(c *Compiler) {
		if re != nil {
			c.placeholders = re
		}
	}
}

// WithBindStyle sets the placeholder style of native statements.
func WithBindStyle(style BindStyle) Option {
	return func(c *Compiler) {
		c.style = style
	}
}

// WithFloatPrecision sets the fractional digits of floats, 6 by default.
func WithFloatPrecision(digits int) Option {
	return func(c *Compiler) {
		if digits >= 0 {
			c.floatPrecision = digits
		}
	}
}

// WithNumericScale sets the scale of numerics that declare none,
// 4 by default.
func WithNumericScale(scale int32) Option {
	return func(c *Compiler) {
		if scale >= 0 {
			c.numericScale = scale
		}
	}
}

// WithBooleanLiterals sets the literals of true and false,
// "'1'" and "'0'" by default.
func WithBooleanLiterals(t, f string) Option {
	return func(c *Compiler) {
		c.boolTrue = t
		c.boolFalse = f
	}
}

// WithBinaryEncoder sets how binary strings are written.
func WithBinaryEncoder(fn BinaryEncoder) Option {
	return func(c *Compiler) {
		if fn != nil {
			c.binary = fn
		}
	}
}

// WithStringQuoter sets how strings are written, StandardString by default.
func WithStringQuoter(fn StringQuoter) Option {
	return func(c *Compiler) {
		if fn != nil {
			c.str = fn
		}
	}
}
