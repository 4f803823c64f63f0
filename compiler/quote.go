package compiler

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/qjebbs/go-sqlq/expr"
	"github.com/shopspring/decimal"
)

// StringQuoter writes a string as an SQL literal.
type StringQuoter func(s string) string

// StandardString writes a single-quoted literal with every embedded quote
// doubled.
func StandardString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

var backslashEscaper = strings.NewReplacer(`\`, `\\`, "'", "''")

// BackslashEscapedString writes strings as StandardString does and also
// doubles backslashes.
// MySQL reads backslash escapes in strings unless NO_BACKSLASH_ESCAPES is set.
func BackslashEscapedString(s string) string {
	return "'" + backslashEscaper.Replace(s) + "'"
}

// BinaryEncoder writes a binary string as an SQL literal.
type BinaryEncoder func(b []byte) string

// HexBinary writes X'0a0b', the SQL standard form.
func HexBinary(b []byte) string {
	return "X'" + hex.EncodeToString(b) + "'"
}

// EscapedHexBinary writes '\x0a0b', the PostgreSQL bytea form.
func EscapedHexBinary(b []byte) string {
	return `'\x` + hex.EncodeToString(b) + "'"
}

// PrefixedHexBinary writes 0x0a0b, the SQL Server form.
func PrefixedHexBinary(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

const dateTimeLayout = "'2006-01-02 15:04:05.000000-07:00'"

// Quote returns v as SQL text. It never returns unescaped user data:
//
//   - arrays are quoted per element and joined with ", ",
//   - expressions are compiled with their values quoted as literals,
//   - identifiers, columns and tables are quoted as names,
//   - anything else is quoted by QuoteLiteral.
func (c *Compiler) Quote(v any) (string, error) {
	switch v := expr.ValueOf(v).(type) {
	case expr.Array:
		parts := make([]string, 0, len(v))
		for _, el := range v {
			s, err := c.Quote(el)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	case expr.Expressioner:
		return c.Compile(v)
	case expr.Column:
		return c.QuoteColumn(v), nil
	case expr.Table:
		return c.QuoteTable(v), nil
	case expr.Identifier:
		return c.QuoteIdentifier(v), nil
	default:
		return c.QuoteLiteral(v)
	}
}

// QuoteLiteral returns v quoted as a literal value.
// Literal wrappers are removed and references read first.
func (c *Compiler) QuoteLiteral(v any) (string, error) {
	switch v := resolve(expr.ValueOf(v)).(type) {
	case expr.Null:
		return c.QuoteNull(), nil
	case expr.Bool:
		return c.QuoteBool(bool(v)), nil
	case expr.Int:
		return c.QuoteInteger(int64(v)), nil
	case expr.Float:
		return c.QuoteFloat(float64(v)), nil
	case expr.Numeric:
		return c.QuoteNumeric(v.Value, v.Scale), nil
	case expr.String:
		return c.QuoteString(string(v)), nil
	case expr.Binary:
		return c.QuoteBinary(v), nil
	case expr.DateTime:
		return c.QuoteDateTime(time.Time(v)), nil
	case expr.Array:
		return c.QuoteArray(v)
	case expr.NonParameterized:
		return c.Quote(v.Value)
	case expr.Invalid:
		return "", unsupported(v)
	default:
		// identifiers and expressions
		return c.Quote(v)
	}
}

// QuoteNull returns the NULL keyword.
func (c *Compiler) QuoteNull() string {
	return "NULL"
}

// QuoteBool returns the boolean literal of the dialect.
func (c *Compiler) QuoteBool(b bool) string {
	if b {
		return c.boolTrue
	}
	return c.boolFalse
}

// QuoteInteger returns v in base 10. Integer kinds are written as is,
// floats and numerics are truncated toward zero.
func (c *Compiler) QuoteInteger(v any) string {
	switch v := v.(type) {
	case float32:
		return strconv.FormatFloat(math.Trunc(float64(v)), 'f', 0, 64)
	case float64:
		return strconv.FormatFloat(math.Trunc(v), 'f', 0, 64)
	case decimal.Decimal:
		return v.Truncate(0).String()
	case expr.Float:
		return c.QuoteInteger(float64(v))
	case expr.Numeric:
		return c.QuoteInteger(v.Value)
	}
	switch n := expr.ValueOf(v).(type) {
	case expr.Int:
		return strconv.FormatInt(int64(n), 10)
	case expr.Numeric:
		return n.Value.Truncate(0).String()
	case expr.Bool:
		if n {
			return "1"
		}
		return "0"
	}
	return "0"
}

// QuoteFloat returns f in scientific notation with the configured number
// of fractional digits, e.g. 1.234500E+1.
//
// The result never depends on any locale: the decimal point is always "."
// and the exponent always carries its sign without zero padding.
// NaN and infinities are written as string literals.
func (c *Compiler) QuoteFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "'NaN'"
	case math.IsInf(f, 1):
		return "'Infinity'"
	case math.IsInf(f, -1):
		return "'-Infinity'"
	}
	s := strconv.FormatFloat(f, 'E', c.floatPrecision, 64)
	i := strings.IndexByte(s, 'E')
	mantissa, exp := s[:i], s[i+1:]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "E" + exp[:1] + digits
}

// QuoteNumeric returns v in fixed notation with the given scale, or the
// configured one if scale is omitted or negative.
//
// v may be a decimal.Decimal, an integer or float kind, or a string
// holding a number. Invalid strings are written as 0.
func (c *Compiler) QuoteNumeric(v any, scale ...int32) string {
	places := c.numericScale
	if len(scale) > 0 && scale[0] >= 0 {
		places = scale[0]
	}
	var d decimal.Decimal
	switch v := v.(type) {
	case decimal.Decimal:
		d = v
	case expr.Numeric:
		d = v.Value
		if len(scale) == 0 && v.Scale >= 0 {
			places = v.Scale
		}
	case string:
		d, _ = decimal.NewFromString(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case float64:
		d = decimal.NewFromFloat(v)
	default:
		switch n := expr.ValueOf(v).(type) {
		case expr.Int:
			d = decimal.NewFromInt(int64(n))
		case expr.Float:
			d = decimal.NewFromFloat(float64(n))
		case expr.Numeric:
			d = n.Value
		}
	}
	return d.StringFixed(places)
}

// QuoteString returns s as a string literal of the dialect,
// single-quoted with every embedded quote doubled by default.
func (c *Compiler) QuoteString(s string) string {
	return c.str(s)
}

// QuoteBinary returns b encoded for the dialect.
// Nil and empty values are an empty binary literal, not NULL.
func (c *Compiler) QuoteBinary(b []byte) string {
	return c.binary(b)
}

// QuoteDateTime returns t as 'YYYY-MM-DD HH:MM:SS.uuuuuu+HH:MM',
// with its numeric offset.
func (c *Compiler) QuoteDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// QuoteArray returns an array literal, `ARRAY[e0, e1, ...]`,
// with every element quoted as a literal.
func (c *Compiler) QuoteArray(values any) (string, error) {
	arr, ok := expr.ValueOf(values).(expr.Array)
	if !ok {
		return "", fmt.Errorf("%w: %T is not an array", ErrUnsupportedValue, values)
	}
	parts := make([]string, 0, len(arr))
	for _, el := range arr {
		s, err := c.QuoteLiteral(el)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "ARRAY[" + strings.Join(parts, ", ") + "]", nil
}

// resolve reads references and removes literal wrappers until neither
// is left.
func resolve(v expr.Value) expr.Value {
	for {
		switch x := v.(type) {
		case expr.Literal:
			v = expr.Unwrap(x)
		case *expr.Reference:
			if err := x.Err(); err != nil {
				return expr.Invalid{Go: x}
			}
			v = x.Resolve()
		default:
			return v
		}
	}
}
