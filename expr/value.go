// Package expr is the dialect-independent model of SQL fragments.
//
// Everything a caller can put into a query is an expr.Value: plain literals
// (strings, numbers, times...), identifiers (Identifier, Column, Table),
// SQL fragments with placeholders (*Expression), and the wrappers that change
// how a value is lowered (Literal, NonParameterized, *Reference).
//
// Values are pure data. Nothing here knows about quote characters, table
// prefixes or placeholder syntax, that is the job of the compiler package.
package expr

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// Value is the closed set of value kinds understood by the compiler.
//
// The marker method is unexported, so only the types of this package
// implement Value.
type Value interface {
	value()
}

// Expressioner is implemented by anything that lowers to an *Expression,
// e.g. Alias, Listing, Values and the statement builders.
type Expressioner interface {
	Expr() *Expression
}

// DefaultScale asks the compiler to use its configured numeric scale.
const DefaultScale int32 = -1

type (
	// Null is the SQL NULL.
	Null struct{}
	// Bool is a boolean literal.
	Bool bool
	// Int is an integer literal.
	Int int64
	// Float is a floating point literal.
	Float float64
	// String is a character string literal.
	String string
	// Binary is a binary string literal.
	Binary []byte
	// DateTime is a timestamp with an explicit offset.
	DateTime time.Time
	// Array is an ordered list of values.
	//
	// Used as a parameter, it lowers to a comma separated list.
	Array []Value
)

// Numeric is a fixed-point value with a scale.
type Numeric struct {
	Value decimal.Decimal
	// Scale is the number of fractional digits rendered,
	// DefaultScale (negative) uses the compiler default.
	Scale int32
}

// Literal forces a value to be quoted as a literal,
// rather than recursed into or passed as is.
//
// Literals may wrap literals, they are unwrapped recursively.
type Literal struct {
	Value Value
}

// NonParameterized marks a value that is never replaced with a placeholder,
// it is always inlined as quoted text.
type NonParameterized struct {
	Value Value
}

func (Null) value()             {}
func (Bool) value()             {}
func (Int) value()              {}
func (Float) value()            {}
func (Numeric) value()          {}
func (String) value()           {}
func (Binary) value()           {}
func (DateTime) value()         {}
func (Array) value()            {}
func (Literal) value()          {}
func (NonParameterized) value() {}

// String implements fmt.Stringer.
func (d DateTime) String() string { return time.Time(d).String() }

// String implements fmt.Stringer.
func (n Numeric) String() string { return n.Value.String() }

// NewNumeric returns a Numeric with the given scale.
func NewNumeric(d decimal.Decimal, scale int32) Numeric {
	return Numeric{Value: d, Scale: scale}
}

// Lit wraps v as a Literal.
func Lit(v any) Literal {
	return Literal{Value: ValueOf(v)}
}

// Inline wraps v as NonParameterized.
func Inline(v any) NonParameterized {
	return NonParameterized{Value: ValueOf(v)}
}

// Unwrap removes all Literal wrappers around v.
func Unwrap(v Value) Value {
	for {
		l, ok := v.(Literal)
		if !ok {
			return v
		}
		v = l.Value
	}
}

// Invalid holds a Go value that has no SQL representation.
// The compiler reports it as an error.
type Invalid struct {
	Go any
}

func (Invalid) value() {}

// Error implements error.
func (v Invalid) Error() string {
	return fmt.Sprintf("unsupported value of type %T", v.Go)
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// ValueOf converts a Go value into a Value.
//
// Values of this package are returned as is, Expressioners are lowered to
// their expression. Pointers are dereferenced immediately, use Ref for
// late-bound parameters.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Expressioner:
		// before Value: types embedding Expression are Values too.
		if isNil(v) {
			return Null{}
		}
		return v.Expr()
	case *Reference:
		return v
	case Value:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return Null{}
			}
			return ValueOf(rv.Elem().Interface())
		}
		return v
	case bool:
		return Bool(v)
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Int(v)
	case uint16:
		return Int(v)
	case uint32:
		return Int(v)
	case uint64:
		return fromUint(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case decimal.Decimal:
		return Numeric{Value: v, Scale: DefaultScale}
	case string:
		return String(v)
	case []byte:
		if v == nil {
			return Binary{}
		}
		return Binary(v)
	case time.Time:
		return DateTime(v)
	case []any:
		return arrayOf(reflect.ValueOf(v))
	case driver.Valuer:
		if isNil(v) {
			return Null{}
		}
		dv, err := v.Value()
		if err != nil {
			return Invalid{Go: v}
		}
		return ValueOf(dv)
	}
	return reflectValueOf(v)
}

func reflectValueOf(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Binary(rv.Bytes())
		}
		if rv.IsNil() {
			return Array{}
		}
		return arrayOf(rv)
	case reflect.Array:
		return arrayOf(rv)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Struct:
		switch {
		case rv.Type().ConvertibleTo(timeType):
			return DateTime(rv.Convert(timeType).Interface().(time.Time))
		case rv.Type().ConvertibleTo(decimalType):
			return Numeric{Value: rv.Convert(decimalType).Interface().(decimal.Decimal), Scale: DefaultScale}
		}
	}
	return Invalid{Go: v}
}

func arrayOf(rv reflect.Value) Array {
	arr := make(Array, rv.Len())
	for i := range arr {
		arr[i] = ValueOf(rv.Index(i).Interface())
	}
	return arr
}

func fromUint(u uint64) Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	return Numeric{Value: decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0), Scale: 0}
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}
