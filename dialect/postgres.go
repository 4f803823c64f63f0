package dialect

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = PostgreSQL{}

// PostgreSQL is the PostgreSQL dialect.
type PostgreSQL struct{}

// Name returns "postgres".
func (PostgreSQL) Name() string { return "postgres" }

// Compiler returns a compiler with "$1" placeholders,
// TRUE/FALSE booleans and '\x' binaries.
func (PostgreSQL) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler([]compiler.Option{
		compiler.WithBindStyle(compiler.BindDollar),
		compiler.WithBooleanLiterals("TRUE", "FALSE"),
		compiler.WithBinaryEncoder(compiler.EscapedHexBinary),
	}, opts)
}

// Capabilities returns the capabilities of the PostgreSQL dialect.
func (PostgreSQL) Capabilities() Capabilities {
	return Capabilities{
		SupportsReturning:   true,
		SupportsOnConflict:  true,
		SupportsUpdateFrom:  true,
		SupportsLimitOffset: true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (PostgreSQL) CastType(typ string) string {
	return fmt.Sprintf("?::%s", typ)
}

// DriverValue converts a parameter, arrays are sent as PostgreSQL arrays.
func (PostgreSQL) DriverValue(v expr.Value) (any, error) {
	arr, ok := v.(expr.Array)
	if !ok {
		return compiler.DriverValue(v)
	}
	return postgresArray(arr)
}

// postgresArray picks the typed array of lib/pq when all elements share
// a kind, the generic one otherwise.
func postgresArray(arr expr.Array) (any, error) {
	elems := make([]any, 0, len(arr))
	for _, el := range arr {
		if _, nested := el.(expr.Array); nested {
			return nil, fmt.Errorf("%w: nested array parameter", compiler.ErrUnsupportedValue)
		}
		dv, err := compiler.DriverValue(expr.Unwrap(expr.Resolve(el)))
		if err != nil {
			return nil, err
		}
		elems = append(elems, dv)
	}
	switch {
	case len(elems) > 0 && allOf[int64](elems):
		return pq.Array(castAll[int64](elems)), nil
	case len(elems) > 0 && allOf[string](elems):
		return pq.Array(castAll[string](elems)), nil
	case len(elems) > 0 && allOf[float64](elems):
		return pq.Array(castAll[float64](elems)), nil
	case len(elems) > 0 && allOf[bool](elems):
		return pq.Array(castAll[bool](elems)), nil
	case len(elems) > 0 && allOf[[]byte](elems):
		return pq.Array(castAll[[]byte](elems)), nil
	}
	return pq.GenericArray{A: elems}, nil
}

func allOf[T any](elems []any) bool {
	for _, e := range elems {
		if _, ok := e.(T); !ok {
			return false
		}
	}
	return true
}

func castAll[T any](elems []any) []T {
	r := make([]T, len(elems))
	for i, e := range elems {
		r[i] = e.(T)
	}
	return r
}
