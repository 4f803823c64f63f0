package dialect

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = SQLite{}

// SQLite is the SQLite dialect.
type SQLite struct{}

// Name returns "sqlite", the name modernc.org/sqlite registers.
func (SQLite) Name() string { return "sqlite" }

// Compiler returns a compiler with "?" placeholders and 1/0 booleans.
func (SQLite) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler([]compiler.Option{
		compiler.WithBooleanLiterals("1", "0"),
	}, opts)
}

// Capabilities returns the capabilities of the SQLite dialect.
func (SQLite) Capabilities() Capabilities {
	return Capabilities{
		SupportsReturning:   true,
		SupportsOnConflict:  true,
		SupportsUpdateFrom:  true,
		SupportsLimitOffset: true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (SQLite) CastType(typ string) string {
	return fmt.Sprintf("CAST(? AS %s)", typ)
}

// DriverValue converts a parameter with compiler.DriverValue.
func (SQLite) DriverValue(v expr.Value) (any, error) {
	return compiler.DriverValue(v)
}
