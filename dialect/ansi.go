package dialect

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = AnsiSQL{}

// AnsiSQL is the ANSI SQL dialect, also used for ODBC-style connections.
type AnsiSQL struct{}

// Name returns "ansi".
func (AnsiSQL) Name() string { return "ansi" }

// Compiler returns a compiler with the defaults: double quotes,
// "?" placeholders, '1'/'0' booleans and X'0a' binaries.
func (AnsiSQL) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler(nil, opts)
}

// Capabilities returns the capabilities of the ANSI SQL dialect.
func (AnsiSQL) Capabilities() Capabilities {
	return Capabilities{
		SupportsLimitOffset: true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (AnsiSQL) CastType(typ string) string {
	return fmt.Sprintf("CAST(? AS %s)", typ)
}

// DriverValue converts a parameter with compiler.DriverValue.
func (AnsiSQL) DriverValue(v expr.Value) (any, error) {
	return compiler.DriverValue(v)
}
