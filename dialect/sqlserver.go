package dialect

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = SQLServer{}

// SQLServer is the Microsoft SQL Server dialect.
type SQLServer struct{}

// Name returns "sqlserver".
func (SQLServer) Name() string { return "sqlserver" }

// Compiler returns a compiler with bracket quotes, "@p1" placeholders
// and 0x binaries.
func (SQLServer) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler([]compiler.Option{
		compiler.WithQuotes("[", "]"),
		compiler.WithBindStyle(compiler.BindAt),
		compiler.WithBooleanLiterals("1", "0"),
		compiler.WithBinaryEncoder(compiler.PrefixedHexBinary),
	}, opts)
}

// Capabilities returns the capabilities of the SQL Server dialect.
func (SQLServer) Capabilities() Capabilities {
	return Capabilities{
		SupportsOutputInserted: true,
		SupportsUpdateFrom:     true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (SQLServer) CastType(typ string) string {
	return fmt.Sprintf("CAST(? AS %s)", typ)
}

// DriverValue converts a parameter with compiler.DriverValue.
func (SQLServer) DriverValue(v expr.Value) (any, error) {
	return compiler.DriverValue(v)
}
