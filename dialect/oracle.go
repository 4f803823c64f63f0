package dialect

import (
	"encoding/hex"
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = Oracle{}

// Oracle is the Oracle dialect.
type Oracle struct{}

// Name returns "oracle".
func (Oracle) Name() string { return "oracle" }

// Compiler returns a compiler with ":1" placeholders and HEXTORAW binaries.
func (Oracle) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler([]compiler.Option{
		compiler.WithBindStyle(compiler.BindColon),
		compiler.WithBooleanLiterals("1", "0"),
		compiler.WithBinaryEncoder(hexToRaw),
	}, opts)
}

func hexToRaw(b []byte) string {
	return "HEXTORAW('" + hex.EncodeToString(b) + "')"
}

// Capabilities returns the capabilities of the Oracle dialect.
func (Oracle) Capabilities() Capabilities {
	return Capabilities{
		SupportsReturning: true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (Oracle) CastType(typ string) string {
	return fmt.Sprintf("CAST(? AS %s)", typ)
}

// DriverValue converts a parameter with compiler.DriverValue.
func (Oracle) DriverValue(v expr.Value) (any, error) {
	return compiler.DriverValue(v)
}
