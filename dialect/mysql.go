package dialect

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

var _ Dialect = MySQL{}

// MySQL is the MySQL / MariaDB dialect.
type MySQL struct{}

// Name returns "mysql".
func (MySQL) Name() string { return "mysql" }

// Compiler returns a compiler with backtick quotes and "?" placeholders.
// Backslashes in strings are escaped, as MySQL reads them as escapes.
func (MySQL) Compiler(opts ...compiler.Option) *compiler.Compiler {
	return newCompiler([]compiler.Option{
		compiler.WithQuotes("`", "`"),
		compiler.WithBooleanLiterals("TRUE", "FALSE"),
		compiler.WithStringQuoter(compiler.BackslashEscapedString),
	}, opts)
}

// Capabilities returns the capabilities of the MySQL dialect.
func (MySQL) Capabilities() Capabilities {
	return Capabilities{
		SupportsOnDuplicateKeyUpdate: true,
		SupportsUpdateJoin:           true,
		SupportsLimitOffset:          true,
	}
}

// CastType casts the given type to the dialect-specific type.
func (MySQL) CastType(typ string) string {
	return fmt.Sprintf("CAST(? AS %s)", typ)
}

// DriverValue converts a parameter with compiler.DriverValue.
func (MySQL) DriverValue(v expr.Value) (any, error) {
	return compiler.DriverValue(v)
}
