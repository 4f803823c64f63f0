// Package dialect describes the SQL backends: how they quote identifiers
// and literals, which placeholders they accept, and which statement
// clauses they support.
package dialect

import (
	"strings"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

// Dialect is a backend's specific placeholder syntax and literal-encoding
// conventions.
type Dialect interface {
	// Name returns the dialect name, which is also the database/sql driver
	// name used by package executor.
	Name() string

	// Compiler returns a compiler configured for the dialect,
	// with opts applied after the dialect's own options.
	Compiler(opts ...compiler.Option) *compiler.Compiler

	// Capabilities returns the SQL capabilities of the dialect.
	Capabilities() Capabilities

	// CastType casts the given type to the dialect-specific type.
	// Exactly one placeholder "?" is expected in the returned string,
	// which will be replaced with the value to be casted.
	//
	// For example,
	//   PostgreSQL.CastType("TEXT") // "?::TEXT"
	//   SQLite.CastType("TEXT")     // "CAST(? AS TEXT)"
	CastType(typ string) string

	// DriverValue converts a statement parameter into a database/sql
	// argument.
	DriverValue(v expr.Value) (any, error)
}

// Capabilities represents the SQL capabilities of a dialect.
type Capabilities struct {
	// SupportsReturning indicates whether the dialect supports RETURNING clause.
	SupportsReturning bool
	// SupportsOutputInserted indicates whether the dialect supports OUTPUT clause.
	SupportsOutputInserted bool

	// SupportsOnConflict indicates whether the dialect supports CONFLICT clause.
	SupportsOnConflict bool
	// SupportsOnDuplicateKeyUpdate indicates whether the dialect supports ON DUPLICATE KEY UPDATE clause.
	SupportsOnDuplicateKeyUpdate bool

	// SupportsUpdateJoin indicates whether the dialect supports JOIN clause in UPDATE statements.
	//
	// For example (MySQL),
	//   UPDATE foo JOIN bar ON foo.id = bar.id SET foo.val = bar.val
	SupportsUpdateJoin bool
	// SupportsUpdateFrom indicates whether the dialect supports FROM clause in UPDATE statements.
	//
	// For example (PostgreSQL),
	//   UPDATE foo SET val = bar.val FROM bar WHERE foo.id = bar.id
	SupportsUpdateFrom bool

	// SupportsLimitOffset indicates whether the dialect supports LIMIT / OFFSET.
	// Without it, SELECT writes `OFFSET n ROWS FETCH NEXT m ROWS ONLY`.
	SupportsLimitOffset bool
}

// Get returns the dialect registered under name, e.g. "postgres".
func Get(name string) (Dialect, bool) {
	switch strings.ToLower(name) {
	case "postgres", "postgresql", "pgx":
		return PostgreSQL{}, true
	case "mysql", "mariadb":
		return MySQL{}, true
	case "sqlite", "sqlite3":
		return SQLite{}, true
	case "sqlserver", "mssql":
		return SQLServer{}, true
	case "oracle", "godror":
		return Oracle{}, true
	case "ansi", "", "odbc":
		return AnsiSQL{}, true
	}
	return nil, false
}

func newCompiler(base []compiler.Option, opts []compiler.Option) *compiler.Compiler {
	all := make([]compiler.Option, 0, len(base)+len(opts))
	all = append(all, base...)
	all = append(all, opts...)
	return compiler.New(all...)
}
