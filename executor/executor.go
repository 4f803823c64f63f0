// Package executor runs built statements on database/sql.
//
// An Executor lowers expressions and builders with the compiler of its
// dialect, converts the parameters into driver arguments right before
// executing, and reports backend failures as *RuntimeError.
package executor

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
)

// ErrNilDB is returned when the provided database handle is nil.
var ErrNilDB = errors.New("db is nil")

// QueryAble is the interface for query-able *sql.DB, *sql.Tx, etc.
type QueryAble interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executor executes statements of one dialect.
type Executor struct {
	db       QueryAble
	dialect  dialect.Dialect
	compiler *compiler.Compiler
	logger   *slog.Logger
	closer   *sql.DB
}

// New returns an Executor running statements of dialect d on db.
func New(db QueryAble, d dialect.Dialect, opts ...Option) *Executor {
	o := mergeOptions(opts...)
	return &Executor{
		db:       db,
		dialect:  d,
		compiler: d.Compiler(o.compilerOptions...),
		logger:   o.logger,
	}
}

// Dialect returns the dialect of the executor.
func (e *Executor) Dialect() dialect.Dialect { return e.dialect }

// Compiler returns the compiler statements are lowered with.
func (e *Executor) Compiler() *compiler.Compiler { return e.compiler }

// Close closes the database opened by Open. It does nothing for
// executors created with New.
func (e *Executor) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// Statement lowers v, an expression or a builder, for the dialect.
func (e *Executor) Statement(v any) (*compiler.Statement, error) {
	return e.compiler.Statement(v)
}

// ExecuteCommand executes v and returns the number of affected rows.
func (e *Executor) ExecuteCommand(ctx context.Context, v any) (int64, error) {
	stmt, args, err := e.prepare(v)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	r, err := e.db.ExecContext(ctx, stmt.Text, args...)
	e.log(ctx, "exec", stmt, start, err)
	if err != nil {
		return 0, e.wrap(err)
	}
	n, err := r.RowsAffected()
	if err != nil {
		return 0, e.wrap(err)
	}
	return n, nil
}

// ExecuteQuery executes v and reads all rows. It returns nil rows if the
// statement yields no columns.
func (e *Executor) ExecuteQuery(ctx context.Context, v any) (*Rows, error) {
	rows, err := e.query(ctx, v)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readRows(rows, e.wrap)
}

func (e *Executor) query(ctx context.Context, v any) (*sql.Rows, error) {
	stmt, args, err := e.prepare(v)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := e.db.QueryContext(ctx, stmt.Text, args...)
	e.log(ctx, "query", stmt, start, err)
	if err != nil {
		return nil, e.wrap(err)
	}
	return rows, nil
}

// prepare lowers v and resolves its parameters.
func (e *Executor) prepare(v any) (*compiler.Statement, []any, error) {
	if e.db == nil {
		return nil, nil, ErrNilDB
	}
	stmt, err := e.compiler.Statement(v)
	if err != nil {
		return nil, nil, err
	}
	args, err := stmt.Args(e.dialect.DriverValue)
	if err != nil {
		return nil, nil, err
	}
	return stmt, args, nil
}

func (e *Executor) log(ctx context.Context, op string, stmt *compiler.Statement, start time.Time, err error) {
	if e.logger == nil {
		return
	}
	attrs := []any{
		"dialect", e.dialect.Name(),
		"query", stmt.Text,
		"params", len(stmt.Params),
		"elapsed", time.Since(start),
	}
	if err != nil {
		e.logger.WarnContext(ctx, op+" failed", append(attrs, "error", err)...)
		return
	}
	e.logger.DebugContext(ctx, op, attrs...)
}

func (e *Executor) wrap(err error) error {
	return wrapError(e.dialect.Name(), err)
}
