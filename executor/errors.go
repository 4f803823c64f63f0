package executor

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// RuntimeError is a failure reported by the database backend.
//
// Code is the backend's own error code: the SQLSTATE of PostgreSQL,
// the error number of MySQL, the extended result code of SQLite.
// It is empty for drivers without codes.
type RuntimeError struct {
	Dialect string
	Code    string
	Message string
	Err     error
}

// Error implements error.
func (e *RuntimeError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Dialect, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Dialect, e.Message, e.Code)
}

// Unwrap returns the driver error.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// IsRuntimeError reports whether err is, or wraps, a *RuntimeError.
func IsRuntimeError(err error) bool {
	var e *RuntimeError
	return errors.As(err, &e)
}

// wrapError wraps a driver error into a *RuntimeError.
// sql.ErrNoRows is kept as is for easier checking.
func wrapError(dialect string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) || IsRuntimeError(err) {
		return err
	}
	r := &RuntimeError{Dialect: dialect, Message: err.Error(), Err: err}
	var (
		pqErr    *pq.Error
		mysqlErr *mysql.MySQLError
		liteErr  *sqlite.Error
	)
	switch {
	case errors.As(err, &pqErr):
		r.Code = string(pqErr.Code)
		r.Message = pqErr.Message
	case errors.As(err, &mysqlErr):
		r.Code = strconv.Itoa(int(mysqlErr.Number))
		r.Message = mysqlErr.Message
	case errors.As(err, &liteErr):
		r.Code = strconv.Itoa(liteErr.Code())
	}
	return r
}
