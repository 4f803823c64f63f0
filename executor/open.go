package executor

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/qjebbs/go-sqlq/dialect"
)

// Open opens a database of the dialect and returns its Executor,
// which closes the database on Close.
//
// Supported dialects are postgres (lib/pq), mysql (go-sql-driver/mysql,
// with parseTime forced on) and sqlite (modernc.org/sqlite).
func Open(dialectName, dsn string, opts ...Option) (*Executor, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", dialectName)
	}
	driverName, source, err := driverSource(d, dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name(), err)
	}
	if driverName == "sqlite" && source == ":memory:" {
		// each connection of an in-memory database is a new database
		db.SetMaxOpenConns(1)
	}
	e := New(db, d, opts...)
	e.closer = db
	return e, nil
}

func driverSource(d dialect.Dialect, dsn string) (driverName, source string, err error) {
	switch d.(type) {
	case dialect.PostgreSQL:
		return "postgres", dsn, nil
	case dialect.MySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		return "mysql", cfg.FormatDSN(), nil
	case dialect.SQLite:
		return "sqlite", dsn, nil
	}
	return "", "", fmt.Errorf("no driver for dialect %s", d.Name())
}
