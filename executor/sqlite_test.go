package executor_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/executor"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, err := executor.Open("sqlite", ":memory:", executor.WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })

	_, err = e.ExecuteCommand(ctx, expr.New(
		"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, active BOOLEAN, joined DATETIME)",
	))
	require.NoError(t, err)

	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	n, err := e.ExecuteCommand(ctx, sqlq.NewInsertBuilder(dialect.SQLite{}).
		InsertInto(sqlq.NewTable("users")).
		Columns("id", "name", "active", "joined").
		Values(1, "ann", true, joined).
		Values(2, "bob", false, joined),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	type user struct {
		ID   int64
		Name string
	}
	users, err := executor.Query(ctx, e,
		sqlq.NewSelectBuilder(dialect.SQLite{}).
			Select("id", "name", "active").
			From(sqlq.NewTable("users")).
			Where("active", "=", true),
		func() (*user, []any) {
			u := &user{}
			return u, []any{&u.ID, &u.Name}
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []*user{{ID: 1, Name: "ann"}}, users)

	rows, err := e.ExecuteQuery(ctx, sqlq.NewSelectBuilder(dialect.SQLite{}).
		Select("name").
		From(sqlq.NewTable("users")).
		OrderBy("name", sqlq.OrderDesc))
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"bob"}, {"ann"}}, rows.Values)

	// unique constraint
	_, err = e.ExecuteCommand(ctx, sqlq.NewInsertBuilder(dialect.SQLite{}).
		InsertInto(sqlq.NewTable("users")).
		Columns("id", "name").
		Values(3, "ann"),
	)
	var rerr *executor.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "sqlite", rerr.Dialect)
	assert.NotEmpty(t, rerr.Code)
	assert.Contains(t, rerr.Message, "UNIQUE constraint failed")

	assert.Contains(t, logs.String(), "INSERT INTO")
	assert.Contains(t, logs.String(), "elapsed=")
}

func TestOpen(t *testing.T) {
	e, err := executor.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	assert.Equal(t, dialect.SQLite{}, e.Dialect())
	require.NoError(t, e.Close())

	_, err = executor.Open("db2", "")
	assert.ErrorContains(t, err, "unknown dialect")

	_, err = executor.Open("oracle", "")
	assert.ErrorContains(t, err, "no driver")

	_, err = executor.Open("mysql", "not a dsn")
	assert.Error(t, err)

	e, err = executor.Open("mysql", "user:pass@tcp(localhost:3306)/db")
	require.NoError(t, err)
	require.NoError(t, e.Close())
}
