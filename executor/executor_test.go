package executor_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/executor"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T, d dialect.Dialect, opts ...executor.Option) (*executor.Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return executor.New(db, d, opts...), mock
}

func TestExecuteCommand(t *testing.T) {
	e, mock := newMock(t, dialect.PostgreSQL{}, executor.WithCompilerOptions(compiler.WithTablePrefix("app_")))
	mock.ExpectExec(`DELETE FROM "app_orders" AS "o" WHERE "status" = $1 LIMIT 10`).
		WithArgs("closed").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := e.ExecuteCommand(
		context.Background(),
		sqlq.DeleteFrom("orders", "o").Where("status", "=", "closed").Limit(10),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLateBinding(t *testing.T) {
	e, mock := newMock(t, dialect.MySQL{})
	var id int64
	b := expr.New("UPDATE jobs SET done = TRUE WHERE id = ?", expr.Ref(&id))

	mock.ExpectExec("UPDATE jobs SET done = TRUE WHERE id = ?").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE jobs SET done = TRUE WHERE id = ?").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	for _, v := range []int64{1, 2} {
		id = v
		_, err := e.ExecuteCommand(context.Background(), b)
		require.NoError(t, err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteQuery(t *testing.T) {
	e, mock := newMock(t, dialect.SQLServer{})
	mock.ExpectQuery(`SELECT [id], [name] FROM [users] WHERE [id] IN (@p1, @p2)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "ann").AddRow(2, "bob"))

	rows, err := e.ExecuteQuery(
		context.Background(),
		sqlq.NewSelectBuilder(dialect.SQLServer{}).
			Select("id", "name").
			From(sqlq.NewTable("users")).
			WhereIn("id", []int{1, 2}),
	)
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Equal(t, []string{"id", "name"}, rows.Columns)
	assert.Equal(t, 2, rows.Len())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteQueryNoColumns(t *testing.T) {
	e, mock := newMock(t, dialect.PostgreSQL{})
	mock.ExpectQuery("VACUUM").WillReturnRows(sqlmock.NewRows(nil))
	rows, err := e.ExecuteQuery(context.Background(), expr.New("VACUUM"))
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Equal(t, 0, rows.Len())
}

func TestQueryDropsExtraColumns(t *testing.T) {
	type user struct {
		ID   int64
		Name string
	}
	e, mock := newMock(t, dialect.PostgreSQL{})
	mock.ExpectQuery(`SELECT "id", "name", "created_at" FROM "users" ORDER BY "created_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(1, "ann", "2024-01-01"))

	users, err := executor.Query(
		context.Background(), e,
		sqlq.Select("id", "name", "created_at").From(sqlq.NewTable("users")).OrderBy("created_at", sqlq.OrderDesc),
		func() (*user, []any) {
			u := &user{}
			return u, []any{&u.ID, &u.Name}
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []*user{{ID: 1, Name: "ann"}}, users)
}

func TestBuildErrorsAreNotRuntimeErrors(t *testing.T) {
	e, _ := newMock(t, dialect.PostgreSQL{})
	_, err := e.ExecuteCommand(context.Background(), expr.New("SELECT ?, :missing", 1))
	assert.ErrorIs(t, err, compiler.ErrUndefinedParameter)
	assert.False(t, executor.IsRuntimeError(err))

	_, err = executor.New(nil, dialect.PostgreSQL{}).ExecuteCommand(context.Background(), expr.New("SELECT 1"))
	assert.ErrorIs(t, err, executor.ErrNilDB)
}

func TestRuntimeErrors(t *testing.T) {
	testCases := []struct {
		name        string
		dialect     dialect.Dialect
		err         error
		wantCode    string
		wantMessage string
	}{
		{"postgres", dialect.PostgreSQL{}, &pq.Error{Code: "23505", Message: "duplicate key value"}, "23505", "duplicate key value"},
		{"mysql", dialect.MySQL{}, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, "1062", "Duplicate entry"},
		{"other", dialect.SQLServer{}, errors.New("connection reset"), "", "connection reset"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mock := newMock(t, tc.dialect)
			mock.ExpectExec("INSERT INTO t VALUES (1)").WillReturnError(tc.err)
			_, err := e.ExecuteCommand(context.Background(), expr.New("INSERT INTO t VALUES (1)"))
			require.Error(t, err)

			var rerr *executor.RuntimeError
			require.ErrorAs(t, err, &rerr)
			assert.True(t, executor.IsRuntimeError(err))
			assert.Equal(t, tc.dialect.Name(), rerr.Dialect)
			assert.Equal(t, tc.wantCode, rerr.Code)
			assert.Equal(t, tc.wantMessage, rerr.Message)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNoRowsIsKept(t *testing.T) {
	e, mock := newMock(t, dialect.PostgreSQL{})
	mock.ExpectQuery("SELECT 1").WillReturnError(sql.ErrNoRows)
	_, err := e.ExecuteQuery(context.Background(), expr.New("SELECT 1"))
	assert.Equal(t, sql.ErrNoRows, err)
}
