package sqlq_test

import (
	"testing"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEndToEnd(t *testing.T) {
	b := sqlq.DeleteFrom("orders", "o").Where("status", "=", "closed").Limit(10)

	query, err := compiler.New(compiler.WithTablePrefix("app_")).Compile(b)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "app_orders" AS "o" WHERE "status" = 'closed' LIMIT 10`, query)

	stmt, err := b.Build(dialect.PostgreSQL{}.Compiler(compiler.WithTablePrefix("app_")))
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "app_orders" AS "o" WHERE "status" = $1 LIMIT 10`, stmt.Text)
	assert.Equal(t, []expr.Value{expr.String("closed")}, stmt.Params)
}

func TestBuildInSubquery(t *testing.T) {
	b := expr.New(
		"WHERE id IN (?)",
		sqlq.Select("id").From(sqlq.NewTable("foo")),
	)
	stmt, err := dialect.PostgreSQL{}.Compiler().Statement(b)
	require.NoError(t, err)
	assert.Equal(t, `WHERE id IN (SELECT "id" FROM "foo")`, stmt.Text)
	assert.Empty(t, stmt.Params)
}

func TestBuilders(t *testing.T) {
	var (
		users  = sqlq.NewTable("users", "u")
		orders = sqlq.NewTable("orders", "o")
	)
	testCases := []struct {
		name       string
		dialect    dialect.Dialect
		builder    sqlq.Builder
		wantText   string
		wantParams int
	}{
		{
			name:    "select",
			dialect: dialect.PostgreSQL{},
			builder: sqlq.NewSelectBuilder().
				Select(users.Column("id"), expr.As(expr.New("COUNT(*)"), "n")).
				From(users).
				LeftJoin(orders, expr.NewConditions().And(orders.Column("user_id"), "=", users.Column("id"))).
				Where(users.Column("active"), "=", true).
				GroupBy(users.Column("id")).
				Having(expr.New("COUNT(*)"), ">", 2).
				OrderBy("n", sqlq.OrderDesc).
				Limit(10).
				Offset(20),
			wantText:   `SELECT "u"."id", COUNT(*) AS "n" FROM "users" AS "u" LEFT JOIN "orders" AS "o" ON "o"."user_id" = "u"."id" WHERE "u"."active" = $1 GROUP BY "u"."id" HAVING COUNT(*) > $2 ORDER BY "n" DESC LIMIT 10 OFFSET 20`,
			wantParams: 2,
		},
		{
			name:    "select offset fetch",
			dialect: dialect.SQLServer{},
			builder: sqlq.NewSelectBuilder(dialect.SQLServer{}).
				Select("id").
				From(sqlq.NewTable("t")).
				OrderBy("id").
				Limit(5),
			wantText: `SELECT [id] FROM [t] ORDER BY [id] ASC OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY`,
		},
		{
			name:    "select where groups",
			dialect: dialect.MySQL{},
			builder: sqlq.NewSelectBuilder(dialect.MySQL{}).
				Distinct().
				Select("id").
				From(sqlq.NewTable("t")).
				WhereIsNull("deleted_at").
				WhereOpen().
				OrWhere("a", "=", 1).
				OrWhere("b", "BETWEEN", []int{2, 3}).
				WhereClose().
				WhereOpen().
				WhereClose().
				WhereNotIn("c", []string{"x", "y"}),
			wantText:   "SELECT DISTINCT `id` FROM `t` WHERE `deleted_at` IS NULL AND (`a` = ? OR `b` BETWEEN ? AND ?) AND `c` NOT IN (?, ?)",
			wantParams: 5,
		},
		{
			name:    "select with union",
			dialect: dialect.SQLite{},
			builder: sqlq.NewSelectBuilder(dialect.SQLite{}).
				With("recent", sqlq.Select("id").From(sqlq.NewTable("orders")).Where("total", ">", 100)).
				Select("id").
				From(sqlq.NewSource("recent")).
				UnionAll(sqlq.Select("id").From(sqlq.NewTable("archive"))),
			wantText:   `WITH "recent" AS (SELECT "id" FROM "orders" WHERE "total" > ?) SELECT "id" FROM "recent" UNION ALL SELECT "id" FROM "archive"`,
			wantParams: 1,
		},
		{
			name:    "insert upsert",
			dialect: dialect.PostgreSQL{},
			builder: sqlq.NewInsertBuilder(dialect.PostgreSQL{}).
				InsertInto(sqlq.NewTable("users")).
				Columns("name", "age").
				Values("ann", 30).
				Values("bob", 25).
				OnConflict("name").
				DoUpdateSetExcluded("age").
				Returning("id"),
			wantText:   `INSERT INTO "users" ("name", "age") VALUES ($1, $2), ($3, $4) ON CONFLICT ("name") DO UPDATE SET "age" = EXCLUDED."age" RETURNING "id"`,
			wantParams: 4,
		},
		{
			name:    "insert do nothing",
			dialect: dialect.SQLite{},
			builder: sqlq.NewInsertBuilder(dialect.SQLite{}).
				InsertInto(sqlq.NewTable("tags")).
				Columns("name").
				Values("go").
				OnConflict("name"),
			wantText:   `INSERT INTO "tags" ("name") VALUES (?) ON CONFLICT ("name") DO NOTHING`,
			wantParams: 1,
		},
		{
			name:    "insert on duplicate key",
			dialect: dialect.MySQL{},
			builder: sqlq.NewInsertBuilder(dialect.MySQL{}).
				InsertInto(sqlq.NewTable("counters")).
				Columns("name", "hits").
				Values("home", 1).
				OnConflict().
				DoUpdateSet("hits", expr.New("hits + 1")).
				DoUpdateSetExcluded("name"),
			wantText:   "INSERT INTO `counters` (`name`, `hits`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `hits` = hits + 1, `name` = VALUES(`name`)",
			wantParams: 2,
		},
		{
			name:    "insert output inserted",
			dialect: dialect.SQLServer{},
			builder: sqlq.NewInsertBuilder(dialect.SQLServer{}).
				InsertInto(sqlq.NewTable("users")).
				Columns("name").
				Values("ann").
				Returning("id"),
			wantText:   `INSERT INTO [users] ([name]) OUTPUT INSERTED.[id] VALUES (@p1)`,
			wantParams: 1,
		},
		{
			name:    "insert from select",
			dialect: dialect.PostgreSQL{},
			builder: sqlq.NewInsertBuilder().
				InsertInto(sqlq.NewTable("archive")).
				Columns("id").
				From(sqlq.Select("id").From(sqlq.NewTable("orders")).Where("status", "=", "closed")),
			wantText:   `INSERT INTO "archive" ("id") SELECT "id" FROM "orders" WHERE "status" = $1`,
			wantParams: 1,
		},
		{
			name:    "update",
			dialect: dialect.PostgreSQL{},
			builder: sqlq.Update("users").
				Set("name", "ann").
				Set("visits", expr.New("visits + ?", 1)).
				Where("id", "=", 7),
			wantText:   `UPDATE "users" SET "name" = $1, "visits" = visits + $2 WHERE "id" = $3`,
			wantParams: 3,
		},
		{
			name:    "update limit",
			dialect: dialect.MySQL{},
			builder: sqlq.NewUpdateBuilder(dialect.MySQL{}).
				Update(sqlq.NewTable("jobs")).
				Set("state", "queued").
				WhereIsNull("state").
				OrderBy("id").
				Limit(100),
			wantText:   "UPDATE `jobs` SET `state` = ? WHERE `state` IS NULL ORDER BY `id` ASC LIMIT 100",
			wantParams: 1,
		},
		{
			name:    "delete",
			dialect: dialect.Oracle{},
			builder: sqlq.DeleteFrom("sessions").
				WhereIn("user_id", []int{1, 2}).
				OrWhere("expires_at", "<", expr.New("CURRENT_TIMESTAMP")),
			wantText:   `DELETE FROM "sessions" WHERE "user_id" IN (:1, :2) OR "expires_at" < CURRENT_TIMESTAMP`,
			wantParams: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stmt, err := tc.builder.Build(tc.dialect.Compiler())
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, stmt.Text)
			assert.Len(t, stmt.Params, tc.wantParams)
		})
	}
}

func TestBuilderErrors(t *testing.T) {
	testCases := []struct {
		name    string
		builder sqlq.Builder
		want    string
	}{
		{"no columns", sqlq.NewSelectBuilder().From(sqlq.NewTable("t")), "no columns selected"},
		{"join without from", sqlq.Select("a").InnerJoin(sqlq.NewTable("t"), expr.New("1 = 1")), "JOIN without FROM table"},
		{"having without group by", sqlq.Select("a").From(sqlq.NewTable("t")).Having("a", ">", 1), "HAVING without GROUP BY"},
		{"insert without target", sqlq.NewInsertBuilder().Values(1), "no target table"},
		{"insert without values", sqlq.InsertInto("t", "a"), "no values or select"},
		{"insert both", sqlq.InsertInto("t", "a").Values(1).From(sqlq.Select("a")), "cannot specify both"},
		{"insert row size", sqlq.InsertInto("t", "a", "b").Values(1), "row 0 has 1 values, want 2"},
		{"insert empty row", sqlq.InsertInto("t", "a").Values(), "empty row"},
		{"returning unsupported", sqlq.NewInsertBuilder(dialect.MySQL{}).InsertInto(sqlq.NewTable("t")).Values(1).Returning("id"), "RETURNING is not supported by mysql"},
		{"conflict unsupported", sqlq.NewInsertBuilder(dialect.Oracle{}).InsertInto(sqlq.NewTable("t")).Values(1).OnConflict("id"), "conflict handling is not supported by oracle"},
		{"duplicate key without actions", sqlq.NewInsertBuilder(dialect.MySQL{}).InsertInto(sqlq.NewTable("t")).Values(1).OnConflict("id"), "requires update actions"},
		{"update without set", sqlq.Update("t").Where("id", "=", 1), "no assignments"},
		{"update from on mysql", sqlq.NewUpdateBuilder(dialect.MySQL{}).Update(sqlq.NewTable("t")).Set("a", 1).From(sqlq.NewTable("f")), "use joins"},
		{"update from unsupported", sqlq.NewUpdateBuilder(dialect.Oracle{}).Update(sqlq.NewTable("t")).Set("a", 1).From(sqlq.NewTable("f")), "UPDATE ... FROM is not supported by oracle"},
		{"update missing map value", sqlq.Update("t").SetMap([]string{"a"}, map[string]any{}), `no value for column "a"`},
		{"delete without target", sqlq.NewDeleteBuilder().Where("a", "=", 1), "no target table"},
		{"malformed between", sqlq.DeleteFrom("t").Where("a", "BETWEEN", []int{1}), expr.ErrMalformedBetween.Error()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build(compiler.New())
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestTableColumns(t *testing.T) {
	c := compiler.New(compiler.WithTablePrefix("app_"))
	testCases := []struct {
		name string
		in   any
		want string
	}{
		{"table", sqlq.NewTable("users"), `"app_users"`},
		{"aliased table", sqlq.NewTable("users", "u"), `"app_users" AS "u"`},
		{"column", sqlq.NewTable("users").Column("id"), `"app_users"."id"`},
		{"aliased column", sqlq.NewTable("users", "u").Column("id"), `"u"."id"`},
		{"source", sqlq.NewSource("recent"), `"recent"`},
		{"source column", sqlq.NewSource("recent").Column("id"), `"recent"."id"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Compile(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, "u", sqlq.NewTable("users", "u").AppliedName())
	assert.Equal(t, "users", sqlq.NewTable("users").AppliedName())
	assert.True(t, sqlq.Table{}.IsZero())
}

func TestLateBoundBuilder(t *testing.T) {
	status := "open"
	b := sqlq.NewSelectBuilder().
		Select("id").
		From(sqlq.NewTable("tickets")).
		Where("status", "=", expr.Ref(&status))
	stmt, err := b.Build(dialect.PostgreSQL{}.Compiler())
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "tickets" WHERE "status" = $1`, stmt.Text)

	args, err := stmt.Args(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"open"}, args)

	status = "closed"
	args, err = stmt.Args(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"closed"}, args)
}

func TestBuildWithDialectCompiler(t *testing.T) {
	b := sqlq.NewSelectBuilder(dialect.SQLServer{}).
		Select("id").
		From(sqlq.NewTable("t")).
		Where("a", "=", 1).
		Limit(5)
	assert.Equal(t, dialect.SQLServer{}, b.Dialect())

	// a nil compiler is the compiler of the builder's dialect
	stmt, err := b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, `SELECT [id] FROM [t] WHERE [a] = @p1 OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY`, stmt.Text)

	stmt, err = b.Build(b.Dialect().Compiler(compiler.WithTablePrefix("app_")))
	require.NoError(t, err)
	assert.Equal(t, `SELECT [id] FROM [app_t] WHERE [a] = @p1 OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY`, stmt.Text)

	assert.Equal(t, dialect.MySQL{}, sqlq.NewInsertBuilder(dialect.MySQL{}).Dialect())
	assert.Equal(t, dialect.PostgreSQL{}, sqlq.Update("t").Dialect())

	del, err := sqlq.DeleteFrom("t").Where("a", "=", 1).Build(nil)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "t" WHERE "a" = $1`, del.Text)
}
