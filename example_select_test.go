package sqlq_test

import (
	"fmt"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
)

func ExampleSelectBuilder() {
	var (
		foo = sqlq.NewTable("foo", "f")
		bar = sqlq.NewTable("bar", "b")
	)
	b := sqlq.NewSelectBuilder().
		Select(foo.Column("id"), bar.Column("name")).
		From(foo).
		InnerJoin(bar, expr.NewConditions().And(bar.Column("foo_id"), "=", foo.Column("id"))).
		Where(foo.Column("kind"), "IN", []string{"a", "b"}).
		WhereBetween(foo.Column("score"), 60, 100).
		OrderBy(bar.Column("name"))
	stmt, err := b.Build(dialect.PostgreSQL{}.Compiler())
	if err != nil {
		fmt.Println(err)
		return
	}
	args, err := stmt.Args(nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(stmt.Text)
	fmt.Println(args)
	// Output:
	// SELECT "f"."id", "b"."name" FROM "foo" AS "f" INNER JOIN "bar" AS "b" ON "b"."foo_id" = "f"."id" WHERE "f"."kind" IN ($1, $2) AND "f"."score" BETWEEN $3 AND $4 ORDER BY "b"."name" ASC
	// [a b 60 100]
}

func ExampleSelectBuilder_with() {
	recent := sqlq.NewSource("recent")
	b := sqlq.NewSelectBuilder(dialect.SQLite{}).
		With(recent.Name, sqlq.Select("user_id").
			From(sqlq.NewTable("logins")).
			Where("at", ">", expr.New("DATE('now', '-7 days')")),
		).
		Select("id", "name").
		From(sqlq.NewTable("users")).
		WhereExists(sqlq.Select(expr.New("1")).
			From(recent).
			Where(recent.Column("user_id"), "=", sqlq.NewTable("users").Column("id")),
		)
	query, err := dialect.SQLite{}.Compiler().Compile(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(query)
	// Output:
	// WITH "recent" AS (SELECT "user_id" FROM "logins" WHERE "at" > DATE('now', '-7 days')) SELECT "id", "name" FROM "users" WHERE EXISTS (SELECT 1 FROM "recent" WHERE "recent"."user_id" = "users"."id")
}
