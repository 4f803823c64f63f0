package sqlq_test

import (
	"fmt"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

func ExampleDeleteBuilder() {
	var (
		foo = sqlq.NewTable("foo")
		bar = sqlq.NewTable("bar", "b")
	)
	// delete from foo where have no matching records in bar
	b := sqlq.NewDeleteBuilder().
		DeleteFrom(foo).
		Where(expr.New(
			"id NOT IN (?)",
			sqlq.Select(bar.Column("foo_id")).From(bar),
		))
	stmt, err := b.Build(compiler.New())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(stmt.Text)
	fmt.Println(stmt.Params)
	// Output:
	// DELETE FROM "foo" WHERE id NOT IN (SELECT "b"."foo_id" FROM "bar" AS "b")
	// []
}

func ExampleDeleteFrom() {
	b := sqlq.DeleteFrom("orders", "o").Where("status", "=", "closed").Limit(10)
	query, err := compiler.New(compiler.WithTablePrefix("app_")).Compile(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(query)
	// Output:
	// DELETE FROM "app_orders" AS "o" WHERE "status" = 'closed' LIMIT 10
}
