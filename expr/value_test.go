package expr_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type celsius float64

type blob []byte

func TestValueOf(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id := uuid.MustParse("5b2e6c0a-1d7b-4e0c-9f43-2b1c8f6a0e11")
	n := 3
	testCases := []struct {
		name string
		in   any
		want expr.Value
	}{
		{"nil", nil, expr.Null{}},
		{"nil pointer", (*string)(nil), expr.Null{}},
		{"pointer", &n, expr.Int(3)},
		{"bool", true, expr.Bool(true)},
		{"int8", int8(-2), expr.Int(-2)},
		{"uint32", uint32(7), expr.Int(7)},
		{"float32", float32(0.5), expr.Float(0.5)},
		{"named float", celsius(1.5), expr.Float(1.5)},
		{"decimal", decimal.NewFromInt(2), expr.Numeric{Value: decimal.NewFromInt(2), Scale: expr.DefaultScale}},
		{"string", "s", expr.String("s")},
		{"bytes", []byte("ab"), expr.Binary("ab")},
		{"named bytes", blob("ab"), expr.Binary("ab")},
		{"nil bytes", []byte(nil), expr.Binary{}},
		{"time", now, expr.DateTime(now)},
		{"uuid", id, expr.String(id.String())},
		{"slice", []int{1, 2}, expr.Array{expr.Int(1), expr.Int(2)}},
		{"any slice", []any{"a", nil}, expr.Array{expr.String("a"), expr.Null{}}},
		{"array", [2]string{"a", "b"}, expr.Array{expr.String("a"), expr.String("b")}},
		{"value", expr.Int(9), expr.Int(9)},
		{"value pointer", func() *expr.Int { i := expr.Int(4); return &i }(), expr.Int(4)},
		{"column", expr.NewColumn("a"), expr.Column{Name: "a"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expr.ValueOf(tc.in))
		})
	}
}

func TestValueOfBigUint(t *testing.T) {
	n, ok := expr.ValueOf(uint64(math.MaxUint64)).(expr.Numeric)
	assert.True(t, ok)
	assert.Equal(t, "18446744073709551615", n.String())
	assert.Equal(t, int32(0), n.Scale)
}

func TestValueOfUnsupported(t *testing.T) {
	v := expr.ValueOf(map[string]int{"a": 1})
	inv, ok := v.(expr.Invalid)
	assert.True(t, ok)
	assert.Contains(t, inv.Error(), "map[string]int")

	v = expr.ValueOf(make(chan int))
	_, ok = v.(expr.Invalid)
	assert.True(t, ok)
}

func TestValueOfExpressioner(t *testing.T) {
	cond := expr.NewConditions().AndColumn("a", "=", 1)
	e, ok := expr.ValueOf(cond).(*expr.Expression)
	assert.True(t, ok)
	assert.Equal(t, "? = ?", e.Text)

	alias, ok := expr.ValueOf(expr.As(expr.NewColumn("a"), "b")).(*expr.Expression)
	assert.True(t, ok)
	assert.Equal(t, "? AS ?", alias.Text)

	assert.Equal(t, expr.Null{}, expr.ValueOf((*expr.Conditions)(nil)))
}

func TestLiteralUnwrap(t *testing.T) {
	v := expr.Lit(expr.Lit(expr.Lit(1)))
	assert.Equal(t, expr.Int(1), expr.Unwrap(v))
	assert.Equal(t, expr.Int(1), expr.Unwrap(expr.Int(1)))
}

func TestReference(t *testing.T) {
	var s string
	r := expr.Ref(&s)
	assert.NoError(t, r.Err())
	s = "late"
	assert.Equal(t, expr.String("late"), r.Resolve())
	assert.Equal(t, expr.String("late"), expr.Resolve(r))

	bad := expr.Ref(s)
	assert.Error(t, bad.Err())
	_, ok := bad.Resolve().(expr.Invalid)
	assert.True(t, ok)
}

func TestIdentifiers(t *testing.T) {
	id := expr.NewIdentifier("a.b", "c")
	assert.Equal(t, "c", id.Name)
	assert.Equal(t, expr.Path{"a", "b"}, id.Namespace)
	assert.Equal(t, []string{"a", "b", "c"}, id.Segments())
	assert.Equal(t, "a.b.c", id.String())

	tbl := expr.NewTable("public.orders")
	col := tbl.Column("id")
	assert.Equal(t, tbl, col.Namespace)
	assert.Equal(t, "public.orders.id", col.String())
	assert.Equal(t, []expr.Column{tbl.Column("a"), tbl.Column("b")}, tbl.Columns("a", "b"))
	assert.Equal(t, "*", tbl.AllColumns().Name)

	schema := expr.NewIdentifier("public")
	assert.Equal(t, expr.Table{Name: "t", Namespace: schema}, schema.Table("t"))
	assert.Equal(t, expr.Column{Name: "c", Namespace: schema}, schema.Column("c"))
}

func TestExpressionParams(t *testing.T) {
	e := expr.Named("a = :a", map[string]any{"a": 1}).Bind(":b", 2)
	v, ok := e.NamedParam("a")
	assert.True(t, ok)
	assert.Equal(t, expr.Int(1), v)
	v, ok = e.NamedParam(":b")
	assert.True(t, ok)
	assert.Equal(t, expr.Int(2), v)
	_, ok = e.NamedParam("c")
	assert.False(t, ok)
	assert.Equal(t, []string{":a", ":b"}, e.Names())
	assert.Nil(t, expr.New("?", 1).Names())
	assert.True(t, e.HasParams())
	assert.Equal(t, 0, e.NumParams())

	p := expr.New("? ?").Set(1, "x")
	_, ok = p.Param(0)
	assert.False(t, ok)
	v, ok = p.Param(1)
	assert.True(t, ok)
	assert.Equal(t, expr.String("x"), v)
	assert.Equal(t, 2, p.NumParams())

	assert.False(t, expr.New("SELECT 1").HasParams())
	assert.NoError(t, expr.New("x").Err())
}
