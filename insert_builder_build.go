package sqlq

import (
	"errors"
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/dialect"
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/util"
)

// Build builds the statement with the placeholders of c.
//
// Clauses are written for the dialect of the builder, so c is expected to
// be a compiler of the same dialect. A nil c is the dialect's compiler.
func (b *InsertBuilder) Build(c *compiler.Compiler) (*compiler.Statement, error) {
	if c == nil {
		c = b.dialect.Compiler()
	}
	return build(c, b, &b.debugger)
}

// Dialect returns the dialect the clauses are written for.
func (b *InsertBuilder) Dialect() dialect.Dialect {
	return b.dialect
}

// Debug enables debug mode which logs the interpolated query.
func (b *InsertBuilder) Debug(name ...string) *InsertBuilder {
	b.debugger.Debug(name...)
	return b
}

// Expr implements expr.Expressioner.
func (b *InsertBuilder) Expr() *expr.Expression {
	errs := append([]error{}, b.errors...)
	if b.target.IsZero() {
		errs = append(errs, errors.New("no target table specified for insert"))
	}
	if b.selects == nil && len(b.values) == 0 {
		errs = append(errs, errors.New("no values or select specified for insert"))
	}
	if b.selects != nil && len(b.values) > 0 {
		errs = append(errs, errors.New("cannot specify both select and values for insert"))
	}
	caps := b.dialect.Capabilities()
	parts := make([]any, 0, 8)
	if !b.ctes.Empty() {
		parts = append(parts, b.ctes)
	}
	parts = append(parts, expr.New("INSERT INTO ?", b.target))
	if len(b.columns) > 0 {
		parts = append(parts, expr.New("(?)", expr.List(", ", columns(b.columns)...)))
	}
	if len(b.returning) > 0 && !caps.SupportsReturning {
		if caps.SupportsOutputInserted {
			parts = append(parts, b.outputInserted())
		} else {
			errs = append(errs, fmt.Errorf("RETURNING is not supported by %s", b.dialect.Name()))
		}
	}
	if b.selects != nil {
		parts = append(parts, b.selects)
	} else if len(b.values) > 0 {
		for i, row := range b.values {
			if len(b.columns) > 0 && len(row) != len(b.columns) {
				errs = append(errs, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(b.columns)))
			}
		}
		parts = append(parts, expr.NewValues(b.values...))
	}
	if conflict, err := b.conflict(); err != nil {
		errs = append(errs, err)
	} else if conflict != nil {
		parts = append(parts, conflict)
	}
	if len(b.returning) > 0 && caps.SupportsReturning {
		parts = append(parts, expr.New("RETURNING ?", expr.List(", ", columns(b.returning)...)))
	}
	return statement(parts, errs)
}

func (b *InsertBuilder) outputInserted() *expr.Expression {
	cols := util.Map(b.returning, func(c string) any {
		return expr.New("INSERTED.?", expr.NewIdentifier(c))
	})
	return expr.New("OUTPUT ?", expr.List(", ", cols...))
}

// conflict returns the upsert clause of the dialect, nil if not wanted.
func (b *InsertBuilder) conflict() (*expr.Expression, error) {
	if len(b.conflictOn) == 0 && len(b.conflictDo) == 0 && len(b.excluded) == 0 {
		return nil, nil
	}
	caps := b.dialect.Capabilities()
	switch {
	case caps.SupportsOnConflict:
		var target any = expr.New("")
		if len(b.conflictOn) > 0 {
			target = expr.New(" (?)", expr.List(", ", columns(b.conflictOn)...))
		}
		actions := b.conflictActions(func(col string) any {
			return expr.New("EXCLUDED.?", expr.NewIdentifier(col))
		})
		if len(actions) == 0 {
			return expr.New("ON CONFLICT? DO NOTHING", target), nil
		}
		return expr.New("ON CONFLICT? DO UPDATE SET ?", target, expr.List(", ", actions...)), nil
	case caps.SupportsOnDuplicateKeyUpdate:
		actions := b.conflictActions(func(col string) any {
			return expr.New("VALUES(?)", expr.NewIdentifier(col))
		})
		if len(actions) == 0 {
			return nil, errors.New("ON DUPLICATE KEY UPDATE requires update actions")
		}
		return expr.New("ON DUPLICATE KEY UPDATE ?", expr.List(", ", actions...)), nil
	}
	return nil, fmt.Errorf("conflict handling is not supported by %s", b.dialect.Name())
}

func (b *InsertBuilder) conflictActions(proposed func(col string) any) []any {
	actions := make([]any, 0, len(b.conflictDo)+len(b.excluded))
	for _, a := range b.conflictDo {
		actions = append(actions, a)
	}
	for _, col := range b.excluded {
		actions = append(actions, expr.New("? = ?", expr.NewColumn(col), proposed(col)))
	}
	return actions
}
