package sqlq

import (
	"log/slog"
	"strings"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/expr"
)

type debugger struct {
	debug bool // debug mode
	name  string
}

// Debug enables debug mode which logs the interpolated query.
func (b *debugger) Debug(name ...string) {
	b.debug = true
	if len(name) == 0 {
		b.name = "sqlq"
		return
	}
	b.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// printIfDebug logs the query with its values quoted inline.
func (b *debugger) printIfDebug(c *compiler.Compiler, e expr.Expressioner, stmt *compiler.Statement) {
	if !b.debug {
		return
	}
	prefix := b.name
	if prefix == "" {
		prefix = "sqlq"
	}
	interpolated, err := c.Compile(e)
	if err != nil {
		slog.Warn("interpolating", "name", prefix, "query", stmt.Text, "error", err)
		return
	}
	slog.Info(interpolated, "name", prefix, "params", len(stmt.Params))
}

// build lowers e with c and logs it in debug mode.
func build(c *compiler.Compiler, e expr.Expressioner, d *debugger) (*compiler.Statement, error) {
	stmt, err := c.Statement(e)
	if err != nil {
		return nil, err
	}
	d.printIfDebug(c, e, stmt)
	return stmt, nil
}
