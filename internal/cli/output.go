package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/qjebbs/go-sqlq/executor"
)

var (
	queryColor   = color.New(color.FgCyan)
	commentColor = color.New(color.FgHiBlack)
	headerColor  = color.New(color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

// printStatement prints the text and, as SQL comments, the quoted
// parameters.
func printStatement(w io.Writer, c *compiler.Compiler, stmt *compiler.Statement) error {
	queryColor.Fprintln(w, stmt.Text)
	for i, p := range stmt.Params {
		q, err := c.QuoteLiteral(p)
		if err != nil {
			return fmt.Errorf("parameter %d: %w", i+1, err)
		}
		commentColor.Fprintf(w, "-- %d: %s\n", i+1, q)
	}
	return nil
}

// printRows prints rows tab separated, with a header line.
func printRows(w io.Writer, rows *executor.Rows) {
	if rows == nil {
		successColor.Fprintln(w, "ok")
		return
	}
	headerColor.Fprintln(w, strings.Join(rows.Columns, "\t"))
	for _, row := range rows.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	commentColor.Fprintf(w, "(%d row(s))\n", rows.Len())
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}
