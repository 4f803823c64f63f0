package cli

import (
	"github.com/qjebbs/go-sqlq/expr"
	"github.com/qjebbs/go-sqlq/internal/document"
	"github.com/spf13/cobra"
)

// readExpression reads the document at path, or stdin for "-".
func readExpression(cmd *cobra.Command, path string) (*expr.Expression, error) {
	var (
		d   *document.Document
		err error
	)
	if path == "-" {
		d, err = document.Decode(cmd.InOrStdin())
	} else {
		d, err = document.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return d.Expression()
}
