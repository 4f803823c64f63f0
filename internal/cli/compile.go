package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Literal bool // quote values inline
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <document>",
		Short: "Compile an expression document to SQL",
		Long: `Compile a YAML expression document into a statement of the dialect.

The statement is printed with its native placeholders, followed by the
parameters as SQL comments. With --literal, values are quoted inline.
Use "-" to read the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Literal, "literal", "l", false, "quote values inline")

	return cmd
}

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command) error {
	e, err := readExpression(cmd, path)
	if err != nil {
		return err
	}
	d, err := opts.dialect()
	if err != nil {
		return err
	}
	c := d.Compiler(opts.compilerOptions()...)
	out := cmd.OutOrStdout()
	if opts.Literal {
		query, err := c.Compile(e)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}
		queryColor.Fprintln(out, query)
		return nil
	}
	stmt, err := c.Statement(e)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	return printStatement(out, c, stmt)
}
