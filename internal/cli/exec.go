package cli

import (
	"errors"

	"github.com/qjebbs/go-sqlq/executor"
	"github.com/spf13/cobra"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	Command bool // report affected rows instead of reading rows
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <document>",
		Short: "Run an expression document against a database",
		Long: `Run a YAML expression document against the database of --dsn
(or SQLQ_DSN). Rows are printed tab separated, with --command the number
of affected rows is printed instead.

Supported dialects are postgres, mysql and sqlite.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, args[0], cmd)
		},
	}

	cmd.Flags().String("dsn", "", "data source name of the database")
	cmd.Flags().BoolVarP(&opts.Command, "command", "c", false, "print affected rows")

	return cmd
}

func runExec(opts *ExecOptions, path string, cmd *cobra.Command) error {
	dsn := opts.config.GetString("dsn")
	if dsn == "" {
		return errors.New("no data source, set --dsn or SQLQ_DSN")
	}
	e, err := readExpression(cmd, path)
	if err != nil {
		return err
	}
	d, err := opts.dialect()
	if err != nil {
		return err
	}
	ex, err := executor.Open(
		d.Name(), dsn,
		executor.WithLogger(opts.logger(cmd.ErrOrStderr())),
		executor.WithCompilerOptions(opts.compilerOptions()...),
	)
	if err != nil {
		return err
	}
	defer ex.Close()

	out := cmd.OutOrStdout()
	if opts.Command {
		n, err := ex.ExecuteCommand(cmd.Context(), e)
		if err != nil {
			return err
		}
		successColor.Fprintf(out, "%d row(s) affected\n", n)
		return nil
	}
	rows, err := ex.ExecuteQuery(cmd.Context(), e)
	if err != nil {
		return err
	}
	printRows(out, rows)
	return nil
}
