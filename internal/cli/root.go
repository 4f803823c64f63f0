// Package cli implements the sqlq command line.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	config *viper.Viper
}

// NewRootCommand creates the root command for the sqlq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{config: viper.New()}

	cmd := &cobra.Command{
		Use:   "sqlq",
		Short: "sqlq - SQL expression documents",
		Long: `Compile YAML expression documents into SQL for a dialect,
and run them against a database.

Flags may be set in .sqlq.yaml, or with SQLQ_ environment variables,
e.g. SQLQ_DIALECT=mysql. A .env file in the working directory is loaded.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "log statements to stderr")
	pf.Bool("no-color", false, "disable colored output")
	pf.StringP("dialect", "d", "postgres", "dialect of the statements")
	pf.String("table-prefix", "", "prefix added to table names")
	pf.String("config", "", "config file (default ./.sqlq.yaml)")

	// Add subcommands
	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewRewriteCommand(opts))

	return cmd
}
