package cli

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/compiler"
	"github.com/spf13/cobra"
)

// RewriteOptions holds flags for the rewrite command.
type RewriteOptions struct {
	*RootOptions
	Style string // bind style, the dialect's if empty
}

// NewRewriteCommand creates the rewrite command.
func NewRewriteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RewriteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rewrite <query>",
		Short: "Renumber the ? placeholders of a query",
		Long: `Rewrite the "?" placeholders of hand-written SQL into the bind style
of the dialect, or of --style (question, dollar, at, colon).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Style, "style", "", "bind style")

	return cmd
}

func runRewrite(opts *RewriteOptions, query string, cmd *cobra.Command) error {
	var style compiler.BindStyle
	if opts.Style != "" {
		s, err := compiler.ParseBindStyle(opts.Style)
		if err != nil {
			return err
		}
		style = s
	} else {
		d, err := opts.dialect()
		if err != nil {
			return err
		}
		style = d.Compiler().BindStyle()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), compiler.Rewrite(style, query))
	return err
}
