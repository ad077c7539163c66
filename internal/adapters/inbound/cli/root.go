package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/tui"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ngkit",
		Short: "Build, lint and test an Angular application",
		Long: "ngkit drives the Angular CLI and the project's linters: it cleans and builds the app, " +
			"aggregates prettier, sass-lint and tslint runs, formats templates and checks files before linting.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newFormatHTMLCmd())
	cmd.AddCommand(newPrelintCmd())
	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command line and prints any error to stderr. The caller
// turns the error into the process exit code.
func Execute(ctx context.Context) error {
	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderError(err))
	}
	return err
}
