package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/config"
	"github.com/openkraft/ngkit/internal/adapters/outbound/shell"
	"github.com/openkraft/ngkit/internal/adapters/outbound/tui"
	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
)

// newScriptCmd builds a command whose arguments go through ngkit's own
// flag grammar (--name, --name=value) instead of cobra's.
func newScriptCmd(use, short, long string, run func(cmd *cobra.Command, tokens []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Long:               long,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			if domain.ParseFlags(tokens, nil).Bool(domain.FlagHelp) {
				return cmd.Help()
			}
			return run(cmd, tokens)
		},
	}
}

const commonFlagsHelp = `
  --dryRun     print the planned steps without running anything
  --verbose    log every command and decision to stderr
  --help       show this help`

// scriptEnv is what a script command needs once its flags are resolved.
type scriptEnv struct {
	ctx    context.Context
	cfg    domain.ProjectConfig
	self   string
	out    io.Writer
	errOut io.Writer
}

func newScriptEnv(cmd *cobra.Command, verbose bool) (*scriptEnv, error) {
	cfg, err := config.New().Load(".")
	if err != nil {
		return nil, err
	}
	self, err := selfCommand(cfg)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.New(cmd.ErrOrStderr(), verbose)
	return &scriptEnv{
		ctx:    ctxlog.WithLogger(cmd.Context(), logger),
		cfg:    cfg,
		self:   self,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// runner returns a shell executor writing through the command's streams.
func (e *scriptEnv) runner() *shell.Executor {
	ex := shell.New()
	ex.Stdout = e.out
	ex.Stderr = e.errOut
	return ex
}

func (e *scriptEnv) printStep(st domain.Step) {
	fmt.Fprintln(e.out, tui.RenderStep(st))
}

func (e *scriptEnv) printPlan(title string, flags domain.Flags, steps []domain.Step) {
	fmt.Fprintln(e.out, tui.RenderOptions(flags))
	fmt.Fprintln(e.out, tui.RenderPlan(title, steps))
}

// selfCommand is the command line that re-invokes ngkit for nested steps.
func selfCommand(cfg domain.ProjectConfig) (string, error) {
	if cfg.Self != "" {
		return cfg.Self, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating ngkit executable: %w", err)
	}
	return domain.QuoteArg(exe), nil
}
