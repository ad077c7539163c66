package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/fsys"
	"github.com/openkraft/ngkit/internal/adapters/outbound/walker"
	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const prelintHelp = `Fail on empty files and files that start with whitespace.

Without files, the whole project is checked except node_modules, dist,
coverage and .git. The placeholder file (.gitkeep) may be empty.

Flags:
  --verbose    log every file to stderr`

func newPrelintCmd() *cobra.Command {
	return newScriptCmd("prelint [files...]", "Check files before linting", prelintHelp,
		func(cmd *cobra.Command, tokens []string) error {
			opts, _ := domain.ResolvePrelintOptions(tokens)
			env, err := newScriptEnv(cmd, opts.Verbose)
			if err != nil {
				return err
			}

			svc := application.NewPrelintService(walker.New(application.PrelintExcludes...), fsys.New(env.out), env.cfg)
			return svc.Run(env.ctx, opts)
		})
}
