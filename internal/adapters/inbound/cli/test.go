package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const testHelp = `Run the unit tests, then the end-to-end tests.

Flags:
  --coverage     collect code coverage
  --sourcemaps   emit source maps (default: same as --coverage)
  --watch        re-run unit tests on change
  --e2e          run end-to-end tests (default: on unless --watch)` + commonFlagsHelp

func newTestCmd() *cobra.Command {
	return newScriptCmd("test [flags]", "Run unit and end-to-end tests", testHelp,
		func(cmd *cobra.Command, tokens []string) error {
			opts, flags := domain.ResolveTestOptions(tokens)
			env, err := newScriptEnv(cmd, opts.Verbose)
			if err != nil {
				return err
			}

			svc := application.NewTestService(env.runner(), env.cfg)
			if opts.DryRun {
				steps, err := svc.Plan(opts)
				if err != nil {
					return err
				}
				env.printPlan("test", flags, steps)
				return nil
			}

			svc.OnStep = env.printStep
			return svc.Run(env.ctx, opts)
		})
}
