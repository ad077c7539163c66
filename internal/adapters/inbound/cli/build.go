package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/fsys"
	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const buildHelp = `Clean the output directory, lint, build the application and optionally run the tests.

Flags:
  --lint       lint before building (default: on unless --watch)
  --prod       production build
  --stats      write stats.json (only with --prod)
  --watch      rebuild on change (not with --prod or --test)
  --test       run the tests after building` + commonFlagsHelp

func newBuildCmd() *cobra.Command {
	return newScriptCmd("build [flags]", "Clean, lint, build and test the application", buildHelp,
		func(cmd *cobra.Command, tokens []string) error {
			opts, flags := domain.ResolveBuildOptions(tokens)
			env, err := newScriptEnv(cmd, opts.Verbose)
			if err != nil {
				return err
			}

			svc := application.NewBuildService(env.runner(), fsys.New(env.out), env.cfg, env.self)
			if opts.DryRun {
				steps, err := svc.Plan(opts)
				if err != nil {
					return err
				}
				env.printPlan("build", flags, steps)
				return nil
			}

			svc.OnStep = env.printStep
			return svc.Run(env.ctx, opts)
		})
}
