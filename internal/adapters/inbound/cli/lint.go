package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/fsys"
	"github.com/openkraft/ngkit/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/ngkit/internal/adapters/outbound/tui"
	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const lintHelp = `Run pre-lint, the formatters, sass-lint and tslint in order, stopping at the first failure.

Flags:
  --prelint      check for empty files and leading whitespace (default: on)
  --prettier     check formatting of html, json, yml, scss, ts and js (default: on)
  --sasslint     run sass-lint (default: on)
  --htmllint     accepted for compatibility (default: on)
  --tslint       run tslint (default: on)
  --fix          rewrite files instead of only reporting
  --changed      only lint files reported by git status
  --lastCommit   also lint files touched by the last commit (implies --changed)` + commonFlagsHelp

func newLintCmd() *cobra.Command {
	return newScriptCmd("lint [flags]", "Run every linter and formatter check", lintHelp,
		func(cmd *cobra.Command, tokens []string) error {
			opts, flags := domain.ResolveLintOptions(tokens)
			env, err := newScriptEnv(cmd, opts.Verbose)
			if err != nil {
				return err
			}

			svc := application.NewLintService(env.runner(), gitinfo.New(), fsys.New(env.out), env.cfg, env.self)
			plan, err := svc.Plan(env.ctx, opts)
			if err != nil {
				return err
			}
			if opts.Changed {
				fmt.Fprintln(env.out, tui.RenderChanged(plan.Changed))
			}

			if opts.DryRun {
				env.printPlan("lint", flags, plan.Describe())
				return svc.CheckSize(plan)
			}

			svc.OnStep = env.printStep
			return svc.Execute(env.ctx, plan)
		})
}
