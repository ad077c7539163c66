package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/fsys"
	"github.com/openkraft/ngkit/internal/adapters/outbound/walker"
	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const formatHTMLHelp = `Format Angular templates. Without files, every .html file under the app root is used.

Flags:
  --fix        rewrite templates that are not formatted
  --list       report templates that are not formatted and fail
  --verbose    log every file to stderr

Exactly one of --fix and --list is required.`

func newFormatHTMLCmd() *cobra.Command {
	return newScriptCmd("format-html [flags] [files...]", "Format or check Angular templates", formatHTMLHelp,
		func(cmd *cobra.Command, tokens []string) error {
			opts, _ := domain.ResolveFormatHTMLOptions(tokens)
			if err := opts.Validate(); err != nil {
				return err
			}
			env, err := newScriptEnv(cmd, opts.Verbose)
			if err != nil {
				return err
			}

			svc := application.NewFormatHTMLService(walker.New(), fsys.New(env.out), env.cfg)
			return svc.Run(env.ctx, opts)
		})
}
