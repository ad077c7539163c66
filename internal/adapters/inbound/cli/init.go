package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/ngkit/internal/adapters/outbound/config"
	"github.com/openkraft/ngkit/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .ngkit.yaml configuration file",
		Long:  "Create a .ngkit.yaml holding the default tool names, paths and limits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(domain.DefaultConfig())), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .ngkit.yaml")

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) string {
	return fmt.Sprintf(`# ngkit configuration

# Command line that re-invokes ngkit for nested lint, prelint and
# format-html steps. Defaults to the running executable.
# self: npx ngkit

app_root: %s
dist_dir: %s
placeholder: %s

# Longest space-joined changed-file list passed to the linters.
max_changed_length: %d

# Write/list passes per formatter in lint --fix before giving up (0 = no limit).
max_format_passes: %d

tools:
  ng: %s
  prettier: %s
  prettier_config: %s
  sass_lint: %s
  tslint: %s
  tsconfig: %s
`,
		cfg.AppRoot, cfg.DistDir, cfg.Placeholder,
		cfg.MaxChangedLength, cfg.FormatPasses(),
		cfg.Tools.NG, cfg.Tools.Prettier, cfg.Tools.PrettierConfig,
		cfg.Tools.SassLint, cfg.Tools.TSLint, cfg.Tools.TSConfig,
	)
}
