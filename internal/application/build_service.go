package application

import (
	"context"
	"fmt"

	"github.com/openkraft/ngkit/internal/domain"
)

// BuildService cleans the output directory, optionally lints, builds the
// application and optionally runs the tests.
type BuildService struct {
	runner  domain.CommandRunner
	cleaner domain.DirCleaner
	cfg     domain.ProjectConfig
	self    string
	OnStep  func(domain.Step)
}

// NewBuildService creates a BuildService. self is the command line that
// re-invokes this binary for the lint and test sub-steps.
func NewBuildService(runner domain.CommandRunner, cleaner domain.DirCleaner, cfg domain.ProjectConfig, self string) *BuildService {
	return &BuildService{runner: runner, cleaner: cleaner, cfg: cfg, self: self}
}

// BuildCommand assembles the application build invocation. Ahead-of-time
// compilation is off while watching.
func BuildCommand(ng string, opts domain.BuildOptions) string {
	configuration := ""
	if opts.Prod {
		configuration = "--configuration production"
	}
	watch := ""
	aot := "--aot"
	if opts.Watch {
		watch = "--watch"
		aot = ""
	}
	stats := "--no-stats-json"
	if opts.Stats {
		stats = "--stats-json"
	}
	return domain.CollapseSpaces(fmt.Sprintf("%s build %s %s %s %s", ng, configuration, watch, aot, stats))
}

func (s *BuildService) steps(opts domain.BuildOptions) []plannedStep {
	dist := s.cfg.DistDir
	lint := domain.CommandLine(s.self, "lint")
	test := domain.CommandLine(s.self, "test")
	build := BuildCommand(s.cfg.Tools.NG, opts)

	steps := []plannedStep{
		{
			Step: domain.Step{Name: "clean", Command: "rm -rf " + dist + " && mkdir " + dist},
			run: func(context.Context) error {
				if err := s.cleaner.Clean(dist); err != nil {
					return fmt.Errorf("failed to clean the %s folder: %w", dist, err)
				}
				return nil
			},
		},
		{Step: domain.Step{Name: "lint", Command: lint}, run: runCommand(s.runner, lint)},
		{Step: domain.Step{Name: "build", Command: build}, run: runCommand(s.runner, build)},
		{Step: domain.Step{Name: "test", Command: test}, run: runCommand(s.runner, test)},
	}
	if !opts.Lint {
		steps[1].Skip = skipDisabled
	}
	if !opts.Test {
		steps[3].Skip = skipDisabled
	}
	return steps
}

// Plan validates opts and lists the steps Run would take.
func (s *BuildService) Plan(opts domain.BuildOptions) ([]domain.Step, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return describe(s.steps(opts)), nil
}

// Run validates opts before touching anything, then runs the steps.
func (s *BuildService) Run(ctx context.Context, opts domain.BuildOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return runSteps(ctx, s.steps(opts), s.OnStep)
}
