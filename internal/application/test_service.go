package application

import (
	"context"

	"github.com/openkraft/ngkit/internal/domain"
)

// TestService runs unit tests and then, unless watching, end-to-end tests.
type TestService struct {
	runner domain.CommandRunner
	ng     string
	OnStep func(domain.Step)
}

func NewTestService(runner domain.CommandRunner, cfg domain.ProjectConfig) *TestService {
	return &TestService{runner: runner, ng: cfg.Tools.NG}
}

// UnitTestCommand assembles the unit test invocation.
func UnitTestCommand(ng string, opts domain.TestOptions) string {
	watch := "--no-watch"
	if opts.Watch {
		watch = "--watch"
	}
	coverage := "--no-code-coverage"
	if opts.Coverage {
		coverage = "--code-coverage"
	}
	sourcemaps := "--no-source-map"
	if opts.Sourcemaps {
		sourcemaps = "--source-map"
	}
	return domain.CommandLine(ng, "test", watch, coverage, sourcemaps)
}

func (s *TestService) steps(opts domain.TestOptions) []plannedStep {
	e2e := domain.CommandLine(s.ng, "e2e")
	steps := []plannedStep{
		{Step: domain.Step{Name: "unit tests", Command: UnitTestCommand(s.ng, opts)}},
		{Step: domain.Step{Name: "e2e tests", Command: e2e}},
	}
	if !opts.E2E {
		steps[1].Skip = skipDisabled
	}
	for i := range steps {
		steps[i].run = runCommand(s.runner, steps[i].Command)
	}
	return steps
}

// Plan validates opts and lists the steps Run would take.
func (s *TestService) Plan(opts domain.TestOptions) ([]domain.Step, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return describe(s.steps(opts)), nil
}

func (s *TestService) Run(ctx context.Context, opts domain.TestOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return runSteps(ctx, s.steps(opts), s.OnStep)
}
