package application

import (
	"context"

	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
)

// plannedStep is a domain.Step plus the work it stands for.
type plannedStep struct {
	domain.Step
	run func(ctx context.Context) error
}

// runSteps executes steps in order. Skipped steps are only reported;
// the first failing step aborts the run.
func runSteps(ctx context.Context, steps []plannedStep, onStep func(domain.Step)) error {
	log := ctxlog.FromContext(ctx)
	for _, st := range steps {
		if onStep != nil {
			onStep(st.Step)
		}
		if st.Skip != "" {
			log.Debug("skipping step", "step", st.Name, "reason", st.Skip)
			continue
		}
		log.Debug("running step", "step", st.Name)
		if err := st.run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func describe(steps []plannedStep) []domain.Step {
	out := make([]domain.Step, len(steps))
	for i, st := range steps {
		out[i] = st.Step
	}
	return out
}

// runCommand returns a step body that runs command fail-fast with
// inherited streams.
func runCommand(runner domain.CommandRunner, command string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := runner.Run(ctx, command, domain.Inherit())
		return err
	}
}

const (
	skipDisabled  = "disabled"
	skipNoChanges = "no changed files"
)
