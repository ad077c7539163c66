package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/ngkit/internal/domain"
)

func TestGuard(t *testing.T) {
	assert.NoError(t, domain.Guard(false, "never"))

	err := domain.Guard(true, "bad combination")
	var usage *domain.UsageError
	require.ErrorAs(t, err, &usage)
	assert.Equal(t, "bad combination", usage.Message)
}

func TestFirstError(t *testing.T) {
	first := errors.New("first")
	assert.NoError(t, domain.FirstError())
	assert.NoError(t, domain.FirstError(nil, nil))
	assert.Equal(t, first, domain.FirstError(nil, first, errors.New("second")))
}

func TestExitCode(t *testing.T) {
	cmdErr := &domain.CommandError{Command: "tslint", Code: 2}

	assert.Equal(t, 0, domain.ExitCode(nil))
	assert.Equal(t, 1, domain.ExitCode(domain.Guard(true, "x")))
	assert.Equal(t, 2, domain.ExitCode(cmdErr))
	assert.Equal(t, 2, domain.ExitCode(fmt.Errorf("lint: %w", cmdErr)))
	assert.Equal(t, 1, domain.ExitCode(&domain.FailuresError{}))
	assert.Equal(t, 1, domain.ExitCode(errors.New("boom")))
}

func TestCommandError(t *testing.T) {
	err := &domain.CommandError{Command: "ng e2e", Code: 3}
	assert.Equal(t, `command "ng e2e" exited with code 3`, err.Error())
}

func TestReportFailures(t *testing.T) {
	assert.NoError(t, domain.ReportFailures(nil))

	err := domain.ReportFailures([]domain.Failure{
		{Path: "a.ts", Message: "File is empty."},
		{Path: "b.ts", Message: "File has leading whitespace."},
	})
	var failures *domain.FailuresError
	require.ErrorAs(t, err, &failures)
	assert.Len(t, failures.Failures, 2)
	assert.Equal(t, "a.ts: File is empty.\nb.ts: File has leading whitespace.", err.Error())
}
