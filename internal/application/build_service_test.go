package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

func newBuildService() (*application.BuildService, *fakeRunner, *memStore) {
	runner := newFakeRunner()
	store := newMemStore(nil)
	return application.NewBuildService(runner, store, domain.DefaultConfig(), "ngkit"), runner, store
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name string
		opts domain.BuildOptions
		want string
	}{
		{"default", domain.BuildOptions{}, "ng build --aot --no-stats-json"},
		{"prod", domain.BuildOptions{Prod: true}, "ng build --configuration production --aot --no-stats-json"},
		{"prod stats", domain.BuildOptions{Prod: true, Stats: true}, "ng build --configuration production --aot --stats-json"},
		{"watch", domain.BuildOptions{Watch: true}, "ng build --watch --no-stats-json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.BuildCommand("ng", tt.opts))
		})
	}
}

func TestBuildService_Defaults(t *testing.T) {
	svc, runner, store := newBuildService()
	opts, _ := domain.ResolveBuildOptions(nil)

	require.NoError(t, svc.Run(context.Background(), opts))

	assert.Equal(t, []string{"dist"}, store.cleaned)
	assert.Equal(t, []string{"ngkit lint", "ng build --aot --no-stats-json"}, runner.commands)
	for _, o := range runner.opts {
		assert.True(t, o.FailFast)
		assert.False(t, o.Capture)
	}
}

func TestBuildService_WatchSkipsLint(t *testing.T) {
	svc, runner, _ := newBuildService()
	opts, _ := domain.ResolveBuildOptions([]string{"--watch"})

	require.NoError(t, svc.Run(context.Background(), opts))
	assert.Equal(t, []string{"ng build --watch --no-stats-json"}, runner.commands)
}

func TestBuildService_ProdWithTests(t *testing.T) {
	svc, runner, _ := newBuildService()
	opts, _ := domain.ResolveBuildOptions([]string{"--prod", "--stats", "--test", "--lint=false"})

	require.NoError(t, svc.Run(context.Background(), opts))
	assert.Equal(t, []string{
		"ng build --configuration production --aot --stats-json",
		"ngkit test",
	}, runner.commands)
}

func TestBuildService_InvalidFlagsRunNothing(t *testing.T) {
	for _, tokens := range [][]string{
		{"--watch", "--prod"},
		{"--watch", "--test"},
		{"--stats"},
	} {
		svc, runner, store := newBuildService()
		opts, _ := domain.ResolveBuildOptions(tokens)

		err := svc.Run(context.Background(), opts)
		var usage *domain.UsageError
		require.ErrorAs(t, err, &usage, "tokens %v", tokens)
		assert.Equal(t, 1, domain.ExitCode(err))
		assert.Empty(t, runner.commands)
		assert.Empty(t, store.cleaned)
	}
}

func TestBuildService_CleanFailure(t *testing.T) {
	svc, runner, store := newBuildService()
	store.cleanErr = errors.New("permission denied")

	err := svc.Run(context.Background(), domain.BuildOptions{Lint: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clean the dist folder")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Empty(t, runner.commands)
}

func TestBuildService_LintFailureStopsBuild(t *testing.T) {
	svc, runner, _ := newBuildService()
	runner.codes["ngkit lint"] = []int{4}

	err := svc.Run(context.Background(), domain.BuildOptions{Lint: true})
	require.Error(t, err)
	assert.Equal(t, 4, domain.ExitCode(err))
	assert.Equal(t, []string{"ngkit lint"}, runner.commands)
}

func TestBuildService_Plan(t *testing.T) {
	svc, runner, store := newBuildService()

	steps, err := svc.Plan(domain.BuildOptions{Watch: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"clean", "lint", "build", "test"}, stepNames(steps))
	assert.Equal(t, "disabled", steps[1].Skip)
	assert.Empty(t, steps[2].Skip)
	assert.Equal(t, "disabled", steps[3].Skip)
	assert.Empty(t, runner.commands)
	assert.Empty(t, store.cleaned)
}

func TestBuildService_OnStep(t *testing.T) {
	svc, _, _ := newBuildService()
	var seen []string
	svc.OnStep = func(st domain.Step) { seen = append(seen, st.Name) }

	require.NoError(t, svc.Run(context.Background(), domain.BuildOptions{}))
	assert.Equal(t, []string{"clean", "lint", "build", "test"}, seen)
}
