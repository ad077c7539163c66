package application_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

const gitStatus = "git status --porcelain"

type lintFixture struct {
	svc    *application.LintService
	runner *fakeRunner
	git    *fakeGit
	store  *memStore
}

func newLintFixture(cfg domain.ProjectConfig, files map[string]string) *lintFixture {
	f := &lintFixture{runner: newFakeRunner(), git: &fakeGit{}, store: newMemStore(files)}
	f.svc = application.NewLintService(f.runner, f.git, f.store, cfg, "ngkit")
	return f
}

func (f *lintFixture) run(t *testing.T, tokens ...string) error {
	t.Helper()
	opts, _ := domain.ResolveLintOptions(tokens)
	plan, err := f.svc.Plan(context.Background(), opts)
	require.NoError(t, err)
	return f.svc.Execute(context.Background(), plan)
}

func TestLintService_AllFiles(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)

	require.NoError(t, f.run(t))

	assert.Equal(t, []string{
		"ngkit prelint",
		"ngkit format-html --list",
		`prettier --config ./prettier.json "./**/*.json" --list-different`,
		`prettier --config ./prettier.json "./**/*.yml" --list-different`,
		`prettier --config ./prettier.json "./src/**/*.scss" --list-different`,
		"prettier --config ./prettier.json ./**/*.ts --list-different",
		"prettier --config ./prettier.json ./**/*.js --list-different",
		"sass-lint -v -q --max-warnings 0",
		"tslint --project ./tsconfig.json",
	}, f.runner.commands)
	for _, o := range f.runner.opts {
		assert.True(t, o.FailFast)
	}
}

func TestLintService_CategoryFlags(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)

	require.NoError(t, f.run(t, "--prettier=false", "--prelint=false", "--sasslint=false"))
	assert.Equal(t, []string{"tslint --project ./tsconfig.json"}, f.runner.commands)
}

func TestLintService_HTMLLintGatesNothing(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)

	require.NoError(t, f.run(t, "--htmllint=false"))
	assert.Len(t, f.runner.commands, 9)
}

func TestLintService_ChangedFiles(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), map[string]string{
		"src/app/a.ts":        "",
		"src/app/a.html":      "",
		"src/index.html":      "",
		"src/styles/new.scss": "",
		"package.json":        "",
		"my file.ts":          "",
	})
	f.runner.stdout[gitStatus] = strings.Join([]string{
		" M src/app/a.ts",
		"?? src/app/a.html",
		" M src/index.html",
		"R  src/styles/old.scss -> src/styles/new.scss",
		" M package.json",
		" D deleted.js",
		"?? my file.ts",
	}, "\n") + "\n"

	require.NoError(t, f.run(t, "--changed"))

	assert.Equal(t, []string{
		gitStatus,
		`ngkit prelint src/app/a.ts src/app/a.html src/index.html src/styles/new.scss package.json "my file.ts"`,
		"ngkit format-html src/app/a.html --list",
		"prettier --config ./prettier.json package.json --list-different",
		"prettier --config ./prettier.json src/styles/new.scss --list-different",
		`prettier --config ./prettier.json src/app/a.ts "my file.ts" --list-different`,
		"sass-lint src/styles/new.scss -v -q --max-warnings 0",
		`tslint --project ./tsconfig.json src/app/a.ts "my file.ts"`,
	}, f.runner.commands)
	assert.True(t, f.runner.opts[0].Capture)
}

func TestLintService_NoChangedFilesSkipsEverything(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)
	f.runner.stdout[gitStatus] = " M removed.ts\n"

	opts, _ := domain.ResolveLintOptions([]string{"--changed"})
	plan, err := f.svc.Plan(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, plan.Changed)
	assert.Zero(t, plan.Runnable())

	require.NoError(t, f.svc.Execute(context.Background(), plan))
	assert.Equal(t, []string{gitStatus}, f.runner.commands)
}

func TestLintService_LastCommitImpliesChanged(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), map[string]string{
		"src/app/a.ts": "",
		"src/app/b.ts": "",
	})
	f.runner.stdout[gitStatus] = " M src/app/a.ts\n"
	f.git.files = []string{"src/app/a.ts", "src/app/b.ts", "gone.ts"}

	opts, _ := domain.ResolveLintOptions([]string{"--lastCommit", "--prelint=false", "--prettier=false", "--sasslint=false"})
	require.True(t, opts.Changed)
	plan, err := f.svc.Plan(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app/a.ts", "src/app/b.ts"}, []string(plan.Changed))

	require.NoError(t, f.svc.Execute(context.Background(), plan))
	assert.Equal(t, "tslint --project ./tsconfig.json src/app/a.ts src/app/b.ts", f.runner.commands[1])
}

func TestLintService_TooManyChangedFiles(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxChangedLength = 10
	f := newLintFixture(cfg, map[string]string{"src/app/long-name.ts": ""})
	f.runner.stdout[gitStatus] = " M src/app/long-name.ts\n"

	err := f.run(t, "--changed")
	require.ErrorIs(t, err, application.ErrTooManyChangedFiles)
	assert.Equal(t, "There are too many changed files. Please run the linter on all files instead.", err.Error())
	assert.Equal(t, 1, domain.ExitCode(err))
	assert.Equal(t, []string{gitStatus}, f.runner.commands)
}

func TestLintService_FailFast(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)
	f.runner.codes["ngkit format-html --list"] = []int{1}
	f.runner.codes["ngkit prelint"] = []int{0}

	err := f.run(t)
	assert.Equal(t, 1, domain.ExitCode(err))
	assert.Equal(t, []string{"ngkit prelint", "ngkit format-html --list"}, f.runner.commands)
}

func TestLintService_PropagatesToolExitCode(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)
	f.runner.codes["tslint --project ./tsconfig.json"] = []int{2}

	err := f.run(t)
	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 2, domain.ExitCode(err))
}

func TestLintService_FixLoopConverges(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)
	list := "prettier --config ./prettier.json ./**/*.ts --list-different"
	write := "prettier --config ./prettier.json ./**/*.ts --write"
	f.runner.codes[list] = []int{1, 1, 0}

	require.NoError(t, f.run(t, "--fix", "--prelint=false", "--sasslint=false", "--tslint=false"))

	assert.Equal(t, 3, f.runner.count(write))
	assert.Equal(t, 3, f.runner.count(list))
	assert.Contains(t, f.runner.commands, "ngkit format-html --fix")
	for i, c := range f.runner.commands {
		if c == list || c == write {
			assert.False(t, f.runner.opts[i].FailFast, c)
		}
	}
}

func TestLintService_FixLoopBounded(t *testing.T) {
	cfg := domain.DefaultConfig()
	passes := 2
	cfg.MaxFormatPasses = &passes
	f := newLintFixture(cfg, nil)
	list := "ngkit format-html --list"
	f.runner.codes[list] = []int{3}

	err := f.run(t, "--fix", "--prelint=false", "--sasslint=false", "--tslint=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not converge after 2 passes")
	assert.Equal(t, 3, domain.ExitCode(err))
	assert.Equal(t, 2, f.runner.count("ngkit format-html --fix"))
	assert.Equal(t, 2, f.runner.count(list))
}

func TestLintService_FixPassesFixToTSLint(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)

	require.NoError(t, f.run(t, "--fix", "--prelint=false", "--prettier=false", "--sasslint=false"))
	assert.Equal(t, []string{"tslint --project ./tsconfig.json --fix"}, f.runner.commands)
}

func TestLintService_PlanRunsNoLinter(t *testing.T) {
	f := newLintFixture(domain.DefaultConfig(), nil)

	plan, err := f.svc.Plan(context.Background(), domain.LintOptions{Prettier: true})
	require.NoError(t, err)
	assert.Empty(t, f.runner.commands)
	require.Len(t, plan.Steps, 9)
	assert.Equal(t, "prelint", plan.Steps[0].Name)
	assert.Equal(t, "disabled", plan.Steps[0].Skip)
	assert.Equal(t, "ngkit format-html --list", plan.Steps[1].Command)
	assert.Equal(t, "tslint", plan.Steps[8].Name)
	assert.Equal(t, 6, plan.Runnable())
}
