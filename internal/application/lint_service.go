package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openkraft/ngkit/internal/ctxlog"
	"github.com/openkraft/ngkit/internal/domain"
	"github.com/openkraft/ngkit/internal/domain/changes"
)

// ErrTooManyChangedFiles stops a changed-files run whose file list would
// overflow the tools' argument length.
var ErrTooManyChangedFiles = errors.New("There are too many changed files. Please run the linter on all files instead.")

const statusCommand = "git status --porcelain"

// LintStep is one category of the aggregator. Formatter steps carry a
// write and a list argument; plain steps run Base as-is.
type LintStep struct {
	domain.Step
	Base     string `json:"-"`
	WriteArg string `json:"-"`
	ListArg  string `json:"-"`
}

func (s LintStep) formatter() bool { return s.ListArg != "" }

// LintPlan is everything a lint run decided before executing.
type LintPlan struct {
	Options domain.LintOptions `json:"-"`
	// Changed is nil unless the run is restricted to changed files.
	Changed changes.Set `json:"changed,omitempty"`
	Steps   []LintStep  `json:"steps"`
}

// Runnable reports how many steps will execute.
func (p *LintPlan) Runnable() int {
	n := 0
	for _, st := range p.Steps {
		if st.Skip == "" {
			n++
		}
	}
	return n
}

// Describe returns the steps without their tool arguments.
func (p *LintPlan) Describe() []domain.Step {
	out := make([]domain.Step, len(p.Steps))
	for i, st := range p.Steps {
		out[i] = st.Step
	}
	return out
}

// LintService runs the lint categories in their fixed order, stopping at
// the first failure.
type LintService struct {
	runner domain.CommandRunner
	git    domain.GitInfo
	files  domain.FileStore
	cfg    domain.ProjectConfig
	self   string
	root   string
	OnStep func(domain.Step)
}

// NewLintService creates a LintService working in the current directory.
// self is the command line that re-invokes this binary.
func NewLintService(
	runner domain.CommandRunner,
	git domain.GitInfo,
	files domain.FileStore,
	cfg domain.ProjectConfig,
	self string,
) *LintService {
	return &LintService{runner: runner, git: git, files: files, cfg: cfg, self: self, root: "."}
}

// Plan discovers the changed files (in changed mode) and decides which
// categories run with which file arguments. It runs no linter.
func (s *LintService) Plan(ctx context.Context, opts domain.LintOptions) (*LintPlan, error) {
	plan := &LintPlan{Options: opts}

	if opts.Changed {
		set, err := s.changedFiles(ctx, opts.LastCommit)
		if err != nil {
			return nil, err
		}
		plan.Changed = set
	}

	plan.Steps = s.steps(opts, plan.Changed)
	return plan, nil
}

// CheckSize rejects a changed-file list too long to pass on a command line.
func (s *LintService) CheckSize(plan *LintPlan) error {
	if plan.Options.Changed && s.cfg.MaxChangedLength > 0 && plan.Changed.JoinedLength() > s.cfg.MaxChangedLength {
		return ErrTooManyChangedFiles
	}
	return nil
}

// Execute runs the plan. Every step is fail-fast.
func (s *LintService) Execute(ctx context.Context, plan *LintPlan) error {
	if err := s.CheckSize(plan); err != nil {
		return err
	}

	steps := make([]plannedStep, len(plan.Steps))
	for i, st := range plan.Steps {
		st := st
		steps[i] = plannedStep{Step: st.Step, run: func(ctx context.Context) error {
			if st.formatter() {
				return s.runFormatter(ctx, st.Base, st.WriteArg, st.ListArg, plan.Options.Fix)
			}
			return runCommand(s.runner, st.Base)(ctx)
		}}
	}
	return runSteps(ctx, steps, s.OnStep)
}

func (s *LintService) changedFiles(ctx context.Context, lastCommit bool) (changes.Set, error) {
	log := ctxlog.FromContext(ctx)

	status, err := s.runner.Run(ctx, statusCommand, domain.Captured())
	if err != nil {
		return nil, fmt.Errorf("reading git status: %w", err)
	}
	log.Debug("git status", "output", strings.TrimRight(status.Stdout, "\r\n"))

	set := changes.Set(changes.ParseStatus(status.Stdout))

	if lastCommit {
		committed, err := s.git.LastCommitFiles(s.root)
		if err != nil {
			return nil, fmt.Errorf("reading last commit: %w", err)
		}
		log.Debug("last commit", "files", committed)
		set = set.Union(committed)
	}

	return set.Existing(s.files.Exists), nil
}

// category describes one lint step before file arguments are known.
type category struct {
	name     string
	enabled  bool
	files    func(changes.Set) changes.Set
	scope    string // file argument when not in changed mode
	build    func(files string) string
	writeArg string
	listArg  string
}

func (s *LintService) categories(opts domain.LintOptions) []category {
	tools := s.cfg.Tools
	prettier := func(files string) string {
		return domain.CommandLine(tools.Prettier, "--config", tools.PrettierConfig, files)
	}
	all := func(set changes.Set) changes.Set { return set }
	ext := func(suffix string) func(changes.Set) changes.Set {
		return func(set changes.Set) changes.Set { return set.WithSuffix(suffix) }
	}
	tslintFix := ""
	if opts.Fix {
		tslintFix = "--fix"
	}

	return []category{
		{
			name: "prelint", enabled: opts.Prelint, files: all,
			build: func(files string) string { return domain.CommandLine(s.self, "prelint", files) },
		},
		{
			name: "format html", enabled: opts.Prettier, files: changes.Set.HTMLFiles,
			build:    func(files string) string { return domain.CommandLine(s.self, "format-html", files) },
			writeArg: "--fix", listArg: "--list",
		},
		{name: "format json", enabled: opts.Prettier, files: ext(".json"), scope: `"./**/*.json"`, build: prettier, writeArg: "--write", listArg: "--list-different"},
		{name: "format yml", enabled: opts.Prettier, files: ext(".yml"), scope: `"./**/*.yml"`, build: prettier, writeArg: "--write", listArg: "--list-different"},
		{name: "format scss", enabled: opts.Prettier, files: ext(".scss"), scope: `"./src/**/*.scss"`, build: prettier, writeArg: "--write", listArg: "--list-different"},
		{name: "format ts", enabled: opts.Prettier, files: ext(".ts"), scope: "./**/*.ts", build: prettier, writeArg: "--write", listArg: "--list-different"},
		{name: "format js", enabled: opts.Prettier, files: ext(".js"), scope: "./**/*.js", build: prettier, writeArg: "--write", listArg: "--list-different"},
		{
			name: "sass-lint", enabled: opts.SassLint, files: ext(".scss"),
			build: func(files string) string {
				return domain.CommandLine(tools.SassLint, files, "-v -q --max-warnings 0")
			},
		},
		{
			name: "tslint", enabled: opts.TSLint, files: ext(".ts"),
			build: func(files string) string {
				return domain.CommandLine(tools.TSLint, "--project", tools.TSConfig, tslintFix, files)
			},
		},
	}
}

func (s *LintService) steps(opts domain.LintOptions, changed changes.Set) []LintStep {
	var steps []LintStep
	for _, c := range s.categories(opts) {
		filesArg := c.scope
		var selected changes.Set
		if opts.Changed {
			selected = c.files(changed)
			filesArg = domain.JoinFiles(selected)
		}

		st := LintStep{
			Base:     c.build(filesArg),
			WriteArg: c.writeArg,
			ListArg:  c.listArg,
		}
		st.Name = c.name
		st.Command = st.Base
		if st.formatter() {
			arg := c.listArg
			if opts.Fix {
				arg = c.writeArg
			}
			st.Command = domain.CommandLine(st.Base, arg)
		}

		switch {
		case !c.enabled:
			st.Skip = skipDisabled
		case opts.Changed && len(selected) == 0:
			st.Skip = skipNoChanges
		}
		steps = append(steps, st)
	}
	return steps
}

// runFormatter runs a formatter once in list mode, or in fix mode
// alternates write and list passes until the list pass is clean. The fix
// loop is bounded by max_format_passes (0 = unbounded).
func (s *LintService) runFormatter(ctx context.Context, base, writeArg, listArg string, fix bool) error {
	list := domain.CommandLine(base, listArg)
	if !fix {
		_, err := s.runner.Run(ctx, list, domain.Inherit())
		return err
	}

	write := domain.CommandLine(base, writeArg)
	limit := s.cfg.FormatPasses()
	for pass := 1; ; pass++ {
		if _, err := s.runner.Run(ctx, write, domain.BestEffort()); err != nil {
			return err
		}
		res, err := s.runner.Run(ctx, list, domain.BestEffort())
		if err != nil {
			return err
		}
		if res.Code == 0 {
			return nil
		}
		ctxlog.FromContext(ctx).Debug("formatter not converged", "command", base, "pass", pass, "code", res.Code)
		if limit > 0 && pass >= limit {
			return fmt.Errorf("formatter did not converge after %d passes: %w",
				pass, &domain.CommandError{Command: list, Code: res.Code})
		}
	}
}
