package domain

// Flags shared by every script.
const (
	FlagDryRun  = "dryRun"
	FlagVerbose = "verbose"
	FlagHelp    = "help"
)

// BuildOptions configures one build run.
type BuildOptions struct {
	Lint    bool
	Stats   bool
	Watch   bool
	Test    bool
	Prod    bool
	DryRun  bool
	Verbose bool
}

func buildDefaults(parsed Flags) Flags {
	return Flags{
		"lint":  BoolFlag(!parsed.Bool("watch")),
		"stats": BoolFlag(false),
		"watch": BoolFlag(false),
		"test":  BoolFlag(false),
		"prod":  BoolFlag(false),
	}
}

// ResolveBuildOptions parses build flags.
func ResolveBuildOptions(tokens []string) (BuildOptions, Flags) {
	f := ParseFlags(tokens, buildDefaults)
	return BuildOptions{
		Lint:    f.Bool("lint"),
		Stats:   f.Bool("stats"),
		Watch:   f.Bool("watch"),
		Test:    f.Bool("test"),
		Prod:    f.Bool("prod"),
		DryRun:  f.Bool(FlagDryRun),
		Verbose: f.Bool(FlagVerbose),
	}, f
}

// Validate rejects contradictory build flags.
func (o BuildOptions) Validate() error {
	return FirstError(
		Guard(!o.Prod && o.Stats, "--stats is only useful for --prod builds."),
		Guard(o.Watch && o.Prod, "--watch and --prod are mutually exclusive."),
		Guard(o.Watch && o.Test, "--watch and --test are mutually exclusive."),
	)
}

// LintOptions configures one lint run. HTMLLint is accepted for
// compatibility but does not gate any step.
type LintOptions struct {
	Prelint    bool
	Prettier   bool
	SassLint   bool
	HTMLLint   bool
	TSLint     bool
	Fix        bool
	Changed    bool
	LastCommit bool
	DryRun     bool
	Verbose    bool
}

func lintDefaults(parsed Flags) Flags {
	return Flags{
		"prelint":    BoolFlag(true),
		"prettier":   BoolFlag(true),
		"sasslint":   BoolFlag(true),
		"htmllint":   BoolFlag(true),
		"tslint":     BoolFlag(true),
		"fix":        BoolFlag(false),
		"changed":    BoolFlag(parsed.Bool("lastCommit")),
		"lastCommit": BoolFlag(false),
	}
}

// ResolveLintOptions parses lint flags.
func ResolveLintOptions(tokens []string) (LintOptions, Flags) {
	f := ParseFlags(tokens, lintDefaults)
	return LintOptions{
		Prelint:    f.Bool("prelint"),
		Prettier:   f.Bool("prettier"),
		SassLint:   f.Bool("sasslint"),
		HTMLLint:   f.Bool("htmllint"),
		TSLint:     f.Bool("tslint"),
		Fix:        f.Bool("fix"),
		Changed:    f.Bool("changed"),
		LastCommit: f.Bool("lastCommit"),
		DryRun:     f.Bool(FlagDryRun),
		Verbose:    f.Bool(FlagVerbose),
	}, f
}

// FormatHTMLOptions configures the HTML formatter pass.
type FormatHTMLOptions struct {
	Fix     bool
	List    bool
	Files   []string
	Verbose bool
}

func formatHTMLDefaults(Flags) Flags {
	return Flags{
		"fix":  BoolFlag(false),
		"list": BoolFlag(false),
	}
}

// ResolveFormatHTMLOptions parses format-html flags and positional files.
func ResolveFormatHTMLOptions(tokens []string) (FormatHTMLOptions, Flags) {
	f := ParseFlags(tokens, formatHTMLDefaults)
	return FormatHTMLOptions{
		Fix:     f.Bool("fix"),
		List:    f.Bool("list"),
		Files:   Positional(tokens),
		Verbose: f.Bool(FlagVerbose),
	}, f
}

// Validate requires exactly one of fix and list.
func (o FormatHTMLOptions) Validate() error {
	return Guard(o.Fix == o.List, "exactly one of --fix or --list must be given.")
}

// PrelintOptions configures the pre-lint scanner.
type PrelintOptions struct {
	Files   []string
	Verbose bool
}

// ResolvePrelintOptions parses prelint positional files.
func ResolvePrelintOptions(tokens []string) (PrelintOptions, Flags) {
	f := ParseFlags(tokens, nil)
	return PrelintOptions{
		Files:   Positional(tokens),
		Verbose: f.Bool(FlagVerbose),
	}, f
}

// TestOptions configures unit and end-to-end test runs.
type TestOptions struct {
	Coverage   bool
	Sourcemaps bool
	Watch      bool
	E2E        bool
	DryRun     bool
	Verbose    bool
}

func testDefaults(parsed Flags) Flags {
	return Flags{
		"coverage":   BoolFlag(false),
		"sourcemaps": BoolFlag(parsed.Bool("coverage")),
		"watch":      BoolFlag(false),
		"e2e":        BoolFlag(!parsed.Bool("watch")),
	}
}

// ResolveTestOptions parses test flags.
func ResolveTestOptions(tokens []string) (TestOptions, Flags) {
	f := ParseFlags(tokens, testDefaults)
	return TestOptions{
		Coverage:   f.Bool("coverage"),
		Sourcemaps: f.Bool("sourcemaps"),
		Watch:      f.Bool("watch"),
		E2E:        f.Bool("e2e"),
		DryRun:     f.Bool(FlagDryRun),
		Verbose:    f.Bool(FlagVerbose),
	}, f
}

// Validate rejects watch combined with e2e.
func (o TestOptions) Validate() error {
	return Guard(o.Watch && o.E2E, "--watch and --e2e are mutually exclusive")
}
