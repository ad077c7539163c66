// Package tui renders ngkit's console output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/ngkit/internal/domain"
)

// ── palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	dim       = lipgloss.Color("#6B7280") // muted gray
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(dim)
	passStyle = lipgloss.NewStyle().Foreground(success)
	failStyle = lipgloss.NewStyle().Foreground(danger)
	warnStyle = lipgloss.NewStyle().Foreground(warning)
	skipStyle = lipgloss.NewStyle().Foreground(skipColor)
	fileStyle = lipgloss.NewStyle().Foreground(dim)
	errorTag  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	headStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

var progressVerbs = map[string]string{
	"clean": "cleaning",
	"lint":  "linting",
	"build": "building",
	"test":  "testing",
}

// RenderStep renders the progress line printed before a step runs, or the
// note for a skipped one.
func RenderStep(st domain.Step) string {
	if st.Skip != "" {
		return skipStyle.Render(fmt.Sprintf("%s skipped (%s)", st.Name, st.Skip))
	}
	verb, ok := progressVerbs[st.Name]
	if !ok {
		verb = st.Name
	}
	return dimStyle.Render(verb + "...")
}

// RenderChanged renders the changed-file list of a lint run.
func RenderChanged(files []string) string {
	if len(files) == 0 {
		return warnStyle.Render("no changed files")
	}
	var b strings.Builder
	b.WriteString(warnStyle.Render(fmt.Sprintf("%d changed file(s):", len(files))))
	for _, f := range files {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("  " + f))
	}
	return b.String()
}

// RenderFailures renders one "<path>: <message>" line per failure.
func RenderFailures(failures []domain.Failure) string {
	lines := make([]string, len(failures))
	for i, f := range failures {
		lines[i] = fileStyle.Render(f.Path+":") + " " + failStyle.Render(f.Message)
	}
	return strings.Join(lines, "\n")
}

// RenderError renders a fatal error. Failure lists are rendered line by
// line; command errors only name the command since the tool already
// printed its own output.
func RenderError(err error) string {
	switch e := err.(type) {
	case *domain.FailuresError:
		return RenderFailures(e.Failures)
	case *domain.UsageError:
		return errorTag.Render("error:") + " " + e.Message
	}
	return errorTag.Render("error:") + " " + failStyle.Render(err.Error())
}
