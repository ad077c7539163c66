package tui

import (
	"strings"

	"github.com/fatih/camelcase"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openkraft/ngkit/internal/domain"
)

// RenderPlan renders the steps a dry run would take.
func RenderPlan(title string, steps []domain.Step) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Step", "Command", "Status"})
	for i, st := range steps {
		status := passStyle.Render("run")
		if st.Skip != "" {
			status = skipStyle.Render("skip: " + st.Skip)
		}
		t.AppendRow(table.Row{i + 1, st.Name, st.Command, status})
	}
	t.SetStyle(table.StyleRounded)
	return headStyle.Render(title) + "\n" + t.Render()
}

// RenderOptions renders resolved flags with readable labels, so
// "lastCommit" shows as "last commit".
func RenderOptions(flags domain.Flags) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Option", "Value"})
	for _, key := range flags.Keys() {
		t.AppendRow(table.Row{OptionLabel(key), flags.String(key)})
	}
	t.SetStyle(table.StyleLight)
	return t.Render()
}

// OptionLabel splits a camelCase flag name into lower-case words.
func OptionLabel(key string) string {
	return strings.ToLower(strings.Join(camelcase.Split(key), " "))
}
