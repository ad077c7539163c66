package domain

import "strings"

// CommandLine joins program and arguments with single spaces, dropping
// empty parts.
func CommandLine(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// CollapseSpaces replaces every whitespace run with one space and trims.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// QuoteArg wraps arg in double quotes when it contains whitespace.
func QuoteArg(arg string) string {
	if arg == "" || !strings.ContainsAny(arg, " \t") {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// JoinFiles joins file paths into one argument string.
func JoinFiles(files []string) string {
	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = QuoteArg(f)
	}
	return strings.Join(quoted, " ")
}

// Step is one named stage of a pipeline. Skipped steps carry the reason.
type Step struct {
	Name    string `json:"name"`
	Command string `json:"command,omitempty"`
	Skip    string `json:"skip,omitempty"`
}
