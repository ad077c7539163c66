// Package changes turns version-control output into the changed-file set
// the lint aggregator works on.
package changes

import (
	"regexp"
	"strings"
)

const (
	renameIndicator = " -> "
	statusPrefixLen = 3
)

var lineSplit = regexp.MustCompile(`\r?\n`)

// SplitLines splits output into non-empty lines.
func SplitLines(s string) []string {
	var out []string
	for _, line := range lineSplit.Split(s, -1) {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseStatus extracts paths from `git status --porcelain` output. Renames
// yield the new path; other lines drop the two status columns and the
// separating space.
func ParseStatus(porcelain string) []string {
	var paths []string
	for _, line := range SplitLines(porcelain) {
		paths = append(paths, parseStatusLine(line))
	}
	return paths
}

func parseStatusLine(line string) string {
	if i := strings.Index(line, renameIndicator); i >= 0 {
		return line[i+len(renameIndicator):]
	}
	if len(line) <= statusPrefixLen {
		return ""
	}
	return line[statusPrefixLen:]
}

// Set is the ordered changed-file list of one lint run.
type Set []string

// Existing keeps the paths for which exists returns true.
func (s Set) Existing(exists func(string) bool) Set {
	var out Set
	for _, f := range s {
		if f != "" && exists(f) {
			out = append(out, f)
		}
	}
	return out
}

// Union appends the paths of other not already present, keeping order.
func (s Set) Union(other []string) Set {
	seen := make(map[string]bool, len(s)+len(other))
	out := make(Set, 0, len(s)+len(other))
	for _, f := range append(append([]string{}, s...), other...) {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// WithSuffix keeps paths ending with any of the suffixes.
func (s Set) WithSuffix(suffixes ...string) Set {
	return s.filter(func(f string) bool {
		for _, suf := range suffixes {
			if strings.HasSuffix(f, suf) {
				return true
			}
		}
		return false
	})
}

// Without drops paths ending with suffix.
func (s Set) Without(suffix string) Set {
	return s.filter(func(f string) bool { return !strings.HasSuffix(f, suffix) })
}

func (s Set) filter(keep func(string) bool) Set {
	out := Set{}
	for _, f := range s {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// JoinedLength is the length of the space-joined list, the size of the
// argument string every tool would receive.
func (s Set) JoinedLength() int {
	return len(strings.Join(s, " "))
}

// HTMLFiles are the changed templates, excluding the index page.
func (s Set) HTMLFiles() Set {
	return s.WithSuffix(".html").Without("index.html")
}
