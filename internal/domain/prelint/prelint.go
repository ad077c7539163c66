// Package prelint holds the content checks run before any linter.
package prelint

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/openkraft/ngkit/internal/domain"
)

const (
	MsgEmpty             = "File is empty."
	MsgLeadingWhitespace = "File has leading whitespace."
)

// Check runs both checks on one file. placeholder is the base name that
// may legitimately be empty (.gitkeep).
func Check(path, contents, placeholder string) []domain.Failure {
	var failures []domain.Failure
	failures = append(failures, CheckEmpty(path, contents, placeholder)...)
	failures = append(failures, CheckLeadingWhitespace(path, contents)...)
	return failures
}

// CheckEmpty flags whitespace-only files.
func CheckEmpty(path, contents, placeholder string) []domain.Failure {
	if strings.TrimFunc(contents, isSpace) != "" || filepath.Base(path) == placeholder {
		return nil
	}
	return []domain.Failure{{Path: path, Message: MsgEmpty}}
}

// CheckLeadingWhitespace flags files starting with whitespace.
func CheckLeadingWhitespace(path, contents string) []domain.Failure {
	if len(strings.TrimLeftFunc(contents, isSpace)) == len(contents) {
		return nil
	}
	return []domain.Failure{{Path: path, Message: MsgLeadingWhitespace}}
}

// isSpace also treats a byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
