package domain

import (
	"sort"
	"strconv"
	"strings"
)

// FlagValue is the value of one parsed command-line flag. A bare --name
// yields a boolean true; --name=value yields the literal string.
type FlagValue struct {
	text   string
	isText bool
	on     bool
}

// BoolFlag returns a boolean flag value.
func BoolFlag(v bool) FlagValue { return FlagValue{on: v} }

// StringFlag returns a string flag value.
func StringFlag(s string) FlagValue { return FlagValue{text: s, isText: true} }

// IsString reports whether the value came from a --name=value token.
func (v FlagValue) IsString() bool { return v.isText }

// Bool interprets the value as a switch. Strings go through strconv.ParseBool
// and fall back to "non-empty means on".
func (v FlagValue) Bool() bool {
	if !v.isText {
		return v.on
	}
	if b, err := strconv.ParseBool(v.text); err == nil {
		return b
	}
	return v.text != ""
}

func (v FlagValue) String() string {
	if v.isText {
		return v.text
	}
	return strconv.FormatBool(v.on)
}

// Flags maps flag names to values. Lookups of unknown names are false/"".
type Flags map[string]FlagValue

// Bool returns the switch value for key, false when absent.
func (f Flags) Bool(key string) bool {
	v, ok := f[key]
	return ok && v.Bool()
}

// String returns the string form of key, "" when absent.
func (f Flags) String(key string) string {
	v, ok := f[key]
	if !ok {
		return ""
	}
	return v.String()
}

// Has reports whether key was set.
func (f Flags) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Keys returns the flag names in sorted order.
func (f Flags) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultsFunc computes default flag values. It receives the explicitly
// parsed flags so one default may depend on another flag.
type DefaultsFunc func(parsed Flags) Flags

// ParseFlags turns raw tokens into Flags. Tokens that are not of the form
// --name or --name=value are ignored; unknown names are kept as-is.
// Defaults are computed first and explicit flags override them.
func ParseFlags(tokens []string, defaults DefaultsFunc) Flags {
	parsed := parseTokens(tokens)

	result := Flags{}
	if defaults != nil {
		for k, v := range defaults(parsed) {
			result[k] = v
		}
	}
	for k, v := range parsed {
		result[k] = v
	}
	return result
}

func parseTokens(tokens []string) Flags {
	flags := Flags{}
	for _, tok := range tokens {
		if !IsFlagToken(tok) {
			continue
		}
		body := strings.TrimPrefix(tok, "--")
		if key, value, found := strings.Cut(body, "="); found {
			flags[key] = StringFlag(value)
		} else {
			flags[body] = BoolFlag(true)
		}
	}
	return flags
}

// IsFlagToken reports whether tok names a flag.
func IsFlagToken(tok string) bool {
	return strings.HasPrefix(tok, "--") && len(tok) > 2 && tok[2] != '='
}

// Positional returns the tokens that are not flags, in order.
func Positional(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "--") {
			continue
		}
		out = append(out, tok)
	}
	return out
}
