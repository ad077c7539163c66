package htmlfmt

import (
	"strings"

	"golang.org/x/net/html"
)

type kind int

const (
	textToken kind = iota
	startToken
	endToken
	selfClosingToken
	commentToken
	doctypeToken
)

type token struct {
	kind kind
	raw  string
	// name is the lower-cased tag name used for matching.
	name string
}

// tokenize splits src into tokens, keeping the raw bytes of each so tag
// and attribute case survives (Angular bindings are case-sensitive).
func tokenize(src string) []token {
	z := html.NewTokenizer(strings.NewReader(src))
	var toks []token
	consumed := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// A tag cut off by EOF is dropped by the tokenizer; keep it as text.
			if consumed < len(src) {
				toks = append(toks, token{kind: textToken, raw: src[consumed:]})
			}
			return toks
		}
		raw := string(z.Raw())
		consumed += len(raw)
		t := token{raw: raw}
		switch tt {
		case html.TextToken:
			t.kind = textToken
		case html.StartTagToken:
			t.kind = startToken
		case html.EndTagToken:
			t.kind = endToken
		case html.SelfClosingTagToken:
			t.kind = selfClosingToken
		case html.CommentToken:
			t.kind = commentToken
		case html.DoctypeToken:
			t.kind = doctypeToken
		}
		if t.kind == startToken || t.kind == endToken || t.kind == selfClosingToken {
			name, _ := z.TagName()
			t.name = string(name)
		}
		toks = append(toks, t)
	}
}

// tag is a start tag split into its parts. Attributes are kept as written,
// minus the whitespace around '='.
type tag struct {
	name        string
	attrs       []string
	selfClosing bool
}

func parseTag(raw string) tag {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, "<"), ">")
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '/' {
		i++
	}
	t := tag{name: s[:i]}

	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		if s[i] == '/' {
			if strings.TrimSpace(s[i+1:]) == "" {
				t.selfClosing = true
				break
			}
			i++
			continue
		}

		start := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' {
			i++
		}
		attr := s[start:i]

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '=' {
			j++
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			value, next := readValue(s, j)
			attr += "=" + value
			i = next
		}
		t.attrs = append(t.attrs, attr)
	}
	return t
}

func readValue(s string, i int) (string, int) {
	if i >= len(s) {
		return "", i
	}
	if q := s[i]; q == '"' || q == '\'' {
		end := strings.IndexByte(s[i+1:], q)
		if end < 0 {
			return s[i:], len(s)
		}
		return s[i : i+end+2], i + end + 2
	}
	start := i
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return s[start:i], i
}

// endTagName returns the name of an end tag as written.
func endTagName(raw string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, "</"), ">")
	return strings.TrimSpace(s)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
