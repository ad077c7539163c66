package htmlfmt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Format pretty-prints src and then normalizes void element slashes. This
// is the full format-html transformation.
func Format(src string, style Style) string {
	return FixSelfClosingSlashes(Pretty(src, style))
}

// Pretty re-indents an HTML document one tag or text line per output line.
func Pretty(src string, style Style) string {
	p := &printer{
		style:       style,
		void:        toSet(SelfClosingElements),
		unformatted: toSet(style.Unformatted),
		verbatim:    toSet(style.ContentUnformatted, rawTextElements),
	}
	p.run(tokenize(strings.ReplaceAll(src, "\r\n", "\n")))
	return p.String()
}

var (
	selfClosingPatterns = compileSelfClosing()
	danglingSlash       = regexp.MustCompile(`\r?\n +/>`)
)

func compileSelfClosing() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(SelfClosingElements))
	for _, el := range SelfClosingElements {
		m[el] = regexp.MustCompile(`(?i)<` + el + `>`)
	}
	return m
}

// FixSelfClosingSlashes rewrites bare void tags such as <br> to <br /> and
// pulls a slash left alone on its own line back onto the previous one.
func FixSelfClosingSlashes(s string) string {
	for _, el := range SelfClosingElements {
		s = selfClosingPatterns[el].ReplaceAllLiteralString(s, "<"+el+" />")
	}
	return danglingSlash.ReplaceAllLiteralString(s, " />")
}

type printer struct {
	style       Style
	void        map[string]bool
	unformatted map[string]bool
	verbatim    map[string]bool

	lines        []string
	blankPending bool
	stack        []string
}

func (p *printer) String() string {
	if len(p.lines) == 0 {
		return ""
	}
	out := strings.Join(p.lines, "\n")
	if p.style.EndWithNewline {
		out += "\n"
	}
	if p.style.EOL != "" && p.style.EOL != "\n" {
		out = strings.ReplaceAll(out, "\n", p.style.EOL)
	}
	return out
}

func (p *printer) indent() string {
	return strings.Repeat(" ", len(p.stack)*p.style.IndentSize)
}

func (p *printer) emit(s string) {
	if p.blankPending && len(p.lines) > 0 && p.lines[len(p.lines)-1] != "" {
		p.lines = append(p.lines, "")
	}
	p.blankPending = false
	p.lines = append(p.lines, p.indent()+s)
}

// noteBlank records a preserved blank line when ws spans at least two
// newlines.
func (p *printer) noteBlank(ws string) {
	if p.style.MaxPreserveNewlines > 0 && strings.Count(ws, "\n") >= 2 {
		p.blankPending = true
	}
}

func (p *printer) run(toks []token) {
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.kind {
		case textToken:
			p.text(t.raw)
		case commentToken, doctypeToken:
			p.emit(strings.TrimSpace(t.raw))
		case selfClosingToken:
			p.emit(p.renderTag(parseTag(t.raw)))
		case startToken:
			i = p.start(toks, i)
		case endToken:
			p.end(t)
		}
	}
}

// start handles the start tag at toks[i] and returns the index of the last
// token it consumed.
func (p *printer) start(toks []token, i int) int {
	t := toks[i]
	switch {
	case p.unformatted[t.name]:
		p.emit(t.raw)
		return i
	case p.void[t.name]:
		p.emit(p.renderTag(parseTag(t.raw)))
		return i
	case p.verbatim[t.name]:
		return p.verbatimBlock(toks, i)
	}

	if line, last, ok := p.collapse(toks, i); ok {
		p.emit(line)
		return last
	}

	p.emit(p.renderTag(parseTag(t.raw)))
	p.stack = append(p.stack, t.name)
	return i
}

func (p *printer) end(t token) {
	if p.void[t.name] || p.unformatted[t.name] {
		p.emit("</" + endTagName(t.raw) + ">")
		return
	}
	for j := len(p.stack) - 1; j >= 0; j-- {
		if p.stack[j] == t.name {
			p.stack = p.stack[:j]
			break
		}
	}
	p.emit("</" + endTagName(t.raw) + ">")
}

// verbatimBlock copies an element's content through untouched.
func (p *printer) verbatimBlock(toks []token, i int) int {
	name := toks[i].name
	var content strings.Builder
	closing := ""
	depth := 0
	j := i + 1
	for ; j < len(toks); j++ {
		t := toks[j]
		if t.name == name && t.kind == startToken {
			depth++
		}
		if t.name == name && t.kind == endToken {
			if depth == 0 {
				closing = "</" + endTagName(t.raw) + ">"
				break
			}
			depth--
		}
		content.WriteString(t.raw)
	}
	p.emit(p.renderTag(parseTag(toks[i].raw)) + content.String() + closing)
	if j >= len(toks) {
		return len(toks) - 1
	}
	return j
}

// collapse renders <x>text</x> and <x></x> on one line when it fits.
func (p *printer) collapse(toks []token, i int) (string, int, bool) {
	start := toks[i]
	t := parseTag(start.raw)
	open := p.inlineTag(t)

	j := i + 1
	text := ""
	if j < len(toks) && toks[j].kind == textToken {
		text = trimSpace(toks[j].raw)
		if strings.Contains(text, "\n") {
			return "", 0, false
		}
		text = strings.Join(fields(text), " ")
		j++
	}
	if j >= len(toks) || toks[j].kind != endToken || toks[j].name != start.name {
		return "", 0, false
	}

	line := open + text + "</" + endTagName(toks[j].raw) + ">"
	if p.width(line) > p.style.WrapLineLength {
		return "", 0, false
	}
	return line, j, true
}

func (p *printer) width(s string) int {
	return len(p.indent()) + utf8.RuneCountInString(s)
}

func (p *printer) inlineTag(t tag) string {
	var b strings.Builder
	b.WriteString("<" + t.name)
	for _, a := range t.attrs {
		b.WriteString(" " + a)
	}
	if t.selfClosing {
		b.WriteString(" />")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

// renderTag returns the tag on one line, or with attributes filled onto
// continuation lines when it would exceed the wrap length.
func (p *printer) renderTag(t tag) string {
	inline := p.inlineTag(t)
	if p.width(inline) <= p.style.WrapLineLength || len(t.attrs) < 2 {
		return inline
	}

	cont := "\n" + p.indent() + strings.Repeat(" ", p.style.WrapAttributesIndent)
	var b strings.Builder
	cur := "<" + t.name + " " + t.attrs[0]
	b.WriteString(cur)
	lineLen := p.width(cur)
	for _, a := range t.attrs[1:] {
		if lineLen+1+utf8.RuneCountInString(a) > p.style.WrapLineLength {
			b.WriteString(cont + a)
			lineLen = len(cont) - 1 + utf8.RuneCountInString(a)
			continue
		}
		b.WriteString(" " + a)
		lineLen += 1 + utf8.RuneCountInString(a)
	}
	if t.selfClosing {
		b.WriteString(" />")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

// text reflows a text run: blank-line runs shrink to one, words fill lines
// up to the wrap length.
func (p *printer) text(raw string) {
	trimmed := trimSpace(raw)
	if trimmed == "" {
		p.noteBlank(raw)
		return
	}

	p.noteBlank(raw[:strings.Index(raw, trimmed)])

	blank := 0
	for _, line := range strings.Split(trimmed, "\n") {
		words := fields(line)
		if len(words) == 0 {
			blank++
			continue
		}
		if blank > 0 && p.style.MaxPreserveNewlines > 0 {
			p.blankPending = true
		}
		blank = 0
		p.words(words)
	}

	p.noteBlank(raw[strings.Index(raw, trimmed)+len(trimmed):])
}

func (p *printer) words(words []string) {
	cur := words[0]
	for _, w := range words[1:] {
		if p.width(cur+" "+w) > p.style.WrapLineLength {
			p.emit(cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	p.emit(cur)
}

// trimSpace and fields only treat ASCII whitespace as separators, so a
// literal non-breaking space in a template is content.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpaceRune)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, isSpaceRune)
}

func isSpaceRune(r rune) bool {
	return r < utf8.RuneSelf && isSpace(byte(r))
}
