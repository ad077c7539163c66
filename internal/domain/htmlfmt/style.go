// Package htmlfmt is the deterministic pretty printer behind format-html.
//
// Output depends only on the token stream, so formatting formatted output
// again yields the same bytes.
package htmlfmt

// Style is the fixed house style for Angular templates.
type Style struct {
	IndentSize           int
	EOL                  string
	EndWithNewline       bool
	MaxPreserveNewlines  int
	WrapLineLength       int
	WrapAttributesIndent int
	// Unformatted tags are copied through byte for byte on their own line.
	Unformatted []string
	// ContentUnformatted elements keep their inner content verbatim.
	ContentUnformatted []string
}

// DefaultStyle mirrors the beautifier settings the project always used.
func DefaultStyle() Style {
	return Style{
		IndentSize:           2,
		EOL:                  "\r\n",
		EndWithNewline:       true,
		MaxPreserveNewlines:  1,
		WrapLineLength:       120,
		WrapAttributesIndent: 2,
		Unformatted:          []string{"wbr"},
		ContentUnformatted:   []string{"pre", "code", "textarea"},
	}
}

// SelfClosingElements are the void elements rewritten to "<tag />".
var SelfClosingElements = []string{
	"area", "base", "br", "col", "command", "embed", "hr", "img", "input",
	"keygen", "link", "menuitem", "meta", "param", "source", "track", "wbr",
}

// rawTextElements are tokenized as a single text run; reflowing their
// content would change it.
var rawTextElements = []string{
	"script", "style", "iframe", "noscript", "noembed", "noframes", "xmp", "plaintext",
}

func toSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, l := range lists {
		for _, s := range l {
			set[s] = true
		}
	}
	return set
}
