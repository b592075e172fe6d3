// Package chroma2tcell renders chroma tokens as tview color tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Highlight colorizes text for a tview TextView with dynamic colors,
// picking a lexer by file name. The second return is false when no lexer
// matches or tokenising fails; callers should then render the text plain
// with dynamic colors disabled.
func Highlight(fileName, text string) (string, bool) {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		return text, false
	}
	colorized, err := Colorize(text, DefaultStyle, lexer)
	if err != nil {
		return text, false
	}
	return colorized, true
}

// Colorize tokenises text with the given lexer and wraps tokens in
// tview [color] tags using the named chroma style.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() || !entry.Colour.IsSet() {
			sb.WriteString(token.Value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}
	return sb.String(), nil
}
