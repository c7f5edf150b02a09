// Package css checks structure of generated stylesheets before they leave
// the program.
package css

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"scssx/common"
)

// Stats describes block structure of a stylesheet.
type Stats struct {
	Blocks   int
	TopLevel int
	MaxDepth int
}

// Inspect verifies that text is a well formed block skeleton in requested
// dialect and counts its blocks. Braced text must have balanced braces,
// indented text must nest by one indentation unit at a time.
func Inspect(text string, syntax common.Syntax) (Stats, error) {
	if syntax.Braced() {
		return inspectBraced(text)
	}
	return inspectIndented(text)
}

func inspectBraced(text string) (Stats, error) {
	var (
		st     Stats
		depth  int
		offset int
	)
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return st, err
			}
			if depth > 0 {
				return st, parse.NewError(strings.NewReader(text), offset, "%d unclosed block(s)", depth)
			}
			return st, nil
		case css.LeftBraceToken:
			if depth == 0 {
				st.TopLevel++
			}
			st.Blocks++
			depth++
			st.MaxDepth = max(st.MaxDepth, depth)
		case css.RightBraceToken:
			if depth == 0 {
				return st, parse.NewError(strings.NewReader(text), offset, "unexpected closing brace")
			}
			depth--
		}
		offset += len(data)
	}
}

func inspectIndented(text string) (Stats, error) {
	var (
		st     Stats
		prev   = -1
		offset int
	)
	for line := range strings.Lines(text) {
		at := offset
		offset += len(line)

		trimmed := strings.TrimLeft(line, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		pad := len(line) - len(trimmed)
		if pad%len(unit) != 0 || strings.HasPrefix(trimmed, "\t") {
			return st, parse.NewError(strings.NewReader(text), at, "bad indentation")
		}
		depth := pad / len(unit)
		if depth > prev+1 {
			return st, parse.NewError(strings.NewReader(text), at, "block is nested too deep")
		}
		if depth == 0 {
			st.TopLevel++
		}
		st.Blocks++
		st.MaxDepth = max(st.MaxDepth, depth+1)
		prev = depth
	}
	return st, nil
}

const unit = "  "
