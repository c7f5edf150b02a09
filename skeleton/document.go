package skeleton

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"scssx/common"
	"scssx/css"
	"scssx/jsx"
)

// Dialect of source document.
type Dialect int

const (
	DialectMarkup Dialect = iota + 1
	DialectComponent
)

func (d Dialect) String() string {
	switch d {
	case DialectMarkup:
		return "markup"
	case DialectComponent:
		return "component"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Language ids understood by DialectOf.
const (
	LangHTML            = "html"
	LangJavaScript      = "javascript"
	LangJavaScriptReact = "javascriptreact"
	LangTypeScript      = "typescript"
	LangTypeScriptReact = "typescriptreact"
)

// DialectOf maps language id to source dialect.
func DialectOf(lang string) (Dialect, error) {
	switch {
	case lang == LangHTML:
		return DialectMarkup, nil
	case strings.HasPrefix(lang, LangJavaScript), strings.HasPrefix(lang, LangTypeScript):
		return DialectComponent, nil
	}
	return 0, &UnsupportedDialectError{Lang: lang}
}

// ErrNothingFound is returned when document parsed fine but no selectors
// were produced. This is not a failure.
var ErrNothingFound = errors.New("no classes found")

// ParseError is returned when source cannot be parsed in its declared
// language. Nothing is generated in this case.
type ParseError struct {
	Lang string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s source: %v", e.Lang, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedDialectError is returned for language ids which are neither
// markup nor component syntax, before any parsing happens.
type UnsupportedDialectError struct {
	Lang string
}

func (e *UnsupportedDialectError) Error() string {
	if e.Lang == "" {
		return "source language is not specified"
	}
	return fmt.Sprintf("unsupported source language %q", e.Lang)
}

// Options are fixed for generator lifetime and passed down to every walker.
type Options struct {
	Selector common.SelectorType
	Syntax   common.Syntax
}

// Result of a single successful generation.
type Result struct {
	Lang    string
	Dialect Dialect
	Blocks  []Block
	// Text is rendered stylesheet with surrounding white space trimmed.
	Text string
	// Count is number of top level blocks in Text.
	Count int
}

type Generator struct {
	opts Options
	log  *zap.Logger
}

func New(opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: opts, log: log}
}

// Generate parses source in language lang and builds stylesheet skeleton.
// Source tree is only read and dropped after rendering.
func (g *Generator) Generate(src []byte, lang string) (*Result, error) {
	dialect, err := DialectOf(lang)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	switch dialect {
	case DialectMarkup:
		doc, err := parseMarkup(src)
		if err != nil {
			return nil, &ParseError{Lang: lang, Err: err}
		}
		w := &markupWalker{style: g.opts.Selector}
		blocks = w.document(doc)
	case DialectComponent:
		prog, err := jsx.Parse(src)
		if err != nil {
			return nil, &ParseError{Lang: lang, Err: err}
		}
		roots := findRoots(prog)
		g.log.Debug("Rendering roots located", zap.Int("count", len(roots)))

		w := &componentWalker{style: g.opts.Selector}
		for _, r := range roots {
			blocks = append(blocks, w.node(r)...)
		}
	}

	g.log.Debug("Blocks generated",
		zap.Stringer("dialect", dialect),
		zap.Int("top", len(blocks)),
		zap.Int("total", countBlocks(blocks)))

	text := strings.TrimSpace(Render(blocks, g.opts.Syntax))
	if text == "" {
		return nil, ErrNothingFound
	}

	// class names are copied verbatim, quotes or braces in them confuse
	// the lexer, so result is returned anyway
	if stats, err := css.Inspect(text, g.opts.Syntax); err != nil {
		g.log.Warn("Generated stylesheet does not look balanced",
			zap.Stringer("syntax", g.opts.Syntax),
			zap.Int("blocks", countBlocks(blocks)),
			zap.Error(err))
	} else {
		g.log.Debug("Stylesheet verified",
			zap.Int("blocks", stats.Blocks),
			zap.Int("depth", stats.MaxDepth))
	}
	return &Result{
		Lang:    lang,
		Dialect: dialect,
		Blocks:  blocks,
		Text:    text,
		Count:   CountTopLevel(text),
	}, nil
}
