package skeleton

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"scssx/common"
)

var bodySelector = cascadia.MustCompile("body")

// parseMarkup decodes and parses HTML document. Encoding is taken from BOM,
// meta tags or content, empty input is a valid empty document.
func parseMarkup(src []byte) (*html.Node, error) {
	enc, name, _ := charset.DetermineEncoding(src, "text/html")
	doc, err := html.Parse(transform.NewReader(bytes.NewReader(src), enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("unable to parse document (%s): %w", name, err)
	}
	return doc, nil
}

// markupContainer returns node whose children are top level blocks: body
// when document has one, document itself otherwise.
func markupContainer(doc *html.Node) *html.Node {
	if body := cascadia.Query(doc, bodySelector); body != nil {
		return body
	}
	return doc
}

type markupWalker struct {
	style common.SelectorType
}

func (w *markupWalker) children(n *html.Node) []Block {
	var blocks []Block
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		blocks = append(blocks, w.node(c)...)
	}
	return blocks
}

// node returns block for element with selector, or blocks of its children
// spliced in place when element produces no selector.
func (w *markupWalker) node(n *html.Node) []Block {
	if n.Type != html.ElementNode {
		return nil
	}

	info := markupInfo(n)
	children := w.children(n)
	sel, ok := ResolveSelector(info, w.style)
	if !ok {
		return children
	}
	return []Block{{Selector: sel, Children: children}}
}

func markupInfo(n *html.Node) *ElementInfo {
	info := &ElementInfo{}
	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		switch strings.ToLower(a.Key) {
		case "class":
			info.Classes.AddText(a.Val)
		case "id":
			if info.ID == "" {
				info.ID = strings.TrimSpace(a.Val)
			}
		}
	}
	info.fallbackTag(n.Data)
	return info
}

func (w *markupWalker) document(doc *html.Node) []Block {
	return w.children(markupContainer(doc))
}
