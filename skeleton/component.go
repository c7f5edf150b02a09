package skeleton

import (
	"strings"

	"scssx/common"
	"scssx/jsx"
)

type componentWalker struct {
	style common.SelectorType
}

// node handles *jsx.Element and *jsx.Fragment, fragment has no tag and
// attributes so it is always flattened.
func (w *componentWalker) node(n jsx.Expr) []Block {
	switch x := n.(type) {
	case *jsx.Element:
		info := componentInfo(x)
		children := w.children(x.Children)
		sel, ok := ResolveSelector(info, w.style)
		if !ok {
			return children
		}
		return []Block{{Selector: sel, Children: children}}
	case *jsx.Fragment:
		return w.children(x.Children)
	}
	return nil
}

func (w *componentWalker) children(list []jsx.Child) []Block {
	var blocks []Block
	for _, c := range list {
		switch x := c.(type) {
		case *jsx.Element:
			blocks = append(blocks, w.node(x)...)
		case *jsx.Fragment:
			blocks = append(blocks, w.node(x)...)
		case *jsx.ExprContainer:
			blocks = append(blocks, w.expr(x.X)...)
		case *jsx.Text, *jsx.SpreadChild:
			// nothing to render
		}
	}
	return blocks
}

// expr inspects embedded expression looking for rendered elements.
func (w *componentWalker) expr(x jsx.Expr) []Block {
	switch e := x.(type) {
	case *jsx.Element, *jsx.Fragment:
		return w.node(e)
	case *jsx.ArrayLit:
		var blocks []Block
		for _, el := range e.Elems {
			if isMarkup(el) {
				blocks = append(blocks, w.node(el)...)
			}
		}
		return blocks
	case *jsx.CondExpr:
		return append(w.expr(e.Cons), w.expr(e.Alt)...)
	case *jsx.LogicalExpr:
		if e.Op == "&&" {
			return w.expr(e.Y)
		}
	case *jsx.CallExpr:
		var blocks []Block
		for _, el := range mapCallbackResults(e) {
			blocks = append(blocks, w.node(el)...)
		}
		return blocks
	}
	return nil
}

func isMarkup(x jsx.Expr) bool {
	switch x.(type) {
	case *jsx.Element, *jsx.Fragment:
		return true
	}
	return false
}

// mapCallbackResults returns elements produced by callback of ".map(...)"
// call: concise arrow body, or values of return statements of callback
// body excluding nested functions.
func mapCallbackResults(call *jsx.CallExpr) []jsx.Expr {
	m, ok := call.Callee.(*jsx.MemberExpr)
	if !ok || m.Computed {
		return nil
	}
	if prop, ok := m.Prop.(*jsx.Ident); !ok || prop.Name != "map" {
		return nil
	}

	var fn *jsx.FuncLit
	for _, arg := range call.Args {
		if f, ok := arg.(*jsx.FuncLit); ok {
			fn = f
			break
		}
	}
	if fn == nil {
		return nil
	}

	if fn.ExprBody != nil {
		if isMarkup(fn.ExprBody) {
			return []jsx.Expr{fn.ExprBody}
		}
		return nil
	}
	if fn.Body == nil {
		return nil
	}

	var results []jsx.Expr
	jsx.Inspect(fn.Body, func(n jsx.Node) bool {
		switch x := n.(type) {
		case *jsx.FuncLit, *jsx.ClassLit:
			return false
		case *jsx.ReturnStmt:
			if x.X != nil && isMarkup(x.X) {
				results = append(results, x.X)
			}
			return false
		}
		return true
	})
	return results
}

func componentInfo(el *jsx.Element) *ElementInfo {
	info := &ElementInfo{}
	for _, a := range el.Attrs {
		attr, ok := a.(*jsx.Attribute)
		if !ok || attr.Value == nil {
			continue
		}
		switch attr.Name {
		case "className", "class":
			info.Classes.Merge(EvalClasses(attr.Value))
		case "id":
			if info.ID == "" {
				info.ID = staticString(attr.Value)
			}
		}
	}
	info.fallbackTag(el.Name)
	return info
}

// staticString returns value of string literal, possibly wrapped into
// expression container.
func staticString(n jsx.Node) string {
	if c, ok := n.(*jsx.ExprContainer); ok {
		n = c.X
	}
	if s, ok := n.(*jsx.StringLit); ok {
		return strings.TrimSpace(s.Value)
	}
	return ""
}
