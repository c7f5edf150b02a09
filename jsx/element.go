package jsx

// JSX is scanned in raw mode directly from source positions. When an
// embedded expression starts the parser switches back to tokens and
// returns to raw mode at the closing brace, which is always the current
// token at that point so scanner position is right after it.

func (p *parser) parseJSX() Expr {
	x := p.jsxElement(p.tok.Pos)
	p.next()
	return x
}

func (p *parser) jsxTrivia() {
	if _, bad := p.s.skipTrivia(); bad != nil {
		p.fail(bad.Pos, "%s", bad.Value)
	}
}

func (p *parser) jsxExpect(c byte) {
	p.jsxTrivia()
	if p.s.peek() != c {
		p.jsxUnexpected(c)
	}
	p.s.pos++
}

func (p *parser) jsxUnexpected(want byte) {
	s := p.s
	if s.eof() {
		p.fail(s.pos, "expected %q, found end of input", want)
	}
	p.fail(s.pos, "expected %q, found %q", want, s.peek())
}

// jsxElement parses element or fragment which "<" is at position at.
func (p *parser) jsxElement(at int) Expr {
	s := p.s
	s.pos = at + 1
	p.jsxTrivia()
	if s.peek() == '>' {
		s.pos++
		return &Fragment{At: at, Children: p.jsxChildren(at, "")}
	}

	name := s.jsxName()
	if name == "" {
		p.jsxUnexpected('>')
	}
	el := &Element{At: at, Name: name}
	for {
		p.jsxTrivia()
		switch c := s.peek(); {
		case s.eof():
			p.fail(at, "unterminated JSX element <%s>", name)
		case c == '/':
			s.pos++
			p.jsxExpect('>')
			el.SelfClosing = true
			return el
		case c == '>':
			s.pos++
			el.Children = p.jsxChildren(at, name)
			return el
		case c == '{':
			el.Attrs = append(el.Attrs, p.jsxSpreadAttr())
		default:
			el.Attrs = append(el.Attrs, p.jsxAttr())
		}
	}
}

func (p *parser) jsxAttr() Attr {
	s := p.s
	a := &Attribute{At: s.pos, Name: s.jsxName()}
	if a.Name == "" {
		p.fail(s.pos, "unexpected character %q in JSX element", s.peek())
	}
	p.jsxTrivia()
	if s.peek() != '=' {
		return a
	}
	s.pos++
	p.jsxTrivia()

	switch s.peek() {
	case '"', '\'':
		t, ok := s.jsxString()
		if !ok {
			p.fail(t.Pos, "%s", t.Value)
		}
		a.Value = &StringLit{At: t.Pos, Value: t.Value}
	case '{':
		c := p.jsxContainer()
		if c.X == nil {
			p.fail(c.At, "JSX attributes must only be assigned a non-empty expression")
		}
		a.Value = c
	case '<':
		a.Value = p.jsxElement(s.pos)
	default:
		p.fail(s.pos, "JSX value should be either an expression or a quoted JSX text")
	}
	return a
}

func (p *parser) jsxSpreadAttr() Attr {
	a := &SpreadAttribute{At: p.s.pos}
	p.s.pos++
	p.next()
	p.expect("...")
	a.X = p.parseAssign()
	p.jsxCloseBrace()
	return a
}

// jsxContainer parses {expression} in attribute value position.
func (p *parser) jsxContainer() *ExprContainer {
	c := &ExprContainer{At: p.s.pos}
	p.s.pos++
	p.next()
	if !p.isPunct("}") {
		c.X = p.parseExpr()
		p.jsxCloseBrace()
	}
	return c
}

func (p *parser) jsxCloseBrace() {
	if !p.isPunct("}") {
		p.fail(p.tok.Pos, "expected \"}\" to close JSX expression, found %s", p.tok)
	}
	// scanner is right after the brace
}

func (p *parser) jsxChildren(at int, name string) []Child {
	s := p.s
	var list []Child
	for {
		start := s.pos
		switch {
		case s.eof():
			if name == "" {
				p.fail(at, "unterminated JSX fragment")
			}
			p.fail(at, "unterminated JSX contents of <%s>", name)
		case s.peek() == '<':
			s.pos++
			p.jsxTrivia()
			if s.peek() != '/' {
				list = append(list, p.jsxElement(start).(Child))
				continue
			}
			s.pos++
			p.jsxTrivia()
			if closing := s.jsxName(); closing != name {
				if name == "" {
					p.fail(start, "expected corresponding closing tag for JSX fragment")
				}
				p.fail(start, "expected corresponding JSX closing tag for <%s>", name)
			}
			p.jsxExpect('>')
			return list
		case s.peek() == '{':
			list = append(list, p.jsxChildContainer())
		default:
			list = append(list, &Text{At: start, Value: decodeEntities(s.jsxText())})
		}
	}
}

func (p *parser) jsxChildContainer() Child {
	at := p.s.pos
	p.s.pos++
	p.next()
	switch {
	case p.isPunct("}"):
		return &ExprContainer{At: at}
	case p.isPunct("..."):
		p.next()
		c := &SpreadChild{At: at, X: p.parseExpr()}
		p.jsxCloseBrace()
		return c
	}
	c := &ExprContainer{At: at, X: p.parseExpr()}
	p.jsxCloseBrace()
	return c
}
