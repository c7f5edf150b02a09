package jsx

// TypeScript type syntax is consumed without building any nodes.

func (p *parser) skipType() {
	if p.isPunct("|") || p.isPunct("&") {
		p.next()
	}
	p.skipTypeOperand()
	for p.isPunct("|") || p.isPunct("&") {
		p.next()
		p.skipTypeOperand()
	}
	// conditional type
	if p.is("extends") && p.tok.Kind == Identifier && !p.tok.NewlineBefore {
		p.next()
		p.skipType()
		p.expect("?")
		p.skipType()
		p.expect(":")
		p.skipType()
	}
}

// skipReturnType also accepts type predicates: "x is T", "asserts x is T".
func (p *parser) skipReturnType() {
	if p.is("asserts") && p.tok.Kind == Identifier {
		if n := p.peek(); n.Kind == Identifier && !n.NewlineBefore {
			p.next()
		}
	}
	p.skipType()
	if p.is("is") && p.tok.Kind == Identifier && !p.tok.NewlineBefore {
		p.next()
		p.skipType()
	}
}

func (p *parser) skipTypeOperand() {
	t := p.tok
	switch t.Kind {
	case String, Number:
		p.next()
	case Template:
		p.next()
	case TemplateHead:
		p.skipTemplateType()
	case Punct:
		switch t.Value {
		case "(":
			p.skipBalanced()
			if p.got("=>") {
				p.skipReturnType()
				return
			}
		case "{", "[":
			p.skipBalanced()
		case "<":
			// generic function type
			p.skipTypeList(true)
			p.skipBalanced()
			p.expect("=>")
			p.skipReturnType()
			return
		case "-":
			p.next()
			if p.tok.Kind != Number {
				p.unexpected()
			}
			p.next()
		default:
			p.unexpected()
		}
	case Identifier:
		switch t.Value {
		case "typeof":
			p.next()
			if p.isPunct("(") || p.is("import") {
				p.skipTypeOperand()
			} else {
				p.skipEntityName()
			}
		case "keyof", "unique", "readonly", "infer":
			p.next()
			p.skipTypeOperand()
			if t.Value == "infer" && p.is("extends") {
				// constraint of inferred type, only valid in conditional
				// type check position
				p.try(func() {
					p.next()
					p.skipTypeOperand()
					if !p.isPunct("?") {
						p.unexpected()
					}
				})
			}
			return
		case "new", "abstract":
			p.got("abstract")
			p.expect("new")
			p.skipTypeOperand()
			return
		case "import":
			p.next()
			p.skipBalanced()
			for p.got(".") {
				p.next()
			}
		default:
			p.skipEntityName()
		}
	default:
		p.unexpected()
	}

	// array types and indexed access
	for p.isPunct("[") && !p.tok.NewlineBefore {
		p.skipBalanced()
	}
}

func (p *parser) skipEntityName() {
	p.ident()
	for p.isPunct(".") {
		p.next()
		p.next()
	}
	if p.isPunct("<") && !p.tok.NewlineBefore {
		p.skipTypeList(false)
	}
}

// skipTypeList skips type arguments or, with params set, type parameter
// declarations including constraints and defaults.
func (p *parser) skipTypeList(params bool) {
	p.expect("<")
	for !p.closeAngle() {
		if params {
			for p.is("in") || p.is("out") || p.is("const") {
				if n := p.peek(); n.Kind != Identifier {
					break
				}
				p.next()
			}
			p.ident()
			if p.got("extends") {
				p.skipType()
			}
			if p.got("=") {
				p.skipType()
			}
		} else {
			p.skipType()
		}
		if !p.got(",") {
			if !p.closeAngle() {
				p.unexpected()
			}
			return
		}
	}
}

// closeAngle consumes single ">" splitting compound tokens such as ">>".
func (p *parser) closeAngle() bool {
	if p.tok.Kind != Punct || len(p.tok.Value) == 0 || p.tok.Value[0] != '>' {
		return false
	}
	if p.tok.Value == ">" {
		p.next()
		return true
	}
	p.tok.Value = p.tok.Value[1:]
	p.tok.Pos++
	return true
}

// skipTemplateType skips template literal type starting at template head.
func (p *parser) skipTemplateType() {
	start := p.tok.Pos
	for {
		p.next()
		p.skipType()
		if !p.isPunct("}") {
			p.fail(p.tok.Pos, "expected \"}\" in template, found %s", p.tok)
		}
		p.tok = p.s.ContinueTemplate(p.tok.Pos)
		if p.tok.Kind == Illegal {
			p.fail(start, "%s", p.tok.Value)
		}
		if p.tok.Kind == TemplateTail {
			p.next()
			return
		}
	}
}
