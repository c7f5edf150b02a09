package jsx

// words which can never start an expression
var statementKeywords = map[string]bool{
	"break": true, "case": true, "catch": true, "continue": true, "debugger": true,
	"default": true, "do": true, "else": true, "export": true, "extends": true,
	"finally": true, "for": true, "if": true, "return": true, "switch": true,
	"throw": true, "try": true, "var": true, "const": true, "while": true, "with": true,
}

func (p *parser) parseExpr() Expr {
	x := p.parseAssign()
	if !p.isPunct(",") {
		return x
	}
	seq := &SeqExpr{List: []Expr{x}}
	for p.got(",") {
		seq.List = append(seq.List, p.parseAssign())
	}
	return seq
}

func (p *parser) parseAssign() Expr {
	if f := p.tryArrow(); f != nil {
		return f
	}
	if p.is("yield") && p.startsOperand(p.peek()) {
		y := &YieldExpr{At: p.tok.Pos}
		p.next()
		if p.got("*") {
			y.Delegate = true
		}
		y.X = p.parseAssign()
		return y
	}

	x := p.parseConditional()
	if p.tok.Kind == Punct && assignOps[p.tok.Value] {
		op := p.tok.Value
		p.next()
		return &AssignExpr{Op: op, Target: x, Value: p.parseAssign()}
	}
	return x
}

// startsOperand reports whether t may follow a prefix keyword operator such
// as await or yield.
func (p *parser) startsOperand(t Token) bool {
	if t.NewlineBefore {
		return false
	}
	switch t.Kind {
	case EOF, Illegal:
		return false
	case Punct:
		switch t.Value {
		case ")", "]", "}", ",", ";", ":", "=", "?", "?.", ".", "=>", "==", "===", "!=", "!==",
			"&&", "||", "??", ">", ">=", "<=", "|", "&", "^", "*=", "+=", "-=", "/=":
			return false
		}
	case Identifier:
		switch t.Value {
		case "in", "of", "instanceof", "as", "satisfies":
			return false
		}
	}
	return true
}

// tryArrow parses arrow function when one starts at current token.
func (p *parser) tryArrow() Expr {
	t := p.tok
	async := false
	switch {
	case t.Kind == Identifier && t.Value == "async":
		n := p.peek()
		if n.Value == "=>" {
			// parameter named async
			break
		}
		if n.NewlineBefore || (n.Kind != Identifier && n.Value != "(" && n.Value != "<") {
			return nil
		}
		async = true
	case t.Kind == Identifier:
		if statementKeywords[t.Value] || p.peek().Value != "=>" {
			return nil
		}
	case t.Kind == Punct && (t.Value == "(" || t.Value == "<"):
	default:
		return nil
	}

	var f *FuncLit
	ok := p.try(func() {
		f = &FuncLit{At: t.Pos, Arrow: true, Async: async}
		if async {
			p.next()
		}
		switch {
		case p.tok.Kind == Identifier:
			f.Params = []Expr{p.ident()}
		case p.isPunct("<"):
			p.skipTypeList(true)
			f.Params = p.parseParams()
		default:
			f.Params = p.parseParams()
		}
		if p.isPunct(":") {
			p.next()
			p.skipReturnType()
		}
		if !p.isPunct("=>") || p.tok.NewlineBefore {
			p.unexpected()
		}
	})
	if !ok {
		return nil
	}

	p.next()
	if p.isPunct("{") {
		noIn := p.noIn
		p.noIn = false
		f.Body = p.parseBlock()
		p.noIn = noIn
	} else {
		f.ExprBody = p.parseAssign()
	}
	return f
}

func (p *parser) parseConditional() Expr {
	x := p.parseBinary(0)
	if !p.isPunct("?") {
		return x
	}
	p.next()
	noIn := p.noIn
	p.noIn = false
	cons := p.parseAssign()
	p.noIn = noIn
	p.expect(":")
	return &CondExpr{Test: x, Cons: cons, Alt: p.parseAssign()}
}

func (p *parser) parseBinary(minPrec int) Expr {
	x := p.parseUnary()
	for {
		op := p.tok.Value
		if p.tok.Kind == Identifier && (op == "as" || op == "satisfies") && !p.tok.NewlineBefore {
			p.next()
			p.skipType()
			continue
		}
		if p.tok.Kind != Punct && !(p.tok.Kind == Identifier && (op == "instanceof" || op == "in")) {
			return x
		}
		if op == "in" && p.noIn {
			return x
		}
		prec := binaryPrec[op]
		if prec == 0 || prec <= minPrec {
			return x
		}
		p.next()

		var y Expr
		if op == "**" {
			// right associative
			y = p.parseBinary(prec - 1)
		} else {
			y = p.parseBinary(prec)
		}
		switch op {
		case "&&", "||", "??":
			x = &LogicalExpr{Op: op, X: x, Y: y}
		default:
			x = &BinaryExpr{Op: op, X: x, Y: y}
		}
	}
}

func (p *parser) parseUnary() Expr {
	t := p.tok
	switch {
	case t.Kind == Punct:
		switch t.Value {
		case "!", "~", "+", "-":
			p.next()
			return &UnaryExpr{At: t.Pos, Op: t.Value, X: p.parseUnary()}
		case "++", "--":
			p.next()
			return &UpdateExpr{At: t.Pos, Op: t.Value, Prefix: true, X: p.parseUnary()}
		}
	case t.Kind == Identifier:
		switch t.Value {
		case "typeof", "void", "delete":
			p.next()
			return &UnaryExpr{At: t.Pos, Op: t.Value, X: p.parseUnary()}
		case "await":
			if p.startsOperand(p.peek()) {
				p.next()
				return &AwaitExpr{At: t.Pos, X: p.parseUnary()}
			}
		}
	}

	x := p.parseCallTail(p.parseNewOrPrimary(), false)
	if (p.isPunct("++") || p.isPunct("--")) && !p.tok.NewlineBefore {
		u := &UpdateExpr{At: p.tok.Pos, Op: p.tok.Value, X: x}
		p.next()
		return u
	}
	return x
}

func (p *parser) parseNewOrPrimary() Expr {
	if !p.is("new") || p.tok.Kind != Identifier {
		return p.parsePrimary()
	}
	at := p.tok.Pos
	p.next()
	if p.got(".") {
		prop := p.ident()
		return &MetaProperty{At: at, Meta: "new", Prop: prop.Name}
	}
	n := &NewExpr{At: at}
	n.Callee = p.parseCallTail(p.parseNewOrPrimary(), true)
	if p.isPunct("<") {
		p.try(func() {
			p.skipTypeList(false)
			if !p.isPunct("(") {
				p.unexpected()
			}
		})
	}
	if p.isPunct("(") {
		n.Args = p.parseArgs()
	}
	return n
}

// parseCallTail parses member accesses, calls and tagged templates
// following x. With noCalls set (callee of new) call arguments end it.
func (p *parser) parseCallTail(x Expr, noCalls bool) Expr {
	for {
		t := p.tok
		switch {
		case t.Kind == Punct && t.Value == ".":
			p.next()
			x = &MemberExpr{Object: x, Prop: p.propertyName()}
		case t.Kind == Punct && t.Value == "?.":
			if noCalls {
				p.fail(t.Pos, "optional chain is not allowed in new expression")
			}
			p.next()
			switch {
			case p.isPunct("("):
				x = &CallExpr{Callee: x, Args: p.parseArgs(), Optional: true}
			case p.isPunct("["):
				p.next()
				prop := p.parseExpr()
				p.expect("]")
				x = &MemberExpr{Object: x, Prop: prop, Computed: true, Optional: true}
			default:
				x = &MemberExpr{Object: x, Prop: p.propertyName(), Optional: true}
			}
		case t.Kind == Punct && t.Value == "[":
			p.next()
			noIn := p.noIn
			p.noIn = false
			prop := p.parseExpr()
			p.noIn = noIn
			p.expect("]")
			x = &MemberExpr{Object: x, Prop: prop, Computed: true}
		case t.Kind == Punct && t.Value == "(" && !noCalls:
			x = &CallExpr{Callee: x, Args: p.parseArgs()}
		case t.Kind == Template || t.Kind == TemplateHead:
			x = &TaggedTemplate{Tag: x, Quasi: p.parseTemplate()}
		case t.Kind == Punct && t.Value == "!" && !t.NewlineBefore:
			// non-null assertion
			p.next()
		case t.Kind == Punct && t.Value == "<" && !noCalls:
			// explicit type arguments: f<T>(x)
			ok := p.try(func() {
				p.skipTypeList(false)
				if !p.isPunct("(") && p.tok.Kind != Template && p.tok.Kind != TemplateHead {
					p.unexpected()
				}
			})
			if !ok {
				return x
			}
		default:
			return x
		}
	}
}

func (p *parser) propertyName() Expr {
	switch p.tok.Kind {
	case Identifier, PrivateName:
		id := &Ident{At: p.tok.Pos, Name: p.tok.Value}
		p.next()
		return id
	}
	p.fail(p.tok.Pos, "expected property name, found %s", p.tok)
	return nil
}

func (p *parser) parseArgs() []Expr {
	p.expect("(")
	noIn := p.noIn
	p.noIn = false
	var args []Expr
	for !p.isPunct(")") {
		if p.isPunct("...") {
			at := p.tok.Pos
			p.next()
			args = append(args, &SpreadElem{At: at, X: p.parseAssign()})
		} else {
			args = append(args, p.parseAssign())
		}
		if !p.got(",") {
			break
		}
	}
	p.expect(")")
	p.noIn = noIn
	return args
}

func (p *parser) parsePrimary() Expr {
	t := p.tok
	switch t.Kind {
	case Identifier:
		return p.parseIdentPrimary()
	case PrivateName:
		// #x in obj
		p.next()
		return &Ident{At: t.Pos, Name: t.Value}
	case Number:
		p.next()
		return &NumberLit{At: t.Pos, Raw: t.Value}
	case String:
		p.next()
		return &StringLit{At: t.Pos, Value: t.Value}
	case Template, TemplateHead:
		return p.parseTemplate()
	case Punct:
		switch t.Value {
		case "(":
			p.next()
			noIn := p.noIn
			p.noIn = false
			x := p.parseExpr()
			p.noIn = noIn
			p.expect(")")
			return x
		case "[":
			return p.parseArray()
		case "{":
			return p.parseObject()
		case "<":
			return p.parseJSX()
		case "/", "/=":
			p.tok = p.s.Regex(t.Pos)
			if p.tok.Kind == Illegal {
				p.unexpected()
			}
			raw := p.tok.Value
			p.next()
			return &RegexLit{At: t.Pos, Raw: raw}
		case "@":
			// decorated class expression
			for p.isPunct("@") {
				p.skipDecorator()
			}
			return p.parseClass(false)
		}
	}
	p.unexpected()
	return nil
}

func (p *parser) parseIdentPrimary() Expr {
	t := p.tok
	switch t.Value {
	case "this":
		p.next()
		return &ThisExpr{At: t.Pos}
	case "super":
		p.next()
		return &SuperExpr{At: t.Pos}
	case "function":
		return p.parseFunction(false)
	case "async":
		if n := p.peek(); n.Value == "function" && !n.NewlineBefore {
			return p.parseFunction(false)
		}
	case "class":
		return p.parseClass(false)
	case "import":
		p.next()
		if p.got(".") {
			prop := p.ident()
			return &MetaProperty{At: t.Pos, Meta: "import", Prop: prop.Name}
		}
		args := p.parseArgs()
		if len(args) == 0 {
			p.fail(t.Pos, "import() requires a specifier")
		}
		return &ImportCall{At: t.Pos, Arg: args[0]}
	default:
		if statementKeywords[t.Value] {
			p.fail(t.Pos, "unexpected keyword %q", t.Value)
		}
	}
	p.next()
	return &Ident{At: t.Pos, Name: t.Value}
}

func (p *parser) parseTemplate() *TemplateLit {
	t := p.tok
	tl := &TemplateLit{At: t.Pos, Quasis: []string{t.Value}}
	if t.Kind == Template {
		p.next()
		return tl
	}
	for {
		p.next()
		noIn := p.noIn
		p.noIn = false
		tl.Exprs = append(tl.Exprs, p.parseExpr())
		p.noIn = noIn
		if !p.isPunct("}") {
			p.fail(p.tok.Pos, "expected \"}\" in template, found %s", p.tok)
		}
		p.tok = p.s.ContinueTemplate(p.tok.Pos)
		if p.tok.Kind == Illegal {
			p.fail(tl.At, "%s", p.tok.Value)
		}
		tl.Quasis = append(tl.Quasis, p.tok.Value)
		if p.tok.Kind == TemplateTail {
			p.next()
			return tl
		}
	}
}

func (p *parser) parseArray() Expr {
	a := &ArrayLit{At: p.expect("[")}
	noIn := p.noIn
	p.noIn = false
	for !p.isPunct("]") {
		switch {
		case p.isPunct(","):
			a.Elems = append(a.Elems, nil)
			p.next()
			continue
		case p.isPunct("..."):
			at := p.tok.Pos
			p.next()
			a.Elems = append(a.Elems, &SpreadElem{At: at, X: p.parseAssign()})
		default:
			a.Elems = append(a.Elems, p.parseAssign())
		}
		if !p.got(",") {
			break
		}
	}
	p.expect("]")
	p.noIn = noIn
	return a
}

func (p *parser) parseObject() Expr {
	o := &ObjectLit{At: p.expect("{")}
	noIn := p.noIn
	p.noIn = false
	for !p.isPunct("}") {
		if p.isPunct("...") {
			at := p.tok.Pos
			p.next()
			o.Props = append(o.Props, &SpreadElem{At: at, X: p.parseAssign()})
		} else {
			o.Props = append(o.Props, p.parseProperty())
		}
		if !p.got(",") {
			break
		}
	}
	p.expect("}")
	p.noIn = noIn
	return o
}

// isModifier reports whether current word is used as modifier of the
// following property rather than being the property name itself.
func (p *parser) isModifier() bool {
	if p.tok.Kind != Identifier {
		return false
	}
	n := p.peek()
	if n.NewlineBefore {
		return false
	}
	switch n.Value {
	case "(", "=", ";", ":", "?", "!", "}", ",", "<":
		return n.Kind != Punct
	}
	return n.Kind != EOF
}

func (p *parser) parseProperty() *Property {
	var async, generator bool
	for {
		switch {
		case p.isPunct("*"):
			generator = true
			p.next()
			continue
		case (p.is("get") || p.is("set") || p.is("async")) && p.isModifier():
			async = async || p.tok.Value == "async"
			p.next()
			continue
		}
		break
	}

	prop := &Property{}
	prop.Key, prop.Computed = p.parsePropertyKey()

	switch {
	case p.isPunct("(") || p.isPunct("<"):
		f := &FuncLit{At: prop.Key.Pos(), Async: async, Generator: generator}
		p.parseFuncRest(f)
		prop.Method = f
	case p.got(":"):
		prop.Value = p.parseAssign()
	default:
		id, ok := prop.Key.(*Ident)
		if !ok || prop.Computed {
			p.unexpected()
		}
		prop.Value = id
		if p.got("=") {
			// shorthand with default, valid only as pattern
			prop.Value = &AssignPattern{Target: id, Value: p.parseAssign()}
		}
	}
	return prop
}

func (p *parser) parsePropertyKey() (Expr, bool) {
	t := p.tok
	switch t.Kind {
	case Identifier, PrivateName:
		p.next()
		return &Ident{At: t.Pos, Name: t.Value}, false
	case String:
		p.next()
		return &StringLit{At: t.Pos, Value: t.Value}, false
	case Number:
		p.next()
		return &NumberLit{At: t.Pos, Raw: t.Value}, false
	case Punct:
		if t.Value == "[" {
			p.next()
			x := p.parseAssign()
			p.expect("]")
			return x, true
		}
	}
	p.fail(t.Pos, "expected property name, found %s", t)
	return nil, false
}

// Functions and classes.

// parseFunction parses function declaration or expression starting at
// "function" or "async function".
func (p *parser) parseFunction(needName bool) *FuncLit {
	f := &FuncLit{At: p.tok.Pos}
	if p.got("async") {
		f.Async = true
	}
	p.expect("function")
	if p.got("*") {
		f.Generator = true
	}
	if p.tok.Kind == Identifier && !p.isPunct("(") {
		f.Name = p.ident()
	} else if needName {
		p.fail(p.tok.Pos, "function name expected, found %s", p.tok)
	}
	p.parseFuncRest(f)
	return f
}

// parseFuncRest parses type parameters, parameters, return type and body.
// Body is absent for overload signatures and abstract methods.
func (p *parser) parseFuncRest(f *FuncLit) {
	if p.isPunct("<") {
		p.skipTypeList(true)
	}
	f.Params = p.parseParams()
	if p.got(":") {
		p.skipReturnType()
	}
	if !p.isPunct("{") {
		p.semicolon()
		return
	}
	noIn := p.noIn
	p.noIn = false
	f.Body = p.parseBlock()
	p.noIn = noIn
}

var paramModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true, "override": true,
}

func (p *parser) parseParams() []Expr {
	p.expect("(")
	var params []Expr
	for !p.isPunct(")") {
		for p.isPunct("@") {
			p.skipDecorator()
		}
		// parameter properties
		for p.tok.Kind == Identifier && paramModifiers[p.tok.Value] {
			if n := p.peek(); n.Kind != Identifier && n.Value != "{" && n.Value != "[" && n.Value != "..." {
				break
			}
			p.next()
		}

		var param Expr
		if p.isPunct("...") {
			at := p.tok.Pos
			p.next()
			param = &SpreadElem{At: at, X: p.parseBindingTarget()}
		} else {
			param = p.parseBindingTarget()
		}
		p.got("?")
		if p.got(":") {
			p.skipType()
		}
		if p.got("=") {
			param = &AssignPattern{Target: param, Value: p.parseAssign()}
		}
		params = append(params, param)
		if !p.got(",") {
			break
		}
	}
	p.expect(")")
	return params
}

// parseBindingTarget parses identifier, object or array destructuring
// pattern.
func (p *parser) parseBindingTarget() Expr {
	switch {
	case p.isPunct("["):
		a := &ArrayLit{At: p.tok.Pos}
		p.next()
		for !p.isPunct("]") {
			if p.isPunct(",") {
				a.Elems = append(a.Elems, nil)
				p.next()
				continue
			}
			a.Elems = append(a.Elems, p.parseBindingElement())
			if !p.got(",") {
				break
			}
		}
		p.expect("]")
		return a
	case p.isPunct("{"):
		o := &ObjectLit{At: p.tok.Pos}
		p.next()
		for !p.isPunct("}") {
			if p.isPunct("...") {
				at := p.tok.Pos
				p.next()
				o.Props = append(o.Props, &SpreadElem{At: at, X: p.parseBindingTarget()})
			} else {
				prop := &Property{}
				prop.Key, prop.Computed = p.parsePropertyKey()
				if p.got(":") {
					prop.Value = p.parseBindingElement()
				} else {
					prop.Value = prop.Key
					if p.got("=") {
						prop.Value = &AssignPattern{Target: prop.Key, Value: p.parseAssign()}
					}
				}
				o.Props = append(o.Props, prop)
			}
			if !p.got(",") {
				break
			}
		}
		p.expect("}")
		return o
	case p.tok.Kind == Identifier && !statementKeywords[p.tok.Value]:
		return p.ident()
	}
	p.fail(p.tok.Pos, "expected binding, found %s", p.tok)
	return nil
}

func (p *parser) parseBindingElement() Expr {
	if p.isPunct("...") {
		at := p.tok.Pos
		p.next()
		return &SpreadElem{At: at, X: p.parseBindingTarget()}
	}
	x := p.parseBindingTarget()
	if p.got("=") {
		return &AssignPattern{Target: x, Value: p.parseAssign()}
	}
	return x
}

func (p *parser) parseClass(needName bool) *ClassLit {
	c := &ClassLit{At: p.expect("class")}
	if p.tok.Kind == Identifier && !p.is("extends") && !p.is("implements") {
		c.Name = p.ident()
	} else if needName {
		p.fail(p.tok.Pos, "class name expected, found %s", p.tok)
	}
	if p.isPunct("<") {
		p.skipTypeList(true)
	}
	if p.got("extends") {
		c.Super = p.parseCallTail(p.parseNewOrPrimary(), false)
		if p.isPunct("<") {
			p.skipTypeList(false)
		}
	}
	if p.got("implements") {
		for {
			p.skipType()
			if !p.got(",") {
				break
			}
		}
	}

	p.expect("{")
	for !p.isPunct("}") {
		if p.tok.Kind == EOF {
			p.fail(c.At, "unterminated class body")
		}
		if p.got(";") {
			continue
		}
		if m := p.parseClassMember(); m != nil {
			c.Members = append(c.Members, m)
		}
	}
	p.next()
	return c
}

var memberModifiers = map[string]bool{
	"static": true, "public": true, "private": true, "protected": true, "readonly": true,
	"abstract": true, "override": true, "declare": true, "accessor": true,
	"async": true, "get": true, "set": true,
}

func (p *parser) parseClassMember() *ClassMember {
	for p.isPunct("@") {
		p.skipDecorator()
	}

	m := &ClassMember{}
	var async, generator bool
	for p.tok.Kind == Identifier && memberModifiers[p.tok.Value] && p.isModifier() {
		switch p.tok.Value {
		case "static":
			m.Static = true
			if p.peek().Value == "{" {
				p.next()
				m.Key = &Ident{At: p.tok.Pos, Name: "static"}
				m.Block = p.parseBlock()
				return m
			}
		case "async":
			async = true
		}
		p.next()
	}
	if p.got("*") {
		generator = true
	}

	// index signature
	if p.isPunct("[") {
		sig := p.try(func() {
			p.next()
			p.ident()
			if !p.isPunct(":") {
				p.unexpected()
			}
			p.next()
			p.skipType()
			p.expect("]")
			p.expect(":")
			p.skipType()
			p.semicolon()
		})
		if sig {
			return nil
		}
	}

	m.Key, m.Computed = p.parsePropertyKey()
	if p.isPunct("?") || p.isPunct("!") {
		p.next()
	}
	if p.isPunct("(") || p.isPunct("<") {
		f := &FuncLit{At: m.Key.Pos(), Async: async, Generator: generator}
		p.parseFuncRest(f)
		m.Method = f
		return m
	}
	if p.got(":") {
		p.skipType()
	}
	if p.got("=") {
		m.Value = p.parseAssign()
	}
	p.semicolon()
	return m
}
