package jsx

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
)

// Parse parses module source with JSX and TypeScript annotations. Type
// annotations and TypeScript only declarations are recognized and skipped,
// the resulting tree carries only runtime syntax. Returned error is
// *parse.Error with line and column of the first problem.
func Parse(src []byte) (prog *Program, err error) {
	p := &parser{src: src, s: NewScanner(src)}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	p.next()
	prog = &Program{}
	for p.tok.Kind != EOF {
		prog.Body = append(prog.Body, p.parseStatement())
	}
	return prog, nil
}

type bailout struct {
	err *parse.Error
}

type parser struct {
	src []byte
	s   *Scanner
	tok Token

	// noIn disables "in" operator in for statement initializer
	noIn bool
}

type parserState struct {
	pos  int
	tok  Token
	noIn bool
}

func (p *parser) fail(pos int, format string, args ...any) {
	panic(bailout{err: parse.NewError(bytes.NewReader(p.src), pos, format, args...)})
}

func (p *parser) unexpected() {
	switch p.tok.Kind {
	case EOF:
		p.fail(p.tok.Pos, "unexpected end of input")
	case Illegal:
		p.fail(p.tok.Pos, "%s", p.tok.Value)
	default:
		p.fail(p.tok.Pos, "unexpected token %s", p.tok)
	}
}

func (p *parser) next() {
	p.tok = p.s.Next()
	if p.tok.Kind == Illegal {
		p.unexpected()
	}
}

func (p *parser) save() parserState {
	return parserState{pos: p.s.pos, tok: p.tok, noIn: p.noIn}
}

func (p *parser) restore(st parserState) {
	p.s.pos, p.tok, p.noIn = st.pos, st.tok, st.noIn
}

// try runs f speculatively, on failure parser state is restored.
func (p *parser) try(f func()) (ok bool) {
	st := p.save()
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); !isBailout {
				panic(r)
			}
			p.restore(st)
			ok = false
		}
	}()
	f()
	return true
}

// peek returns token following the current one without consuming anything.
func (p *parser) peek() Token {
	pos := p.s.pos
	t := p.s.Next()
	p.s.pos = pos
	return t
}

func (p *parser) is(value string) bool {
	return (p.tok.Kind == Punct || p.tok.Kind == Identifier) && p.tok.Value == value
}

func (p *parser) isPunct(value string) bool {
	return p.tok.Kind == Punct && p.tok.Value == value
}

func (p *parser) got(value string) bool {
	if p.is(value) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(value string) int {
	pos := p.tok.Pos
	if !p.is(value) {
		if p.tok.Kind == EOF {
			p.fail(pos, "expected %q, found end of input", value)
		}
		p.fail(pos, "expected %q, found %s", value, p.tok)
	}
	p.next()
	return pos
}

// semicolon implements automatic semicolon insertion.
func (p *parser) semicolon() {
	if p.isPunct(";") {
		p.next()
		return
	}
	if p.isPunct("}") || p.tok.Kind == EOF || p.tok.NewlineBefore {
		return
	}
	p.fail(p.tok.Pos, "missing semicolon before %s", p.tok)
}

func (p *parser) ident() *Ident {
	if p.tok.Kind != Identifier {
		p.fail(p.tok.Pos, "expected identifier, found %s", p.tok)
	}
	id := &Ident{At: p.tok.Pos, Name: p.tok.Value}
	p.next()
	return id
}

// Statements.

func (p *parser) parseStatement() Stmt {
	for p.isPunct("@") {
		p.skipDecorator()
	}

	t := p.tok
	switch t.Kind {
	case Punct:
		switch t.Value {
		case "{":
			return p.parseBlock()
		case ";":
			p.next()
			return &EmptyStmt{At: t.Pos}
		}
	case Identifier:
		if s := p.parseKeywordStatement(); s != nil {
			return s
		}
	}

	x := p.parseExpr()
	if id, ok := x.(*Ident); ok && p.isPunct(":") {
		p.next()
		return &LabeledStmt{Label: id, Body: p.parseStatement()}
	}
	p.semicolon()
	return &ExprStmt{X: x}
}

// parseKeywordStatement returns nil when current identifier does not start
// a statement and should be parsed as expression.
func (p *parser) parseKeywordStatement() Stmt {
	t := p.tok
	switch t.Value {
	case "var", "const":
		if t.Value == "const" && p.peek().Value == "enum" {
			p.next()
			return p.skipEnum(t.Pos)
		}
		d := p.parseVarDecl()
		p.semicolon()
		return d
	case "let", "using":
		if n := p.peek(); n.Kind == Identifier || n.Value == "[" || n.Value == "{" {
			d := p.parseVarDecl()
			p.semicolon()
			return d
		}
	case "function":
		return &FuncDecl{Func: p.parseFunction(true)}
	case "async":
		if n := p.peek(); n.Value == "function" && !n.NewlineBefore {
			return &FuncDecl{Func: p.parseFunction(true)}
		}
	case "class":
		return &ClassDecl{Class: p.parseClass(true)}
	case "if":
		return p.parseIf()
	case "for":
		return p.parseFor()
	case "while", "with":
		p.next()
		p.expect("(")
		test := p.parseExpr()
		p.expect(")")
		return &WhileStmt{At: t.Pos, Test: test, Body: p.parseStatement()}
	case "do":
		p.next()
		body := p.parseStatement()
		if !p.is("while") {
			p.fail(p.tok.Pos, "expected \"while\", found %s", p.tok)
		}
		p.next()
		p.expect("(")
		test := p.parseExpr()
		p.expect(")")
		p.got(";")
		return &DoWhileStmt{At: t.Pos, Body: body, Test: test}
	case "return":
		p.next()
		r := &ReturnStmt{At: t.Pos}
		if !p.isPunct(";") && !p.isPunct("}") && p.tok.Kind != EOF && !p.tok.NewlineBefore {
			r.X = p.parseExpr()
		}
		p.semicolon()
		return r
	case "break", "continue":
		p.next()
		b := &BranchStmt{At: t.Pos, Tok: t.Value}
		if p.tok.Kind == Identifier && !p.tok.NewlineBefore {
			b.Label = p.tok.Value
			p.next()
		}
		p.semicolon()
		return b
	case "throw":
		p.next()
		if p.tok.NewlineBefore {
			p.fail(p.tok.Pos, "illegal newline after throw")
		}
		x := p.parseExpr()
		p.semicolon()
		return &ThrowStmt{At: t.Pos, X: x}
	case "try":
		return p.parseTry()
	case "switch":
		return p.parseSwitch()
	case "debugger":
		p.next()
		p.semicolon()
		return &EmptyStmt{At: t.Pos}
	case "import":
		if n := p.peek(); n.Value != "(" && n.Value != "." {
			return p.parseImport()
		}
	case "export":
		return p.parseExport()
	}
	return p.parseTypeScriptDecl()
}

func (p *parser) parseBlock() *BlockStmt {
	b := &BlockStmt{At: p.expect("{")}
	for !p.isPunct("}") {
		if p.tok.Kind == EOF {
			p.fail(b.At, "unterminated block")
		}
		b.List = append(b.List, p.parseStatement())
	}
	p.next()
	return b
}

func (p *parser) parseVarDecl() *VarDecl {
	d := &VarDecl{At: p.tok.Pos, Kind: p.tok.Value}
	p.next()
	for {
		v := &VarDeclarator{Target: p.parseBindingTarget()}
		// definite assignment assertion
		if p.isPunct("!") {
			p.next()
		}
		if p.isPunct(":") {
			p.next()
			p.skipType()
		}
		if p.got("=") {
			v.Init = p.parseAssign()
		}
		d.List = append(d.List, v)
		if !p.got(",") {
			return d
		}
	}
}

func (p *parser) isDeclStart() bool {
	switch p.tok.Value {
	case "var", "const":
		return p.tok.Kind == Identifier
	case "let", "using":
		n := p.peek()
		return p.tok.Kind == Identifier && (n.Kind == Identifier && n.Value != "of" && n.Value != "in" || n.Value == "[" || n.Value == "{")
	}
	return false
}

func (p *parser) parseIf() Stmt {
	s := &IfStmt{At: p.tok.Pos}
	p.next()
	p.expect("(")
	s.Test = p.parseExpr()
	p.expect(")")
	s.Cons = p.parseStatement()
	if p.is("else") {
		p.next()
		s.Alt = p.parseStatement()
	}
	return s
}

func (p *parser) parseFor() Stmt {
	at := p.tok.Pos
	p.next()
	p.got("await")
	p.expect("(")

	var init Node
	if !p.isPunct(";") {
		p.noIn = true
		if p.isDeclStart() {
			init = p.parseVarDecl()
		} else {
			init = p.parseExpr()
		}
		p.noIn = false

		if p.is("of") || p.is("in") {
			of := p.tok.Value == "of"
			p.next()
			var right Expr
			if of {
				right = p.parseAssign()
			} else {
				right = p.parseExpr()
			}
			p.expect(")")
			return &ForInStmt{At: at, Of: of, Left: init, Right: right, Body: p.parseStatement()}
		}
	}

	s := &ForStmt{At: at, Init: init}
	p.expect(";")
	if !p.isPunct(";") {
		s.Test = p.parseExpr()
	}
	p.expect(";")
	if !p.isPunct(")") {
		s.Update = p.parseExpr()
	}
	p.expect(")")
	s.Body = p.parseStatement()
	return s
}

func (p *parser) parseTry() Stmt {
	s := &TryStmt{At: p.tok.Pos}
	p.next()
	s.Block = p.parseBlock()
	if p.is("catch") {
		p.next()
		if p.got("(") {
			s.Param = p.parseBindingTarget()
			if p.got(":") {
				p.skipType()
			}
			p.expect(")")
		}
		s.Handler = p.parseBlock()
	}
	if p.is("finally") {
		p.next()
		s.Final = p.parseBlock()
	}
	if s.Handler == nil && s.Final == nil {
		p.fail(p.tok.Pos, "missing catch or finally after try")
	}
	return s
}

func (p *parser) parseSwitch() Stmt {
	s := &SwitchStmt{At: p.tok.Pos}
	p.next()
	p.expect("(")
	s.Tag = p.parseExpr()
	p.expect(")")
	p.expect("{")
	for !p.isPunct("}") {
		c := &CaseClause{At: p.tok.Pos}
		switch {
		case p.is("case"):
			p.next()
			c.Test = p.parseExpr()
		case p.is("default"):
			p.next()
		default:
			p.unexpected()
		}
		p.expect(":")
		for !p.isPunct("}") && !p.is("case") && !p.is("default") {
			if p.tok.Kind == EOF {
				p.unexpected()
			}
			c.Body = append(c.Body, p.parseStatement())
		}
		s.Cases = append(s.Cases, c)
	}
	p.next()
	return s
}

// parseImport keeps only module source, bindings are of no interest.
func (p *parser) parseImport() Stmt {
	d := &ImportDecl{At: p.tok.Pos}
	p.next()
	for p.tok.Kind != String {
		switch {
		case p.tok.Kind == EOF:
			p.unexpected()
		case p.isPunct("{"):
			p.skipBalanced()
			continue
		case p.isPunct("("):
			// import x = require("y")
			p.next()
			continue
		}
		p.next()
	}
	d.Source = p.tok.Value
	p.next()
	p.got(")")
	if (p.is("with") || p.is("assert")) && !p.tok.NewlineBefore {
		p.next()
		p.skipBalanced()
	}
	p.semicolon()
	return d
}

func (p *parser) parseExport() Stmt {
	d := &ExportDecl{At: p.tok.Pos}
	p.next()

	switch {
	case p.is("default"):
		d.Default = true
		p.next()
		switch {
		case p.is("function"), p.is("async") && p.peek().Value == "function":
			d.Decl = &FuncDecl{Func: p.parseFunction(false)}
		case p.is("class"):
			d.Decl = &ClassDecl{Class: p.parseClass(false)}
		case p.is("abstract") && p.peek().Value == "class":
			p.next()
			d.Decl = &ClassDecl{Class: p.parseClass(false)}
		case p.is("interface"):
			d.Decl = p.parseTypeScriptDecl()
		default:
			d.X = p.parseAssign()
			p.semicolon()
		}
	case p.isPunct("{"), p.isPunct("*"), p.is("type") && p.peek().Value == "{":
		p.got("type")
		if p.got("*") {
			if p.got("as") {
				p.next()
			}
		} else {
			p.skipBalanced()
		}
		if p.got("from") {
			if p.tok.Kind != String {
				p.fail(p.tok.Pos, "expected module source, found %s", p.tok)
			}
			p.next()
			if (p.is("with") || p.is("assert")) && !p.tok.NewlineBefore {
				p.next()
				p.skipBalanced()
			}
		}
		p.semicolon()
	case p.isPunct("="):
		// export = x
		p.next()
		d.X = p.parseAssign()
		p.semicolon()
	case p.is("as"):
		// export as namespace X
		p.next()
		p.next()
		p.ident()
		p.semicolon()
	default:
		d.Decl = p.parseStatement()
	}
	return d
}

// parseTypeScriptDecl skips TypeScript only declarations, returns nil when
// current token does not start one.
func (p *parser) parseTypeScriptDecl() Stmt {
	t := p.tok
	n := p.peek()
	if n.NewlineBefore && t.Value != "declare" {
		return nil
	}
	switch t.Value {
	case "interface":
		if n.Kind != Identifier {
			return nil
		}
		p.next()
		p.next()
		if p.isPunct("<") {
			p.skipTypeList(true)
		}
		if p.got("extends") {
			for {
				p.skipType()
				if !p.got(",") {
					break
				}
			}
		}
		p.skipBalanced()
		return &TypeDecl{At: t.Pos}
	case "type":
		if n.Kind != Identifier {
			return nil
		}
		p.next()
		p.next()
		if p.isPunct("<") {
			p.skipTypeList(true)
		}
		p.expect("=")
		p.skipType()
		p.semicolon()
		return &TypeDecl{At: t.Pos}
	case "enum":
		if n.Kind != Identifier {
			return nil
		}
		return p.skipEnum(t.Pos)
	case "namespace", "module", "global":
		if n.Kind != Identifier && n.Kind != String && !(t.Value == "global" && n.Value == "{") {
			return nil
		}
		p.next()
		for !p.isPunct("{") && !p.isPunct(";") && p.tok.Kind != EOF && !p.tok.NewlineBefore {
			p.next()
		}
		if p.isPunct("{") {
			p.skipBalanced()
		} else {
			p.semicolon()
		}
		return &TypeDecl{At: t.Pos}
	case "declare":
		if n.Kind != Identifier || n.NewlineBefore {
			return nil
		}
		p.next()
		p.parseStatement()
		return &TypeDecl{At: t.Pos}
	case "abstract":
		if n.Value != "class" {
			return nil
		}
		p.next()
		return &ClassDecl{Class: p.parseClass(true)}
	}
	return nil
}

func (p *parser) skipEnum(at int) Stmt {
	p.next()
	p.ident()
	p.skipBalanced()
	return &TypeDecl{At: at}
}

// skipBalanced skips bracketed token sequence starting at current opening
// bracket, template literals inside are handled.
func (p *parser) skipBalanced() {
	open := p.tok
	var closer string
	switch open.Value {
	case "{":
		closer = "}"
	case "(":
		closer = ")"
	case "[":
		closer = "]"
	default:
		p.fail(open.Pos, "expected bracket, found %s", open)
	}
	p.next()
	for !p.isPunct(closer) {
		switch {
		case p.tok.Kind == EOF:
			p.fail(open.Pos, "unterminated %q", open.Value)
		case p.isPunct("{"), p.isPunct("("), p.isPunct("["):
			p.skipBalanced()
		case p.tok.Kind == TemplateHead:
			p.skipTemplateType()
		default:
			p.next()
		}
	}
	p.next()
}

func (p *parser) skipDecorator() {
	p.expect("@")
	p.parseCallTail(p.parsePrimary(), false)
}
