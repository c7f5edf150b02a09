package jsx

// Node is implemented by every syntax tree node. Pos is byte offset of the
// node start in source.
type Node interface {
	Pos() int
}

// Expr is any expression, JSX elements and fragments included.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement or declaration.
type Stmt interface {
	Node
	stmtNode()
}

// Child can appear between opening and closing JSX tags: *Element,
// *Fragment, *Text, *ExprContainer or *SpreadChild.
type Child interface {
	Node
	childNode()
}

// Attr is *Attribute or *SpreadAttribute.
type Attr interface {
	Node
	attrNode()
}

// Expressions.

type (
	Ident struct {
		At   int
		Name string
	}

	StringLit struct {
		At    int
		Value string
	}

	NumberLit struct {
		At  int
		Raw string
	}

	// TemplateLit holds cooked quasis, len(Quasis) == len(Exprs)+1.
	TemplateLit struct {
		At     int
		Quasis []string
		Exprs  []Expr
	}

	TaggedTemplate struct {
		Tag   Expr
		Quasi *TemplateLit
	}

	RegexLit struct {
		At  int
		Raw string
	}

	// ArrayLit elements are nil for holes.
	ArrayLit struct {
		At    int
		Elems []Expr
	}

	// ObjectLit properties are *Property or *SpreadElem.
	ObjectLit struct {
		At    int
		Props []Node
	}

	Property struct {
		Key      Expr
		Value    Expr // nil for methods and accessors
		Method   *FuncLit
		Computed bool
	}

	// FuncLit covers function expressions, arrow functions and methods.
	// Arrow functions with concise body have ExprBody set and Body nil.
	FuncLit struct {
		At        int
		Name      *Ident
		Params    []Expr
		Body      *BlockStmt
		ExprBody  Expr
		Arrow     bool
		Async     bool
		Generator bool
	}

	ClassLit struct {
		At      int
		Name    *Ident
		Super   Expr
		Members []*ClassMember
	}

	ClassMember struct {
		Key      Expr
		Static   bool
		Computed bool
		Value    Expr     // field initializer
		Method   *FuncLit // methods, accessors, constructor
		Block    *BlockStmt
	}

	CallExpr struct {
		Callee   Expr
		Args     []Expr
		Optional bool
	}

	NewExpr struct {
		At     int
		Callee Expr
		Args   []Expr
	}

	// MemberExpr is a.b, a?.b, a[b] or a?.[b].
	MemberExpr struct {
		Object   Expr
		Prop     Expr
		Computed bool
		Optional bool
	}

	CondExpr struct {
		Test Expr
		Cons Expr
		Alt  Expr
	}

	// LogicalExpr is &&, || or ??.
	LogicalExpr struct {
		Op string
		X  Expr
		Y  Expr
	}

	BinaryExpr struct {
		Op string
		X  Expr
		Y  Expr
	}

	UnaryExpr struct {
		At int
		Op string
		X  Expr
	}

	UpdateExpr struct {
		At     int
		Op     string
		Prefix bool
		X      Expr
	}

	AssignExpr struct {
		Op     string
		Target Expr
		Value  Expr
	}

	SeqExpr struct {
		List []Expr
	}

	SpreadElem struct {
		At int
		X  Expr
	}

	// AssignPattern is default value in destructuring or parameter list.
	AssignPattern struct {
		Target Expr
		Value  Expr
	}

	YieldExpr struct {
		At       int
		X        Expr
		Delegate bool
	}

	AwaitExpr struct {
		At int
		X  Expr
	}

	ThisExpr struct {
		At int
	}

	SuperExpr struct {
		At int
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		At   int
		Meta string
		Prop string
	}

	ImportCall struct {
		At  int
		Arg Expr
	}

	Element struct {
		At          int
		Name        string
		Attrs       []Attr
		Children    []Child
		SelfClosing bool
	}

	Fragment struct {
		At       int
		Children []Child
	}
)

// JSX specific nodes.

type (
	Text struct {
		At    int
		Value string
	}

	// ExprContainer is {expression}, X is nil for empty container.
	ExprContainer struct {
		At int
		X  Expr
	}

	SpreadChild struct {
		At int
		X  Expr
	}

	// Attribute value is nil for bare attributes, otherwise *StringLit,
	// *ExprContainer, *Element or *Fragment.
	Attribute struct {
		At    int
		Name  string
		Value Node
	}

	SpreadAttribute struct {
		At int
		X  Expr
	}
)

// Statements.

type (
	Program struct {
		Body []Stmt
	}

	ExprStmt struct {
		X Expr
	}

	VarDecl struct {
		At   int
		Kind string // var, let, const, using
		List []*VarDeclarator
	}

	VarDeclarator struct {
		Target Expr
		Init   Expr
	}

	FuncDecl struct {
		Func *FuncLit
	}

	ClassDecl struct {
		Class *ClassLit
	}

	ReturnStmt struct {
		At int
		X  Expr
	}

	IfStmt struct {
		At   int
		Test Expr
		Cons Stmt
		Alt  Stmt
	}

	BlockStmt struct {
		At   int
		List []Stmt
	}

	ForStmt struct {
		At     int
		Init   Node // Stmt or Expr
		Test   Expr
		Update Expr
		Body   Stmt
	}

	ForInStmt struct {
		At    int
		Of    bool
		Left  Node // *VarDecl or Expr
		Right Expr
		Body  Stmt
	}

	WhileStmt struct {
		At   int
		Test Expr
		Body Stmt
	}

	DoWhileStmt struct {
		At   int
		Body Stmt
		Test Expr
	}

	SwitchStmt struct {
		At    int
		Tag   Expr
		Cases []*CaseClause
	}

	CaseClause struct {
		At   int
		Test Expr // nil for default
		Body []Stmt
	}

	TryStmt struct {
		At      int
		Block   *BlockStmt
		Param   Expr
		Handler *BlockStmt
		Final   *BlockStmt
	}

	ThrowStmt struct {
		At int
		X  Expr
	}

	// BranchStmt is break or continue.
	BranchStmt struct {
		At    int
		Tok   string
		Label string
	}

	EmptyStmt struct {
		At int
	}

	LabeledStmt struct {
		Label *Ident
		Body  Stmt
	}

	ImportDecl struct {
		At     int
		Source string
	}

	// ExportDecl covers all export forms: Decl for exported declarations,
	// X for export default expressions.
	ExportDecl struct {
		At      int
		Default bool
		Decl    Stmt
		X       Expr
	}

	// TypeDecl stands for skipped TypeScript only declarations.
	TypeDecl struct {
		At int
	}
)

func (x *Ident) Pos() int          { return x.At }
func (x *StringLit) Pos() int      { return x.At }
func (x *NumberLit) Pos() int      { return x.At }
func (x *TemplateLit) Pos() int    { return x.At }
func (x *TaggedTemplate) Pos() int { return x.Tag.Pos() }
func (x *RegexLit) Pos() int       { return x.At }
func (x *ArrayLit) Pos() int       { return x.At }
func (x *ObjectLit) Pos() int      { return x.At }
func (x *Property) Pos() int       { return x.Key.Pos() }
func (x *FuncLit) Pos() int        { return x.At }
func (x *ClassLit) Pos() int       { return x.At }
func (x *ClassMember) Pos() int    { return x.Key.Pos() }
func (x *CallExpr) Pos() int       { return x.Callee.Pos() }
func (x *NewExpr) Pos() int        { return x.At }
func (x *MemberExpr) Pos() int     { return x.Object.Pos() }
func (x *CondExpr) Pos() int       { return x.Test.Pos() }
func (x *LogicalExpr) Pos() int    { return x.X.Pos() }
func (x *BinaryExpr) Pos() int     { return x.X.Pos() }
func (x *UnaryExpr) Pos() int      { return x.At }
func (x *UpdateExpr) Pos() int     { return x.At }
func (x *AssignExpr) Pos() int     { return x.Target.Pos() }
func (x *SeqExpr) Pos() int        { return x.List[0].Pos() }
func (x *SpreadElem) Pos() int     { return x.At }
func (x *AssignPattern) Pos() int  { return x.Target.Pos() }
func (x *YieldExpr) Pos() int      { return x.At }
func (x *AwaitExpr) Pos() int      { return x.At }
func (x *ThisExpr) Pos() int       { return x.At }
func (x *SuperExpr) Pos() int      { return x.At }
func (x *MetaProperty) Pos() int   { return x.At }
func (x *ImportCall) Pos() int     { return x.At }
func (x *Element) Pos() int        { return x.At }
func (x *Fragment) Pos() int       { return x.At }

func (x *Text) Pos() int            { return x.At }
func (x *ExprContainer) Pos() int   { return x.At }
func (x *SpreadChild) Pos() int     { return x.At }
func (x *Attribute) Pos() int       { return x.At }
func (x *SpreadAttribute) Pos() int { return x.At }

func (s *Program) Pos() int       { return 0 }
func (s *ExprStmt) Pos() int      { return s.X.Pos() }
func (s *VarDecl) Pos() int       { return s.At }
func (s *VarDeclarator) Pos() int { return s.Target.Pos() }
func (s *FuncDecl) Pos() int      { return s.Func.At }
func (s *ClassDecl) Pos() int     { return s.Class.At }
func (s *ReturnStmt) Pos() int    { return s.At }
func (s *IfStmt) Pos() int        { return s.At }
func (s *BlockStmt) Pos() int     { return s.At }
func (s *ForStmt) Pos() int       { return s.At }
func (s *ForInStmt) Pos() int     { return s.At }
func (s *WhileStmt) Pos() int     { return s.At }
func (s *DoWhileStmt) Pos() int   { return s.At }
func (s *SwitchStmt) Pos() int    { return s.At }
func (s *CaseClause) Pos() int    { return s.At }
func (s *TryStmt) Pos() int       { return s.At }
func (s *ThrowStmt) Pos() int     { return s.At }
func (s *BranchStmt) Pos() int    { return s.At }
func (s *EmptyStmt) Pos() int     { return s.At }
func (s *LabeledStmt) Pos() int   { return s.Label.At }
func (s *ImportDecl) Pos() int    { return s.At }
func (s *ExportDecl) Pos() int    { return s.At }
func (s *TypeDecl) Pos() int      { return s.At }

func (*Ident) exprNode()          {}
func (*StringLit) exprNode()      {}
func (*NumberLit) exprNode()      {}
func (*TemplateLit) exprNode()    {}
func (*TaggedTemplate) exprNode() {}
func (*RegexLit) exprNode()       {}
func (*ArrayLit) exprNode()       {}
func (*ObjectLit) exprNode()      {}
func (*FuncLit) exprNode()        {}
func (*ClassLit) exprNode()       {}
func (*CallExpr) exprNode()       {}
func (*NewExpr) exprNode()        {}
func (*MemberExpr) exprNode()     {}
func (*CondExpr) exprNode()       {}
func (*LogicalExpr) exprNode()    {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*UpdateExpr) exprNode()     {}
func (*AssignExpr) exprNode()     {}
func (*SeqExpr) exprNode()        {}
func (*SpreadElem) exprNode()     {}
func (*AssignPattern) exprNode()  {}
func (*YieldExpr) exprNode()      {}
func (*AwaitExpr) exprNode()      {}
func (*ThisExpr) exprNode()       {}
func (*SuperExpr) exprNode()      {}
func (*MetaProperty) exprNode()   {}
func (*ImportCall) exprNode()     {}
func (*Element) exprNode()        {}
func (*Fragment) exprNode()       {}

func (*Element) childNode()       {}
func (*Fragment) childNode()      {}
func (*Text) childNode()          {}
func (*ExprContainer) childNode() {}
func (*SpreadChild) childNode()   {}

func (*Attribute) attrNode()       {}
func (*SpreadAttribute) attrNode() {}

func (*ExprStmt) stmtNode()    {}
func (*VarDecl) stmtNode()     {}
func (*FuncDecl) stmtNode()    {}
func (*ClassDecl) stmtNode()   {}
func (*ReturnStmt) stmtNode()  {}
func (*IfStmt) stmtNode()      {}
func (*BlockStmt) stmtNode()   {}
func (*ForStmt) stmtNode()     {}
func (*ForInStmt) stmtNode()   {}
func (*WhileStmt) stmtNode()   {}
func (*DoWhileStmt) stmtNode() {}
func (*SwitchStmt) stmtNode()  {}
func (*TryStmt) stmtNode()     {}
func (*ThrowStmt) stmtNode()   {}
func (*BranchStmt) stmtNode()  {}
func (*EmptyStmt) stmtNode()   {}
func (*LabeledStmt) stmtNode() {}
func (*ImportDecl) stmtNode()  {}
func (*ExportDecl) stmtNode()  {}
func (*TypeDecl) stmtNode()    {}
