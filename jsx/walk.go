package jsx

import "fmt"

// Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

func walkList[N Node](v Visitor, list []N) {
	for _, n := range list {
		walkOpt(v, n)
	}
}

// walkOpt skips absent optional nodes, including typed nil pointers stored
// in interfaces.
func walkOpt(v Visitor, n Node) {
	switch x := n.(type) {
	case nil:
		return
	case *Ident:
		if x == nil {
			return
		}
	case *BlockStmt:
		if x == nil {
			return
		}
	case *FuncLit:
		if x == nil {
			return
		}
	case *TemplateLit:
		if x == nil {
			return
		}
	}
	Walk(v, n)
}

// Walk traverses syntax tree in depth-first order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Ident, *StringLit, *NumberLit, *RegexLit, *ThisExpr, *SuperExpr, *MetaProperty,
		*Text, *BranchStmt, *EmptyStmt, *ImportDecl, *TypeDecl:
		// leaves

	case *TemplateLit:
		walkList(v, n.Exprs)
	case *TaggedTemplate:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *ArrayLit:
		walkList(v, n.Elems)
	case *ObjectLit:
		walkList(v, n.Props)
	case *Property:
		Walk(v, n.Key)
		walkOpt(v, n.Value)
		walkOpt(v, n.Method)
	case *FuncLit:
		walkOpt(v, n.Name)
		walkList(v, n.Params)
		walkOpt(v, n.Body)
		walkOpt(v, n.ExprBody)
	case *ClassLit:
		walkOpt(v, n.Name)
		walkOpt(v, n.Super)
		walkList(v, n.Members)
	case *ClassMember:
		Walk(v, n.Key)
		walkOpt(v, n.Value)
		walkOpt(v, n.Method)
		walkOpt(v, n.Block)
	case *CallExpr:
		Walk(v, n.Callee)
		walkList(v, n.Args)
	case *NewExpr:
		Walk(v, n.Callee)
		walkList(v, n.Args)
	case *MemberExpr:
		Walk(v, n.Object)
		Walk(v, n.Prop)
	case *CondExpr:
		Walk(v, n.Test)
		Walk(v, n.Cons)
		Walk(v, n.Alt)
	case *LogicalExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *BinaryExpr:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *UnaryExpr:
		Walk(v, n.X)
	case *UpdateExpr:
		Walk(v, n.X)
	case *AssignExpr:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *SeqExpr:
		walkList(v, n.List)
	case *SpreadElem:
		Walk(v, n.X)
	case *AssignPattern:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *YieldExpr:
		walkOpt(v, n.X)
	case *AwaitExpr:
		Walk(v, n.X)
	case *ImportCall:
		Walk(v, n.Arg)
	case *Element:
		walkList(v, n.Attrs)
		walkList(v, n.Children)
	case *Fragment:
		walkList(v, n.Children)
	case *ExprContainer:
		walkOpt(v, n.X)
	case *SpreadChild:
		Walk(v, n.X)
	case *Attribute:
		walkOpt(v, n.Value)
	case *SpreadAttribute:
		Walk(v, n.X)

	case *Program:
		walkList(v, n.Body)
	case *ExprStmt:
		Walk(v, n.X)
	case *VarDecl:
		walkList(v, n.List)
	case *VarDeclarator:
		Walk(v, n.Target)
		walkOpt(v, n.Init)
	case *FuncDecl:
		Walk(v, n.Func)
	case *ClassDecl:
		Walk(v, n.Class)
	case *ReturnStmt:
		walkOpt(v, n.X)
	case *IfStmt:
		Walk(v, n.Test)
		Walk(v, n.Cons)
		walkOpt(v, n.Alt)
	case *BlockStmt:
		walkList(v, n.List)
	case *ForStmt:
		walkOpt(v, n.Init)
		walkOpt(v, n.Test)
		walkOpt(v, n.Update)
		Walk(v, n.Body)
	case *ForInStmt:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *WhileStmt:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *SwitchStmt:
		Walk(v, n.Tag)
		walkList(v, n.Cases)
	case *CaseClause:
		walkOpt(v, n.Test)
		walkList(v, n.Body)
	case *TryStmt:
		Walk(v, n.Block)
		walkOpt(v, n.Param)
		walkOpt(v, n.Handler)
		walkOpt(v, n.Final)
	case *ThrowStmt:
		Walk(v, n.X)
	case *LabeledStmt:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *ExportDecl:
		walkOpt(v, n.Decl)
		walkOpt(v, n.X)

	default:
		panic(fmt.Sprintf("jsx.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses syntax tree in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a call
// of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
