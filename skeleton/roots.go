package skeleton

import (
	"scssx/jsx"
)

// findRoots returns rendering roots in source order. Subtree of a root is
// never searched for other roots, its descendants belong to the root.
func findRoots(prog *jsx.Program) []jsx.Expr {
	var (
		roots []jsx.Expr
		stack []jsx.Node
	)
	jsx.Inspect(prog, func(n jsx.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return false
		}
		if x, ok := n.(jsx.Expr); ok && isMarkup(x) && isRootContext(x, stack) {
			roots = append(roots, x)
			return false
		}
		stack = append(stack, n)
		return true
	})
	return roots
}

// isRootContext checks syntactic parent of element. Elements are roots when
// they are expression statements, returned from functions (arrow concise
// body included), initialize variables, or are assigned. Conditional
// branches and right side of "&&" are transparent.
func isRootContext(x jsx.Expr, stack []jsx.Node) bool {
	var child jsx.Node = x
	for i := len(stack) - 1; i >= 0; i-- {
		switch p := stack[i].(type) {
		case *jsx.ExprStmt:
			return p.X == child
		case *jsx.ReturnStmt:
			return p.X == child
		case *jsx.VarDeclarator:
			return p.Init == child
		case *jsx.AssignExpr:
			return p.Value == child
		case *jsx.FuncLit:
			return p.ExprBody == child
		case *jsx.ExportDecl:
			return p.X == child
		case *jsx.CondExpr:
			if p.Test == child {
				return false
			}
			child = p
		case *jsx.LogicalExpr:
			if p.Op != "&&" || p.Y != child {
				return false
			}
			child = p
		default:
			return false
		}
	}
	return false
}
