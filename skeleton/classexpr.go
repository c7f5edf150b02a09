package skeleton

import (
	"scssx/jsx"
)

// EvalClasses statically enumerates class names class attribute value may
// contribute. Both branches of conditional are taken, for "&&" only right
// operand counts, template literals contribute their static text and
// interpolations are ignored. Anything which cannot be known without
// running the code contributes nothing.
func EvalClasses(n jsx.Node) *ClassSet {
	set := &ClassSet{}
	evalClasses(set, n)
	return set
}

func evalClasses(set *ClassSet, n jsx.Node) {
	switch x := n.(type) {
	case *jsx.StringLit:
		set.AddText(x.Value)
	case *jsx.TemplateLit:
		for _, q := range x.Quasis {
			set.AddText(q)
		}
	case *jsx.CondExpr:
		evalClasses(set, x.Cons)
		evalClasses(set, x.Alt)
	case *jsx.LogicalExpr:
		if x.Op == "&&" {
			evalClasses(set, x.Y)
		}
	case *jsx.ExprContainer:
		if x.X != nil {
			evalClasses(set, x.X)
		}
	case *jsx.ArrayLit:
		for _, el := range x.Elems {
			if el != nil {
				evalClasses(set, el)
			}
		}
	}
}
