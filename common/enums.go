// The only reason this package exists is because enums are needed both by
// configuration and by the skeleton generator, and the generator must not
// depend on configuration loading. So enums live in a separate package.
package common

//go:generate go tool go-enum --marshal --names

// Selector derivation policy.
// ENUM(simple, full)
type SelectorType int

// Generated stylesheet dialect.
// ENUM(scss, sass)
type Syntax int

func (s Syntax) Ext() string {
	switch s {
	case SyntaxScss:
		return ".scss"
	case SyntaxSass:
		return ".sass"
	default:
		// this should never happen
		panic("unsupported syntax requested")
	}
}

// Braced reports whether blocks of this dialect are delimited with braces.
func (s Syntax) Braced() bool {
	return s == SyntaxScss
}

// Where generated stylesheet goes.
// ENUM(clipboard, preview, file, ask)
type OutputMethod int
