package jsx

import "fmt"

type Kind int

const (
	Illegal Kind = iota
	EOF
	Identifier  // name or keyword
	PrivateName // #name
	Number      // 42, 0x2a, 1_000n
	String      // "cooked value"
	Template    // `no substitutions`
	TemplateHead
	TemplateMiddle
	TemplateTail
	Regex // /re/flags
	Punct // operators and delimiters
)

var kindNames = [...]string{
	Illegal:        "illegal",
	EOF:            "end of file",
	Identifier:     "identifier",
	PrivateName:    "private name",
	Number:         "number",
	String:         "string",
	Template:       "template",
	TemplateHead:   "template head",
	TemplateMiddle: "template middle",
	TemplateTail:   "template tail",
	Regex:          "regular expression",
	Punct:          "punctuator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit. For strings and template parts Value holds
// cooked text, for everything else it is the source text. For Illegal tokens
// Value is the error message.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
	End   int
	// NewlineBefore is set when a line terminator separates token from the
	// previous one, needed for automatic semicolon insertion.
	NewlineBefore bool
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return t.Kind.String()
	case String:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

// punctuators ordered longest first, scanner takes first match.
var punctuators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@",
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

// binary operator precedence, logical operators included
var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}
