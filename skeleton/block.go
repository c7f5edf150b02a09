package skeleton

import (
	"strings"

	"scssx/common"
)

// Block is one selector with nested blocks. Blocks are records, text is
// produced once by Render.
type Block struct {
	Selector string
	Children []Block
}

const indentUnit = "  "

// Render formats blocks in requested syntax. Output of every block ends
// with new line.
func Render(blocks []Block, syntax common.Syntax) string {
	var sb strings.Builder
	for _, b := range blocks {
		renderBlock(&sb, b, 0, syntax)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, b Block, depth int, syntax common.Syntax) {
	indent := strings.Repeat(indentUnit, depth)

	sb.WriteString(indent)
	sb.WriteString(b.Selector)
	if syntax.Braced() {
		sb.WriteString(" {")
	}
	sb.WriteByte('\n')

	for _, c := range b.Children {
		renderBlock(sb, c, depth+1, syntax)
	}

	if syntax.Braced() {
		sb.WriteString(indent)
		sb.WriteString("}\n")
	}
}

// CountTopLevel counts blocks starting at zero indentation in rendered
// text.
func CountTopLevel(text string) int {
	count := 0
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == '}' {
			continue
		}
		count++
	}
	return count
}

func countBlocks(blocks []Block) int {
	n := len(blocks)
	for _, b := range blocks {
		n += countBlocks(b.Children)
	}
	return n
}
