package skeleton

import (
	"strconv"

	"scssx/utils/debug"
)

// Dump returns indented description of generated block tree, it goes into
// debug report next to the rendered text.
func (r *Result) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Node(0, "result",
		"lang", r.Lang,
		"dialect", r.Dialect.String(),
		"top", strconv.Itoa(len(r.Blocks)),
		"total", strconv.Itoa(countBlocks(r.Blocks)))
	dumpBlocks(tw, r.Blocks, 1)
	return tw.String()
}

func dumpBlocks(tw *debug.TreeWriter, blocks []Block, depth int) {
	for _, b := range blocks {
		tw.Node(depth, "block", "selector", b.Selector)
		dumpBlocks(tw, b.Children, depth+1)
	}
}
