package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented text dump of a tree for debug reports.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: "  ",
	}
}

// WithIndent changes indentation unit.
func (tw *TreeWriter) WithIndent(unit string) *TreeWriter {
	tw.indent = unit
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Node writes node kind followed by its properties given as key/value
// pairs. Properties with empty values are omitted, trailing key without
// value is ignored.
func (tw *TreeWriter) Node(depth int, kind string, props ...string) {
	tw.pad(depth)
	tw.w.WriteString(kind)
	for i := 0; i+1 < len(props); i += 2 {
		if props[i+1] == "" {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(props[i])
		tw.w.WriteByte('=')
		tw.w.WriteString(encodeText(props[i+1]))
	}
	tw.w.WriteByte('\n')
}

func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
