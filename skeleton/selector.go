package skeleton

import (
	"strings"

	"scssx/common"
)

// ResolveSelector produces selector for element or reports its absence.
//
// Simple style uses id when present, otherwise all classes. Full style
// concatenates tag, id and classes in that order, omitting whatever is
// missing.
func ResolveSelector(info *ElementInfo, style common.SelectorType) (string, bool) {
	var sb strings.Builder

	id := strings.TrimSpace(info.ID)
	switch style {
	case common.SelectorTypeSimple:
		if id != "" {
			sb.WriteString("#" + id)
			break
		}
		writeClasses(&sb, info)
	case common.SelectorTypeFull:
		sb.WriteString(strings.TrimSpace(info.Tag))
		if id != "" {
			sb.WriteString("#" + id)
		}
		writeClasses(&sb, info)
	}

	sel := sb.String()
	if sel == "" || sel == "." {
		return "", false
	}
	return sel, true
}

func writeClasses(sb *strings.Builder, info *ElementInfo) {
	for _, name := range info.Classes.Names() {
		sb.WriteByte('.')
		sb.WriteString(name)
	}
}
