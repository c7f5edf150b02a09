package skeleton

import (
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// ClassSet is a set of class names which remembers insertion order. Zero
// value is ready to use.
type ClassSet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

// Add inserts names keeping first occurrence position, empty names are
// dropped.
func (s *ClassSet) Add(names ...string) {
	for _, name := range names {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if s.m == nil {
			s.m = orderedmap.NewOrderedMap[string, struct{}]()
		}
		if !s.m.Has(name) {
			s.m.Set(name, struct{}{})
		}
	}
}

// AddText splits text on runs of whitespace and adds every fragment.
func (s *ClassSet) AddText(text string) {
	s.Add(strings.Fields(text)...)
}

// Merge adds all names from other set.
func (s *ClassSet) Merge(other *ClassSet) {
	if other == nil || other.m == nil {
		return
	}
	for name := range other.m.Keys() {
		s.Add(name)
	}
}

func (s *ClassSet) Has(name string) bool {
	return s.m != nil && s.m.Has(name)
}

func (s *ClassSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Names returns class names in insertion order.
func (s *ClassSet) Names() []string {
	if s.m == nil {
		return nil
	}
	return slices.Collect(s.m.Keys())
}

// ElementInfo is what selector is derived from: tag name, id and classes of a
// single element.
type ElementInfo struct {
	Tag     string
	ID      string
	Classes ClassSet
}

// fallbackTag records element name as its tag. Tag only takes part in full
// selector of elements which have neither id nor classes.
func (info *ElementInfo) fallbackTag(name string) {
	if info.ID == "" && info.Classes.Len() == 0 {
		info.Tag = strings.ToLower(name)
	}
}
