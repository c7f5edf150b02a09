package css_test

import (
	"errors"
	"testing"

	parse "github.com/tdewolff/parse/v2"

	"scssx/common"
	"scssx/css"
)

func TestInspect_Braced(t *testing.T) {
	tests := []struct {
		name string
		text string
		want css.Stats
	}{
		{"empty", "", css.Stats{}},
		{"single", ".bar {\n}", css.Stats{Blocks: 1, TopLevel: 1, MaxDepth: 1}},
		{"nested", ".foo {\n  .bar {\n  }\n}", css.Stats{Blocks: 2, TopLevel: 1, MaxDepth: 2}},
		{"siblings", "ul {\n  .item {\n  }\n}\n#foot {\n}", css.Stats{Blocks: 3, TopLevel: 2, MaxDepth: 2}},
		{"compound", "div#main.a.b {\n}", css.Stats{Blocks: 1, TopLevel: 1, MaxDepth: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := css.Inspect(tt.text, common.SyntaxScss)
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Inspect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInspect_BracedErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"unclosed", ".foo {\n  .bar {\n  }\n", 4},
		{"extra closing", ".foo {\n}\n}", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := css.Inspect(tt.text, common.SyntaxScss)
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *parse.Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *parse.Error, got %T", err)
			}
			if line, _, _ := perr.Position(); line != tt.line {
				t.Errorf("error line = %d, want %d", line, tt.line)
			}
		})
	}
}

func TestInspect_Indented(t *testing.T) {
	got, err := css.Inspect(".foo\n  .bar\n    .baz\n  .qux\n.last\n", common.SyntaxSass)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	want := css.Stats{Blocks: 5, TopLevel: 2, MaxDepth: 3}
	if got != want {
		t.Errorf("Inspect() = %+v, want %+v", got, want)
	}
}

func TestInspect_IndentedErrors(t *testing.T) {
	for _, text := range []string{
		".foo\n    .bar",
		".foo\n   .bar",
		"  .foo",
		".foo\n\t.bar",
	} {
		if _, err := css.Inspect(text, common.SyntaxSass); err == nil {
			t.Errorf("Inspect(%q) expected error", text)
		}
	}
}
