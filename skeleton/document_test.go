package skeleton_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2"
	"go.uber.org/zap/zaptest"

	"scssx/common"
	"scssx/skeleton"
)

func generate(t *testing.T, src, lang string, style common.SelectorType, syntax common.Syntax) *skeleton.Result {
	t.Helper()
	g := skeleton.New(skeleton.Options{Selector: style, Syntax: syntax}, zaptest.NewLogger(t))
	res, err := g.Generate([]byte(src), lang)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		lang  string
		style common.SelectorType
		want  string
		count int
	}{
		{
			name:  "nested markup full",
			src:   `<div class="foo"><span class="bar"></span></div>`,
			lang:  skeleton.LangHTML,
			style: common.SelectorTypeFull,
			want:  ".foo {\n  .bar {\n  }\n}",
			count: 1,
		},
		{
			name:  "classless ancestor simple",
			src:   `<div><span class="bar"></span></div>`,
			lang:  skeleton.LangHTML,
			style: common.SelectorTypeSimple,
			want:  ".bar {\n}",
			count: 1,
		},
		{
			name:  "classless ancestor full",
			src:   `<div><span class="bar"></span></div>`,
			lang:  skeleton.LangHTML,
			style: common.SelectorTypeFull,
			want:  "div {\n  .bar {\n  }\n}",
			count: 1,
		},
		{
			name:  "map callback",
			src:   `<ul>{items.map(i => <li className="item">{i}</li>)}</ul>`,
			lang:  skeleton.LangJavaScriptReact,
			style: common.SelectorTypeFull,
			want:  "ul {\n  .item {\n  }\n}",
			count: 1,
		},
		{
			name:  "conditional class",
			src:   `<div className={cond ? 'a' : 'b'}></div>`,
			lang:  skeleton.LangTypeScriptReact,
			style: common.SelectorTypeSimple,
			want:  ".a.b {\n}",
			count: 1,
		},
		{
			name:  "conditional class full",
			src:   `<div className={cond ? 'a' : 'b'}></div>`,
			lang:  skeleton.LangJavaScript,
			style: common.SelectorTypeFull,
			want:  ".a.b {\n}",
			count: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, tt.src, tt.lang, tt.style, common.SyntaxScss)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.count, res.Count)
		})
	}
}

func TestGenerate_ParseError(t *testing.T) {
	g := skeleton.New(skeleton.Options{}, nil)
	res, err := g.Generate([]byte("const x = <div>\n  <span className=\"a\"></span>\n"), skeleton.LangJavaScriptReact)
	require.Error(t, err)
	assert.Nil(t, res)

	var perr *skeleton.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, skeleton.LangJavaScriptReact, perr.Lang)

	var lexErr *parse.Error
	assert.True(t, errors.As(err, &lexErr), "underlying position is kept")
}

func TestGenerate_Unsupported(t *testing.T) {
	g := skeleton.New(skeleton.Options{}, nil)
	for _, lang := range []string{"python", "css", ""} {
		res, err := g.Generate([]byte(`<div class="a"></div>`), lang)
		assert.Nil(t, res)
		var uerr *skeleton.UnsupportedDialectError
		require.True(t, errors.As(err, &uerr), "lang %q", lang)
		assert.Equal(t, lang, uerr.Lang)
	}
}

func TestDialectOf(t *testing.T) {
	for lang, want := range map[string]skeleton.Dialect{
		"html":            skeleton.DialectMarkup,
		"javascript":      skeleton.DialectComponent,
		"javascriptreact": skeleton.DialectComponent,
		"typescript":      skeleton.DialectComponent,
		"typescriptreact": skeleton.DialectComponent,
	} {
		got, err := skeleton.DialectOf(lang)
		require.NoError(t, err)
		assert.Equal(t, want, got, lang)
	}
	assert.Equal(t, "markup", skeleton.DialectMarkup.String())
	assert.Equal(t, "component", skeleton.DialectComponent.String())
}

func TestGenerate_NothingFound(t *testing.T) {
	g := skeleton.New(skeleton.Options{Selector: common.SelectorTypeSimple}, zaptest.NewLogger(t))
	for src, lang := range map[string]string{
		`<div><p>text</p></div>`:              skeleton.LangHTML,
		``:                                    skeleton.LangHTML,
		`const n = 1; function f() {}`:        skeleton.LangJavaScript,
		`export const C = () => <div>x</div>`: skeleton.LangJavaScriptReact,
	} {
		res, err := g.Generate([]byte(src), lang)
		assert.Nil(t, res, src)
		assert.ErrorIs(t, err, skeleton.ErrNothingFound, src)
	}
}

func TestGenerate_EmptyMarkup(t *testing.T) {
	g := skeleton.New(skeleton.Options{}, zaptest.NewLogger(t))
	for _, src := range []string{"", "  \n\t", "\xef\xbb\xbf", "<!-- nothing -->"} {
		res, err := g.Generate([]byte(src), skeleton.LangHTML)
		assert.Nil(t, res, "%q", src)
		assert.ErrorIs(t, err, skeleton.ErrNothingFound, "%q", src)

		var perr *skeleton.ParseError
		assert.False(t, errors.As(err, &perr), "%q reported as parse error", src)
	}
}

func TestGenerate_MarkupCharset(t *testing.T) {
	src := "<html><head><meta charset=\"windows-1252\"></head><body><p class=\"caf\xe9\"></p></body></html>"
	res := generate(t, src, skeleton.LangHTML, common.SelectorTypeSimple, common.SyntaxScss)
	assert.Equal(t, ".caf\u00e9 {\n}", res.Text)
}

func TestGenerate_UnusualClassNames(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		lang   string
		syntax common.Syntax
		want   string
	}{
		{"closing brace", `<div class="a}b"></div>`, skeleton.LangHTML, common.SyntaxScss, ".a}b {\n}"},
		{"opening brace", `<div className="a{b" />`, skeleton.LangJavaScriptReact, common.SyntaxScss, ".a{b {\n}"},
		{"double quote", `<div class='x"y'><span class="c"></span></div>`, skeleton.LangHTML, common.SyntaxScss, ".x\"y {\n  .c {\n  }\n}"},
		{"single quote", `<div class="a'b"><span class="c"></span></div>`, skeleton.LangHTML, common.SyntaxScss, ".a'b {\n  .c {\n  }\n}"},
		{"utility classes", `<div class="w-1/2 hover:bg-[#fff]"></div>`, skeleton.LangHTML, common.SyntaxScss, ".w-1/2.hover:bg-[#fff] {\n}"},
		{"sass brace", `<div class="a}b"><i class="c"></i></div>`, skeleton.LangHTML, common.SyntaxSass, ".a}b\n  .c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, tt.src, tt.lang, common.SelectorTypeSimple, tt.syntax)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, 1, res.Count)
		})
	}
}

func TestGenerate_Sass(t *testing.T) {
	res := generate(t, `<div class="foo"><span class="bar"></span></div><p id="x"></p>`,
		skeleton.LangHTML, common.SelectorTypeSimple, common.SyntaxSass)
	assert.Equal(t, ".foo\n  .bar\n#x", res.Text)
	assert.Equal(t, 2, res.Count)
}

func TestGenerate_Markup(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "duplicates and whitespace",
			src:  `<div class="  a b a "></div>`,
			want: ".a.b {\n}",
		},
		{
			name: "document order and flattening",
			src:  `<section><div class="a"></div><div><span class="b"></span></div></section><div class="c"></div>`,
			want: ".a {\n}\n.b {\n}\n.c {\n}",
		},
		{
			name: "head ignored",
			src:  `<html><head><title class="x">t</title></head><body><main id="m"><p class="p"></p></main></body></html>`,
			want: "#m {\n  .p {\n  }\n}",
		},
		{
			name: "comments and text",
			src:  "<!-- <div class=\"hidden\"></div> -->\n<div class=\"shown\">text</div>",
			want: ".shown {\n}",
		},
		{
			name: "fragment without body",
			src:  `<li class="one"></li><li class="two"><a class="three" href="#"></a></li>`,
			want: ".one {\n}\n.two {\n  .three {\n  }\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, tt.src, skeleton.LangHTML, common.SelectorTypeSimple, common.SyntaxScss)
			assert.Equal(t, tt.want, res.Text)
		})
	}
}

func TestGenerate_Roots(t *testing.T) {
	src := `
function Page() {
  return (
    <div className="top">
      <h1 className="title">Hi</h1>
    </div>
  );
}
const A = <span className="a" />;
x = <i className="b" />;
export default () => <footer id="foot" />;
call(<b className="arg" />);
`
	res := generate(t, src, skeleton.LangJavaScriptReact, common.SelectorTypeSimple, common.SyntaxScss)
	assert.Equal(t, ".top {\n  .title {\n  }\n}\n.a {\n}\n.b {\n}\n#foot {\n}", res.Text)
	assert.Equal(t, 4, res.Count)
}

func TestGenerate_RootsConditional(t *testing.T) {
	src := `
const Status = ({ ok }) => ok ? <p className="good" /> : <p className="bad" />;
const Hint = ({ show }) => show && <em className="hint" />;
`
	res := generate(t, src, skeleton.LangJavaScriptReact, common.SelectorTypeSimple, common.SyntaxScss)
	assert.Equal(t, ".good {\n}\n.bad {\n}\n.hint {\n}", res.Text)
}

func TestGenerate_ChildExpressions(t *testing.T) {
	src := `
const v = (
  <div className="wrap">
    {open ? <p className="on" /> : <p className="off" />}
    {show && <em className="hint" />}
    {[<b className="x" />, <i className="y" />]}
    <>
      <span className="frag" />
    </>
    {label}
  </div>
);
`
	res := generate(t, src, skeleton.LangJavaScriptReact, common.SelectorTypeSimple, common.SyntaxScss)
	want := ".wrap {\n" +
		"  .on {\n  }\n" +
		"  .off {\n  }\n" +
		"  .hint {\n  }\n" +
		"  .x {\n  }\n" +
		"  .y {\n  }\n" +
		"  .frag {\n  }\n" +
		"}"
	assert.Equal(t, want, res.Text)
	assert.Equal(t, 1, res.Count)
}

func TestGenerate_MapBlockBody(t *testing.T) {
	src := `
function List({ rows }: { rows: Row[] }) {
  return <table className="grid">{rows.map((r) => {
    if (r.empty) {
      return <tr className="empty" />;
    }
    const cell = () => <td className="nested" />;
    return <tr className="row" />;
  })}</table>;
}
`
	res := generate(t, src, skeleton.LangTypeScriptReact, common.SelectorTypeSimple, common.SyntaxScss)
	assert.Equal(t, ".grid {\n  .empty {\n  }\n  .row {\n  }\n}", res.Text)
}

func TestGenerate_ComponentAttributes(t *testing.T) {
	src := "<main id=\"app\" className=\"shell\">" +
		"<div className={`card ${size}`} />" +
		"<div id={'panel'} />" +
		"<Foo.Bar />" +
		"</main>"

	res := generate(t, src, skeleton.LangJavaScriptReact, common.SelectorTypeSimple, common.SyntaxScss)
	assert.Equal(t, "#app {\n  .card {\n  }\n  #panel {\n  }\n}", res.Text)

	res = generate(t, src, skeleton.LangJavaScriptReact, common.SelectorTypeFull, common.SyntaxScss)
	assert.Equal(t, "#app.shell {\n  .card {\n  }\n  #panel {\n  }\n  foo.bar {\n  }\n}", res.Text)
}

func TestResult_Dump(t *testing.T) {
	res := generate(t, `<div class="foo"><span class="bar"></span></div>`,
		skeleton.LangHTML, common.SelectorTypeFull, common.SyntaxScss)
	want := `result lang="html" dialect="markup" top="1" total="2"` + "\n" +
		`  block selector=".foo"` + "\n" +
		`    block selector=".bar"` + "\n"
	assert.Equal(t, want, res.Dump())
}
