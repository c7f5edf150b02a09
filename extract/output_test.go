package extract

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"scssx/common"
	"scssx/skeleton"
)

func fakeTerminal(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(io.Reader) bool { return true }
	t.Cleanup(func() { isTerminal = old })
}

func TestAskMethod(t *testing.T) {
	fakeTerminal(t)

	tests := []struct {
		answer  string
		want    common.OutputMethod
		wantErr bool
	}{
		{"\n", common.OutputMethodClipboard, false},
		{"", common.OutputMethodClipboard, false},
		{"1\n", common.OutputMethodClipboard, false},
		{"2\n", common.OutputMethodPreview, false},
		{" 3 \n", common.OutputMethodFile, false},
		{"File\n", common.OutputMethodFile, false},
		{"ask\n", 0, true},
		{"4\n", 0, true},
		{"printer\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			_, env, _ := setupTestEnv(t)
			env.Stdin = strings.NewReader(tt.answer)

			got, err := askMethod(env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("askMethod() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("askMethod() = %s, want %s", got, tt.want)
			}
			if prompt := env.Stderr.(interface{ String() string }).String(); !strings.Contains(prompt, "3) file") {
				t.Errorf("prompt = %q", prompt)
			}
		})
	}
}

func TestAskMethod_NoTerminal(t *testing.T) {
	_, env, _ := setupTestEnv(t)
	got, err := askMethod(env)
	if err != nil {
		t.Fatalf("askMethod() error = %v", err)
	}
	if got != common.OutputMethodPreview {
		t.Errorf("askMethod() = %s, want preview", got)
	}
}

func TestDeliver_AskFile(t *testing.T) {
	fakeTerminal(t)
	_, env, out := setupTestEnv(t)
	env.Stdin = strings.NewReader("3\n")
	dst := t.TempDir()

	res := &skeleton.Result{Lang: skeleton.LangHTML, Text: ".a {\n}", Count: 1}
	to, err := deliver(env, res, "dir/page.html", dst, "results/001-page.html", common.OutputMethodAsk, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("deliver() error = %v", err)
	}
	want := filepath.Join(dst, "dir", "page.scss")
	if to != want {
		t.Errorf("deliver() = %s, want %s", to, want)
	}
	if got := readOutput(t, want); got != ".a {\n}\n" {
		t.Errorf("output = %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected preview %q", out.String())
	}
}

func TestDeliver_Unsupported(t *testing.T) {
	_, env, _ := setupTestEnv(t)
	res := &skeleton.Result{Text: ".a {\n}"}
	if _, err := deliver(env, res, "a.html", t.TempDir(), "r", common.OutputMethod(42), zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestWriteFile(t *testing.T) {
	log := zaptest.NewLogger(t)
	name := filepath.Join(t.TempDir(), "nested", "deeper", "out.scss")

	if err := writeFile(name, "one\n", false, log); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	if err := writeFile(name, "two\n", false, log); err == nil {
		t.Error("expected error for existing file")
	}
	if err := writeFile(name, "two\n", true, log); err != nil {
		t.Fatalf("writeFile() overwrite error = %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two\n" {
		t.Errorf("content = %q", data)
	}
}
