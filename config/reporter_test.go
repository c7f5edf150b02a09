package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	arc, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer arc.Close()

	members := make(map[string]string)
	for _, f := range arc.File {
		r, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		members[f.Name] = string(data)
	}
	return members
}

func TestReport_StoreAndClose(t *testing.T) {
	tmpDir := t.TempDir()
	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	out := filepath.Join(tmpDir, "index.scss")
	if err := os.WriteFile(out, []byte(".foo {\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write result: %v", err)
	}

	r.StoreData("sources/001-index.html", []byte(`<div class="foo"></div>`))
	r.StoreData("trees/001-index.html.txt", []byte("block selector=\".foo\"\n"))
	r.Store("results/001-index.html.scss", out)
	r.Store("results/001-index.html.scss", out)
	r.Store("final.log", filepath.Join(tmpDir, "missing.log"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	members := readReport(t, conf.Destination)
	want := map[string]string{
		"sources/001-index.html":      `<div class="foo"></div>`,
		"trees/001-index.html.txt":    "block selector=\".foo\"\n",
		"results/001-index.html.scss": ".foo {\n}\n",
	}
	for name, content := range want {
		if got, ok := members[name]; !ok || got != content {
			t.Errorf("member %s = %q, want %q", name, got, content)
		}
	}
	if _, ok := members["final.log"]; ok {
		t.Error("missing file should not be added to report")
	}

	lines := strings.Split(strings.TrimSpace(members["MANIFEST"]), "\n")
	var names []string
	for _, l := range lines {
		fields := strings.Split(l, "\t")
		if len(fields) != 3 {
			t.Fatalf("malformed manifest line %q", l)
		}
		names = append(names, fields[1])
	}
	wantNames := []string{"sources/001-index.html", "trees/001-index.html.txt", "results/001-index.html.scss", "final.log"}
	if !slices.Equal(names, wantNames) {
		t.Errorf("manifest order = %v, want %v", names, wantNames)
	}
}

func TestReport_Prepare_FallbackToTemp(t *testing.T) {
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "missing", "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	name := r.Name()
	defer os.Remove(name)

	if name == "" || filepath.Dir(name) == filepath.Dir(conf.Destination) {
		t.Errorf("report was not redirected, name = %q", name)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, ok := readReport(t, name)["MANIFEST"]; !ok {
		t.Error("redirected report has no manifest")
	}
}

func TestReport_DuplicatesPanic(t *testing.T) {
	tests := map[string]func(r *Report){
		"data": func(r *Report) {
			r.StoreData("x", []byte("1"))
			r.StoreData("x", []byte("2"))
		},
		"file": func(r *Report) {
			r.Store("x", "a.log")
			r.Store("x", "b.log")
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
			r, err := conf.Prepare()
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			defer r.Close()

			defer func() {
				if recover() == nil {
					t.Error("expected panic on duplicate member")
				}
			}()
			fn(r)
		})
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// all methods are safe on nil report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Errorf("Name on nil report = %q, want empty", r.Name())
	}
}
