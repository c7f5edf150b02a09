package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func makeZip(t *testing.T, names ...string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "sources.zip")
	out, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(out)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			// directory entries carry no data
			continue
		}
		if _, err := fw.Write([]byte("<div class=\"" + filepath.Base(name) + "\"></div>")); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Failed to close zip file: %v", err)
	}
	return zipPath
}

func walked(t *testing.T, zipPath, prefix string) []string {
	t.Helper()
	var names []string
	err := Walk(zipPath, prefix, func(archive string, f *zip.File) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		names = append(names, f.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return names
}

func TestWalk_NaturalOrder(t *testing.T) {
	zipPath := makeZip(t, "pages/page10.html", "pages/page2.html", "app/Card.jsx", "pages/page1.html", "index.html")

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"app/Card.jsx", "index.html", "pages/page1.html", "pages/page2.html", "pages/page10.html"}},
		{"pages/", []string{"pages/page1.html", "pages/page2.html", "pages/page10.html"}},
		{"app/Card.jsx", []string{"app/Card.jsx"}},
		{"APP/", nil},
		{"missing/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := walked(t, zipPath, tt.prefix); !slices.Equal(got, tt.want) {
				t.Errorf("Walk(%q) visited %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestWalk_SkipsDirectories(t *testing.T) {
	zipPath := makeZip(t, "src/", "src/App.tsx", "src/nested/", "src/nested/List.tsx")
	want := []string{"src/App.tsx", "src/nested/List.tsx"}
	if got := walked(t, zipPath, "src"); !slices.Equal(got, want) {
		t.Errorf("Walk() visited %v, want %v", got, want)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	zipPath := makeZip(t, "a.html", "b.html", "c.html")
	stop := errors.New("stop")

	count := 0
	err := Walk(zipPath, "", func(_ string, _ *zip.File) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 2 {
		t.Errorf("visited %d files, want 2", count)
	}
}

func TestWalk_FileContent(t *testing.T) {
	zipPath := makeZip(t, "card.html")
	err := Walk(zipPath, "", func(_ string, f *zip.File) error {
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if string(data) != `<div class="card.html"></div>` {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
}

func TestWalk_UnsafeEntries(t *testing.T) {
	for _, name := range []string{"../escape.html", "a/../../b.html", "/abs.html"} {
		zipPath := makeZip(t, "ok.html", name)
		err := Walk(zipPath, "", func(string, *zip.File) error { return nil })
		if err == nil {
			t.Errorf("Walk() with entry %q expected error", name)
		}
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk(filepath.Join(t.TempDir(), "none.zip"), "", nil); err == nil {
		t.Error("expected error for missing archive")
	}

	bad := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(bad, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(bad, "", nil); err == nil {
		t.Error("expected error for corrupted archive")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"a.html":            true,
		"dir/b.jsx":         true,
		"dir/..name/c.tsx":  true,
		"../x":              false,
		"a/../b":            false,
		"/root/x":           false,
		`\windows\x`:        false,
	}
	for name, want := range tests {
		if got := isSafePath(name); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", name, got, want)
		}
	}
}
