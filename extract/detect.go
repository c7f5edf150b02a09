package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"scssx/skeleton"
)

var langByExt = map[string]string{
	".html":  skeleton.LangHTML,
	".htm":   skeleton.LangHTML,
	".xhtml": skeleton.LangHTML,
	".js":    skeleton.LangJavaScript,
	".mjs":   skeleton.LangJavaScript,
	".cjs":   skeleton.LangJavaScript,
	".jsx":   skeleton.LangJavaScriptReact,
	".ts":    skeleton.LangTypeScript,
	".mts":   skeleton.LangTypeScript,
	".cts":   skeleton.LangTypeScript,
	".tsx":   skeleton.LangTypeScriptReact,
}

// sniffing needs only document start
const sniffLen = 512

var markupType = filetype.NewType("html", "text/html")

func init() {
	filetype.AddMatcher(markupType, isMarkupHead)
}

var markupPrefixes = []string{"<!doctype html", "<html", "<head", "<body", "<?xml"}

func isMarkupHead(buf []byte) bool {
	head := bytes.TrimLeft(bytes.TrimPrefix(buf, []byte("\xef\xbb\xbf")), " \t\r\n")
	head = bytes.ToLower(head[:min(len(head), 16)])
	for _, p := range markupPrefixes {
		if bytes.HasPrefix(head, []byte(p)) {
			return true
		}
	}
	return false
}

// langFromName returns language id for known source file extension.
func langFromName(name string) (string, bool) {
	lang, ok := langByExt[strings.ToLower(filepath.Ext(name))]
	return lang, ok
}

// sniffLang guesses language of source with unknown name from its content.
// Markup documents are recognized by their start, other text is treated as
// component source, binary content is not a source at all.
func sniffLang(data []byte) string {
	head := data[:min(len(data), sniffLen)]
	kind, _ := filetype.Match(head)
	switch {
	case kind == markupType:
		return skeleton.LangHTML
	case kind != filetype.Unknown:
		return ""
	case !utf8.Valid(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))) && !utf16BOM(head):
		return ""
	}
	return skeleton.LangTypeScriptReact
}

func utf16BOM(head []byte) bool {
	return bytes.HasPrefix(head, []byte{0xfe, 0xff}) || bytes.HasPrefix(head, []byte{0xff, 0xfe})
}

// detectLang picks language for a source: forced language first, then file
// extension, then content.
func detectLang(forced, name string, data []byte) string {
	if forced != "" {
		return forced
	}
	if lang, ok := langFromName(name); ok {
		return lang
	}
	return sniffLang(data)
}

// isSourceName reports whether batch processing should pick the file up.
func isSourceName(name string) bool {
	_, ok := langFromName(name)
	return ok
}

// isArchiveFile checks both name and content, so renamed archives are
// ignored.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

func isSourceInArchive(f *zip.File) bool {
	return isSourceName(f.FileHeader.Name)
}

// decodeSource normalizes component source to UTF-8 honoring BOM. Markup
// keeps its bytes since charset detection happens during parsing.
func decodeSource(data []byte, lang string) ([]byte, error) {
	if lang == skeleton.LangHTML {
		return data, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}
