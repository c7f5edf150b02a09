package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"scssx/config"
	"scssx/state"
)

// Values holds variables available to output name template.
type Values struct {
	Context string
	// Name is source base name without extension
	Name   string
	Dir    string
	Lang   string
	Syntax string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildOutputPath returns stylesheet path for source "src" (relative path of
// the source, base name for single files). Output directory mirrors source
// structure unless NoDirs is set, file name comes from configured template
// and gets dialect extension.
func buildOutputPath(src, lang, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	defaultFile := buildDefaultFileName(src, env)

	if env.Cfg.Output.NameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(src, lang, env)
	if expandedName == "" {
		return filepath.Join(outDir, defaultFile)
	}
	return assemblePathWithSubdirs(outDir, expandedName, env)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func baseName(src string) string {
	return strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

func buildDefaultFileName(src string, env *state.LocalEnv) string {
	name := baseName(src)
	if env.Cfg.Output.FileNameTransliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + env.Cfg.Skeleton.Syntax.Ext()
}

func expandOutputNameTemplate(src, lang string, env *state.LocalEnv) string {
	values := Values{
		Name:   baseName(src),
		Dir:    filepath.ToSlash(filepath.Dir(src)),
		Lang:   lang,
		Syntax: env.Cfg.Skeleton.Syntax.String(),
	}
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Output.NameTemplate, values)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(strings.TrimSpace(expandedName))
}

// assemblePathWithSubdirs turns expanded template, which may contain
// subdirectories, into full output path cleaning every segment.
func assemblePathWithSubdirs(outDir, expandedName string, env *state.LocalEnv) string {
	segments := splitPath(expandedName)
	if len(segments) == 0 {
		return outDir
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, segment := range segments[:len(segments)-1] {
		parts = append(parts, cleanPathSegment(segment, env))
	}
	parts = append(parts, cleanPathSegment(segments[len(segments)-1], env)+env.Cfg.Skeleton.Syntax.Ext())
	return filepath.Join(parts...)
}

func splitPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
