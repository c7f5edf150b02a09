// Package extract implements "extract" command: it finds sources, generates
// stylesheet skeletons for them and routes results to requested output.
package extract

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"scssx/archive"
	"scssx/common"
	"scssx/config"
	"scssx/skeleton"
	"scssx/state"
)

// StdinSource is command line source name for standard input.
const StdinSource = "-"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	applyOverrides(env.Cfg, cmd.String("selector"), cmd.String("syntax"), cmd.String("output"), log)
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if lang := cmd.String("lang"); len(lang) > 0 {
		if _, err := skeleton.DialectOf(lang); err != nil {
			return err
		}
		env.Lang = lang
	}

	// zip does not define file name encoding, old archives may need
	// archaic code page
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Processing starting",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Stringer("selector", env.Cfg.Skeleton.SelectorType),
		zap.Stringer("syntax", env.Cfg.Skeleton.Syntax))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Int("sources", env.Sources), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if src == StdinSource {
		return processStdin(ctx, env.Stdin, dst, log)
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	return process(ctx, src, dst, log)
}

// applyOverrides superimposes command line values on loaded configuration.
// Empty value means flag was not given, bad values are reported and ignored.
func applyOverrides(cfg *config.Config, selector, syntax, output string, log *zap.Logger) {
	if len(selector) > 0 {
		if v, err := common.ParseSelectorType(selector); err != nil {
			log.Warn("Unknown selector type requested, ignoring", zap.Error(err))
		} else {
			cfg.Skeleton.SelectorType = v
		}
	}
	if len(syntax) > 0 {
		if v, err := common.ParseSyntax(syntax); err != nil {
			log.Warn("Unknown syntax requested, ignoring", zap.Error(err))
		} else {
			cfg.Skeleton.Syntax = v
		}
	}
	if len(output) > 0 {
		if v, err := common.ParseOutputMethod(output); err != nil {
			log.Warn("Unknown output method requested, ignoring", zap.Error(err))
		} else {
			cfg.Output.Method = v
		}
	}
}

func processStdin(ctx context.Context, r io.Reader, dst string, log *zap.Logger) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read standard input: %w", err)
	}
	env := state.EnvFromContext(ctx)
	return processSource(ctx, data, "stdin", dst, env.Cfg.Output.Method, log)
}

// process determines kind of the source (directory, archive with optional
// path inside it, or single file) and handles it accordingly. Only single
// file honors configured output method, everything else is written to files.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		data, err := os.ReadFile(head)
		if err != nil {
			return fmt.Errorf("unable to read source: %w", err)
		}
		env := state.EnvFromContext(ctx)
		return processSource(ctx, data, filepath.Base(head), dst, env.Cfg.Output.Method, log)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir finds sources and archives under directory and processes them
// in natural path order.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	count := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}
		if !isSourceName(path) {
			log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
			continue
		}

		count++
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to read file", zap.String("file", path), zap.Error(err))
			continue
		}
		if err := processSource(ctx, data, rel, dst, common.OutputMethodFile, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processArchive handles sources inside archive under "pathIn", "pathOut" is
// prepended to their names when building output paths.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	count := 0
	err := archive.Walk(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isSourceInArchive(f) {
			log.Debug("Skipping file, not recognized as source", zap.String("archive", archive), zap.String("file", f.FileHeader.Name))
			return nil
		}
		count++

		name := f.FileHeader.Name
		if env.CodePage != nil && f.FileHeader.NonUTF8 {
			if n, err := env.CodePage.NewDecoder().String(name); err == nil {
				name = n
			} else {
				n, _ = ianaindex.IANA.Name(env.CodePage)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", name), zap.Error(err))
			}
		}

		data, err := readArchived(f)
		if err != nil {
			log.Error("Unable to read file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if err := processSource(ctx, data, filepath.Join(pathOut, filepath.FromSlash(name)), dst, common.OutputMethodFile, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

func readArchived(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// processSource generates skeleton for a single source. "src" is source path
// relative to what was given on command line, base name for a single file.
// Nothing is delivered when generation fails.
func processSource(ctx context.Context, data []byte, src, dst string, method common.OutputMethod, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)
	env.Sources++
	key := fmt.Sprintf("%03d-%s", env.Sources, config.CleanFileName(filepath.Base(src)))

	var to string
	log.Info("Extraction starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Extraction ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("extraction panic: %v", r)
		} else if rerr == nil {
			log.Debug("Extraction completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", to))
		}
	}(time.Now())

	if env.Rpt != nil {
		env.Rpt.StoreData("sources/"+key, data)
	}

	lang := detectLang(env.Lang, src, data)
	data, err := decodeSource(data, lang)
	if err != nil {
		return fmt.Errorf("unable to decode source (%s): %w", src, err)
	}

	gen := skeleton.New(skeleton.Options{
		Selector: env.Cfg.Skeleton.SelectorType,
		Syntax:   env.Cfg.Skeleton.Syntax,
	}, log.Named("skeleton"))

	res, err := gen.Generate(data, lang)
	if errors.Is(err, skeleton.ErrNothingFound) {
		log.Info("No classes found", zap.String("from", src), zap.String("lang", lang))
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to extract skeleton (%s): %w", src, err)
	}

	if env.Rpt != nil {
		env.Rpt.StoreData("trees/"+key+".txt", []byte(res.Dump()))
	}

	if to, err = deliver(env, res, src, dst, "results/"+key, method, log); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Generated %d nested %s blocks", res.Count, strings.ToUpper(env.Cfg.Skeleton.Syntax.String())),
		zap.String("from", src), zap.String("to", to))
	return nil
}
