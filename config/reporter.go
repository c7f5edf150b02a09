package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/elliotchance/orderedmap/v3"

	"scssx/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When destination cannot be created report
// goes to temporary file, see Report.Name.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{members: orderedmap.NewOrderedMap[string, member](), file: f}, nil
}

// member is either data captured during the run or a file on disk which is
// read when report is closed (logs, produced stylesheets).
type member struct {
	path  string
	data  []byte
	stamp time.Time
}

// Report collects debug report: configuration, logs, processed sources,
// block trees and produced stylesheets. Members are written in the order
// they were stored. Nil report ignores everything, so callers do not have
// to check whether report was requested. Not safe for concurrent use.
type Report struct {
	members *orderedmap.OrderedMap[string, member]
	file    *os.File
}

// Name returns absolute name of the report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store references file to be put into report under name when report is
// closed. Storing the same file twice is allowed, reusing name for a
// different file is a program error.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if old, ok := r.members.Get(name); ok && old.path != path {
		panic(fmt.Sprintf("report member %q already refers to %s, not %s", name, old.path, path))
	}
	r.members.Set(name, member{path: path})
}

// StoreData puts data into report under name. Names are never reused.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if r.members.Has(name) {
		panic(fmt.Sprintf("report member %q already stored", name))
	}
	r.members.Set(name, member{data: data, stamp: time.Now()})
}

// Close writes report archive. Referenced files which disappeared are only
// mentioned in the manifest.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}
	defer func() {
		if e := r.file.Close(); err == nil {
			err = e
		}
	}()

	arc := zip.NewWriter(r.file)
	now := time.Now()
	if err := addMember(arc, "MANIFEST", now, bytes.NewReader(r.manifest(now))); err != nil {
		return err
	}
	for name, m := range r.members.AllFromFront() {
		if m.path == "" {
			if err := addMember(arc, name, m.stamp, bytes.NewReader(m.data)); err != nil {
				return err
			}
			continue
		}
		if err := addFile(arc, name, m.path); err != nil {
			return err
		}
	}
	return arc.Close()
}

// manifest lists members one per line: time, name and origin.
func (r *Report) manifest(now time.Time) []byte {
	var buf bytes.Buffer
	for name, m := range r.members.AllFromFront() {
		stamp, origin := m.stamp, m.path
		if stamp.IsZero() {
			stamp = now
		}
		if origin == "" {
			origin = fmt.Sprintf("%d bytes", len(m.data))
		}
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", stamp.UTC().Format(time.RFC3339), name, origin)
	}
	return buf.Bytes()
}

func addFile(arc *zip.Writer, name, path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return nil
	}
	return addMember(arc, name, fi.ModTime(), f)
}

func addMember(arc *zip.Writer, name string, stamp time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: stamp})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	return nil
}
