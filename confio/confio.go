// Package confio is the thin adapter between config trees and storage.
// The parser and serializer never touch files; this package reads a
// document, keeps the original bytes for change detection and diffing,
// and writes serialized text back with an optional timestamped backup.
package confio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/curlyconf/curlyconf/encode"
	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/parse"
)

// File is one loaded config document: the parsed tree plus the source
// text it came from.
type File struct {
	Path string
	Root *ir.Node

	orig []byte
}

func Load(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return FromBytes(path, d)
}

// FromBytes parses an in-memory document, keeping path only as a label
// (use "-" for stdin).
func FromBytes(path string, d []byte) (*File, error) {
	root, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &File{Path: path, Root: root, orig: d}, nil
}

// Orig returns the text the file was loaded from.
func (f *File) Orig() string {
	return string(f.orig)
}

// Text serializes the current tree with comments preserved.
func (f *File) Text() string {
	return encode.MustString(f.Root)
}

// Changed reports whether serializing now would write different bytes
// than were read.
func (f *File) Changed() bool {
	return f.Text() != string(f.orig)
}

type SaveOpts struct {
	// Backup writes a timestamped copy of the original bytes next to
	// the file before overwriting it.
	Backup bool
	// Store, when set with Backup, records the backup path under the
	// "last_backup" key for the file.
	Store Store
}

// Save writes the serialized tree back to f.Path, via a temp file and
// rename so a crash cannot leave a half-written config behind.
func (f *File) Save(opts SaveOpts) error {
	if opts.Backup {
		bak := fmt.Sprintf("%s.%d.bak", f.Path, time.Now().Unix())
		if err := os.WriteFile(bak, f.orig, 0644); err != nil {
			return fmt.Errorf("writing backup %s: %w", bak, err)
		}
		if opts.Store != nil {
			if err := opts.Store.Set(f.Path, "last_backup", bak); err != nil {
				return fmt.Errorf("recording backup: %w", err)
			}
		}
	}
	// CreateTemp makes the file 0600; carry the target's mode over so
	// a save never tightens permissions behind the user's back.
	mode := os.FileMode(0644)
	if fi, err := os.Stat(f.Path); err == nil {
		mode = fi.Mode().Perm()
	}
	text := f.Text()
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".tmp*")
	if err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	f.orig = []byte(text)
	return nil
}
