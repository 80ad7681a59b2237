package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirName is the folder created under the user config dir.
const DefaultDirName = "lcs"

// Dir is a KV storing one human readable JSON file per key in a folder.
type Dir struct {
	path string
}

// DefaultDir returns the default folder of the Dir KV ($XDG_CONFIG_HOME/lcs on Linux).
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate the user config dir: %w", err)
	}
	return filepath.Join(base, DefaultDirName), nil
}

// OpenDir opens a Dir KV in folder path, creating it if needed.
func OpenDir(path string) (*Dir, error) {
	if path == "" {
		def, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		path = def
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the folder of the KV.
func (d *Dir) Path() string { return d.path }

// filename returns the file holding key.
func (d *Dir) filename(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.path, key+".json"), nil
}

func (d *Dir) Get(key string) ([]byte, error) {
	filename, err := d.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %q: %w", filename, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return data, nil
}

// Set writes value into a temporary file then renames it, so that a reader
// never sees a partial record.
func (d *Dir) Set(key string, value []byte) error {
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", filename, err)
	}
	tmp := f.Name()
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	filename, err := d.filename(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete %q: %w", filename, err)
	}
	return nil
}

// Close is a no-op, files are not kept open.
func (d *Dir) Close() error { return nil }
