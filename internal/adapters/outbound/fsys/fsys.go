// Package fsys is the local file system behind the scanners and the build
// driver's output directory.
package fsys

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Disk implements domain.FileStore and domain.DirCleaner.
type Disk struct {
	// Log receives "<path> written." after every write. Nil is silent.
	Log io.Writer
}

// New creates a Disk that reports writes to log.
func New(log io.Writer) *Disk {
	return &Disk{Log: log}
}

func (d *Disk) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes contents, creating parent directories as needed.
func (d *Disk) WriteFile(path, contents string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(abs, []byte(contents), 0644); err != nil {
		return err
	}
	if d.Log != nil {
		fmt.Fprintf(d.Log, "%s written.\n", abs)
	}
	return nil
}

func (d *Disk) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Clean removes dir and everything in it, then recreates it empty.
func (d *Disk) Clean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.Mkdir(dir, 0755)
}
