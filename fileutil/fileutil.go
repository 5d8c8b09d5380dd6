package fileutil

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// FileExists returns true if a file or directory with the given path exists.
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// IsDir returns true if a directory with the given path exists.
func IsDir(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.IsDir()
}

// EnsureDir creates the given directory and any missing parents. It is a
// no-op if the directory already exists.
func EnsureDir(dir string) error {
	if IsDir(dir) {
		return nil
	}

	log.Debugf("creating directory: %s", dir)
	return os.MkdirAll(dir, 0755)
}

// WriteFileAtomic writes b to a temporary file in the destination's directory
// and renames it into place, so readers never observe a partially written
// file.
func WriteFileAtomic(filename string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Remove the temp file on any failure path. After a successful rename
	// this fails harmlessly.
	defer os.Remove(tmp)

	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, perm); err != nil {
		return err
	}

	return os.Rename(tmp, filename)
}
