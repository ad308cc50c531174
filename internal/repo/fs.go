package repo

import "os"

// EnsureDir creates the directory at path along with any missing
// parents. A directory that already exists is not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// EnsureFile creates an empty file at path if none exists. An existing
// file is left untouched, contents included.
func EnsureFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
