package gitconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

// ErrMissing indicates that no config file exists at the given path.
var ErrMissing = errors.New("repository config file is missing")

// InvalidError indicates a config file that exists but cannot be used:
// either the document does not parse, or a field has the wrong type.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string {
	return "invalid config: " + e.Reason
}

// KeyError indicates a key that is not present in the document.
type KeyError struct {
	Section string
	Key     string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("config key %s.%s is not set", e.Section, e.Key)
}

// Config is the read capability over a loaded configuration document.
type Config interface {
	// Uint returns the value of section.key as an unsigned integer.
	// Returns *KeyError if the key is absent and *InvalidError if the
	// value is not representable as an unsigned integer.
	Uint(section, key string) (uint64, error)
}

// Loader loads a configuration document from a file path.
type Loader func(path string) (Config, error)

// File is a Config backed by an INI document on disk.
type File struct {
	doc *ini.File
}

// Load reads the config document at path.
// Returns ErrMissing if no file exists there and *InvalidError if the
// file cannot be parsed.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	doc, err := ini.Load(path)
	if err != nil {
		return nil, &InvalidError{Reason: err.Error()}
	}
	return &File{doc: doc}, nil
}

// Uint implements Config.
func (f *File) Uint(section, key string) (uint64, error) {
	sec := f.doc.Section(section)
	if !sec.HasKey(key) {
		return 0, &KeyError{Section: section, Key: key}
	}

	v, err := sec.Key(key).Uint64()
	if err != nil {
		return 0, &InvalidError{Reason: fmt.Sprintf("%s.%s: %v", section, key, err)}
	}
	return v, nil
}
