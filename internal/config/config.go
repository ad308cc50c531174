package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultBranch is the fallback for init.default_branch.
const DefaultBranch = "master"

// InitConfig holds settings for repository initialization.
type InitConfig struct {
	DefaultBranch string `toml:"default_branch"`
}

// Config holds the gat configuration.
type Config struct {
	Init InitConfig `toml:"init"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Init: InitConfig{DefaultBranch: DefaultBranch},
	}
}

// Path returns the path of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gat", "config.toml"), nil
}

// Load reads config from ~/.config/gat/config.toml.
// Returns Default() without error if the file doesn't exist; returns an
// error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Init.DefaultBranch == "" {
		cfg.Init.DefaultBranch = DefaultBranch
	}
	if err := ValidateBranchName(cfg.Init.DefaultBranch); err != nil {
		return Default(), fmt.Errorf("init.default_branch: %w", err)
	}

	return cfg, nil
}

// ValidateBranchName rejects names that cannot serve as a HEAD ref
// component. Not a full git refname check, just the failure modes a
// config typo realistically produces.
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return errors.New("branch name must not be empty")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name must not start with '-': %q", name)
	case strings.ContainsAny(name, " \t\n"):
		return fmt.Errorf("branch name must not contain whitespace: %q", name)
	case strings.Contains(name, ".."):
		return fmt.Errorf("branch name must not contain '..': %q", name)
	}
	return nil
}

const defaultConfig = `# gat configuration
# Config location: ~/.config/gat/config.toml

[init]
# Ref name HEAD points at in newly created repositories.
# Equivalent to passing -b/--initial-branch to 'gat init'.
default_branch = "master"
`

// DefaultDocument returns the commented default config document written
// by 'gat config init'.
func DefaultDocument() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/gat/config.toml.
// If force is true, an existing file is overwritten.
// Returns the path of the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
