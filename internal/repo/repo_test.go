package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gat/internal/gitconfig"
)

// fakeConfig is an in-memory Config so validator tests don't need a
// config document on disk.
type fakeConfig struct {
	version uint64
	err     error
}

func (f *fakeConfig) Uint(section, key string) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.version, nil
}

// loaderFor returns a Loader that ignores the path and yields cfg or err.
func loaderFor(cfg gitconfig.Config, err error) gitconfig.Loader {
	return func(string) (gitconfig.Config, error) {
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
}

// TestResolve verifies the worktree/gitdir derivation.
//
// Scenario: A root path is resolved into a repository layout
// Expected: Worktree is the root as given, gitdir is root/.git
func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		root     string
		worktree string
		gitdir   string
	}{
		{
			name:     "absolute path",
			root:     filepath.Join(string(filepath.Separator), "tmp", "proj"),
			worktree: filepath.Join(string(filepath.Separator), "tmp", "proj"),
			gitdir:   filepath.Join(string(filepath.Separator), "tmp", "proj", ".git"),
		},
		{
			name:     "relative path",
			root:     "proj",
			worktree: "proj",
			gitdir:   filepath.Join("proj", ".git"),
		},
		{
			name:     "dot",
			root:     ".",
			worktree: ".",
			gitdir:   ".git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tt.root)
			if got.Worktree != tt.worktree {
				t.Errorf("Worktree = %q, want %q", got.Worktree, tt.worktree)
			}
			if got.Gitdir != tt.gitdir {
				t.Errorf("Gitdir = %q, want %q", got.Gitdir, tt.gitdir)
			}
		})
	}
}

// TestValidate_VersionGate verifies the repositoryformatversion gate.
//
// Scenario: The config declares a version other than 0
// Expected: Validation fails with a VersionError carrying that version,
// regardless of other config contents
func TestValidate_VersionGate(t *testing.T) {
	t.Parallel()

	for _, version := range []uint64{1, 2, 42} {
		layout := Resolve(t.TempDir())

		_, err := Validate(layout, loaderFor(&fakeConfig{version: version}, nil))

		var verErr *VersionError
		if !errors.As(err, &verErr) {
			t.Fatalf("Validate() error = %v, want *VersionError", err)
		}
		if verErr.Version != version || verErr.Missing {
			t.Errorf("VersionError = %+v, want Version %d", verErr, version)
		}
	}
}

// TestValidate_SupportedVersion verifies the happy path.
//
// Scenario: Worktree exists and the config declares version 0
// Expected: A validated Repo exposing the layout and its config
func TestValidate_SupportedVersion(t *testing.T) {
	t.Parallel()

	layout := Resolve(t.TempDir())
	cfg := &fakeConfig{version: 0}

	r, err := Validate(layout, loaderFor(cfg, nil))
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if r.Worktree() != layout.Worktree {
		t.Errorf("Worktree() = %q, want %q", r.Worktree(), layout.Worktree)
	}
	if r.Gitdir() != layout.Gitdir {
		t.Errorf("Gitdir() = %q, want %q", r.Gitdir(), layout.Gitdir)
	}
	if r.Config() != cfg {
		t.Error("Config() does not return the loaded config")
	}
}

// TestValidate_MissingWorktree verifies the worktree existence check.
//
// Scenario: The resolved worktree does not exist on disk
// Expected: Validation fails with NotRepositoryError before any config load
func TestValidate_MissingWorktree(t *testing.T) {
	t.Parallel()

	layout := Resolve(filepath.Join(t.TempDir(), "absent"))
	loaded := false
	load := func(string) (gitconfig.Config, error) {
		loaded = true
		return &fakeConfig{}, nil
	}

	_, err := Validate(layout, load)

	var nrErr *NotRepositoryError
	if !errors.As(err, &nrErr) {
		t.Fatalf("Validate() error = %v, want *NotRepositoryError", err)
	}
	if nrErr.Path != layout.Worktree {
		t.Errorf("NotRepositoryError.Path = %q, want %q", nrErr.Path, layout.Worktree)
	}
	if loaded {
		t.Error("config was loaded despite missing worktree")
	}
}

// TestValidate_WorktreeIsFile verifies that a regular file is not a worktree.
//
// Scenario: The resolved worktree path exists but is a regular file
// Expected: Validation fails with NotRepositoryError
func TestValidate_WorktreeIsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Validate(Resolve(path), loaderFor(&fakeConfig{}, nil))

	var nrErr *NotRepositoryError
	if !errors.As(err, &nrErr) {
		t.Errorf("Validate() error = %v, want *NotRepositoryError", err)
	}
}

// TestValidate_MissingVersionKey verifies handling of an undeclared version.
//
// Scenario: The config loads but has no core.repositoryformatversion key
// Expected: Validation fails with a VersionError marked Missing
func TestValidate_MissingVersionKey(t *testing.T) {
	t.Parallel()

	cfg := &fakeConfig{err: &gitconfig.KeyError{Section: "core", Key: "repositoryformatversion"}}

	_, err := Validate(Resolve(t.TempDir()), loaderFor(cfg, nil))

	var verErr *VersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("Validate() error = %v, want *VersionError", err)
	}
	if !verErr.Missing {
		t.Errorf("VersionError.Missing = false, want true")
	}
}

// TestValidate_LoaderErrorsPropagate verifies that loader failures pass
// through unchanged.
//
// Scenario: The config loader fails with its own error kinds
// Expected: Validation returns exactly those errors
func TestValidate_LoaderErrorsPropagate(t *testing.T) {
	t.Parallel()

	t.Run("missing config file", func(t *testing.T) {
		t.Parallel()
		_, err := Validate(Resolve(t.TempDir()), loaderFor(nil, gitconfig.ErrMissing))
		if !errors.Is(err, gitconfig.ErrMissing) {
			t.Errorf("Validate() error = %v, want gitconfig.ErrMissing", err)
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		t.Parallel()
		_, err := Validate(Resolve(t.TempDir()), loaderFor(nil, &gitconfig.InvalidError{Reason: "bad section"}))
		var invErr *gitconfig.InvalidError
		if !errors.As(err, &invErr) {
			t.Errorf("Validate() error = %v, want *gitconfig.InvalidError", err)
		}
	})
}

// TestOpen_StoredVersionOne verifies the version gate against a real
// config document.
//
// Scenario: A repository-shaped directory holds a config declaring
// repositoryformatversion 1
// Expected: Open fails with VersionError{Version: 1}
func TestOpen_StoredVersionOne(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	gitdir := filepath.Join(root, GitDirName)
	if err := os.MkdirAll(gitdir, 0o755); err != nil {
		t.Fatalf("create gitdir: %v", err)
	}
	content := "[core]\nrepositoryformatversion = 1\n"
	if err := os.WriteFile(filepath.Join(gitdir, "config"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Open(root)

	var verErr *VersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("Open() error = %v, want *VersionError", err)
	}
	if verErr.Version != 1 || verErr.Missing {
		t.Errorf("VersionError = %+v, want Version 1", verErr)
	}
}

// TestOpen_MissingConfig verifies behavior when no config document exists.
//
// Scenario: Worktree and gitdir exist but .git/config does not
// Expected: Open fails with gitconfig.ErrMissing
func TestOpen_MissingConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, GitDirName), 0o755); err != nil {
		t.Fatalf("create gitdir: %v", err)
	}

	_, err := Open(root)
	if !errors.Is(err, gitconfig.ErrMissing) {
		t.Errorf("Open() error = %v, want gitconfig.ErrMissing", err)
	}
}
