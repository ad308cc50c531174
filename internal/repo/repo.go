package repo

import (
	"errors"
	"os"
	"path/filepath"

	"gat/internal/gitconfig"
)

// GitDirName is the name of the metadata directory inside a worktree.
const GitDirName = ".git"

// SupportedFormatVersion is the only repositoryformatversion gat
// understands.
const SupportedFormatVersion = 0

// UnvalidatedRepo is the worktree/gitdir path pair implied by a root
// path. It asserts nothing about the filesystem; use Validate to turn
// it into a Repo.
type UnvalidatedRepo struct {
	Worktree string
	Gitdir   string
}

// Resolve derives the repository layout implied by root. The worktree
// is root as given (not canonicalized) and the gitdir is root/.git.
func Resolve(root string) UnvalidatedRepo {
	return UnvalidatedRepo{
		Worktree: root,
		Gitdir:   filepath.Join(root, GitDirName),
	}
}

// ConfigPath returns the path of the repository config document.
func (u UnvalidatedRepo) ConfigPath() string {
	return filepath.Join(u.Gitdir, "config")
}

// Repo is a repository whose on-disk layout passed validation: the
// worktree exists, a config document is present, and it declares a
// supported format version. Only Validate, Open, and Create construct
// one.
type Repo struct {
	layout UnvalidatedRepo
	config gitconfig.Config
}

// Worktree returns the directory the repository's tracked files live in.
func (r *Repo) Worktree() string {
	return r.layout.Worktree
}

// Gitdir returns the repository's metadata directory.
func (r *Repo) Gitdir() string {
	return r.layout.Gitdir
}

// Config returns the repository configuration loaded during validation.
func (r *Repo) Config() gitconfig.Config {
	return r.config
}

// Validate checks that layout points at a usable repository, loading
// its config document with load. It performs no writes.
//
// Failure kinds, checked in order: *NotRepositoryError when the
// worktree is not an existing directory, the loader's own errors
// (gitconfig.ErrMissing, *gitconfig.InvalidError) propagated unchanged,
// and *VersionError when core.repositoryformatversion is absent or not
// equal to SupportedFormatVersion.
func Validate(layout UnvalidatedRepo, load gitconfig.Loader) (*Repo, error) {
	info, err := os.Stat(layout.Worktree)
	if err != nil || !info.IsDir() {
		return nil, &NotRepositoryError{Path: layout.Worktree}
	}

	cfg, err := load(layout.ConfigPath())
	if err != nil {
		return nil, err
	}

	version, err := cfg.Uint("core", "repositoryformatversion")
	if err != nil {
		var keyErr *gitconfig.KeyError
		if errors.As(err, &keyErr) {
			return nil, &VersionError{Missing: true}
		}
		return nil, err
	}
	if version != SupportedFormatVersion {
		return nil, &VersionError{Version: version}
	}

	return &Repo{layout: layout, config: cfg}, nil
}

// Open resolves and validates the repository at root using the on-disk
// config document.
func Open(root string) (*Repo, error) {
	return Validate(Resolve(root), gitconfig.Load)
}
