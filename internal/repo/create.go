package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gat/internal/gitconfig"
	"gat/internal/log"
)

// DefaultBranch is the branch HEAD points at in a new repository when
// no other name is configured.
const DefaultBranch = "master"

const defaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

// defaultConfig is the config document written by Create. It declares
// the only format version this layer supports.
const defaultConfig = "[core]\n" +
	"repositoryformatversion = 0\n" +
	"filemode = false\n" +
	"bare = false\n"

// scaffoldDirs are the directories created inside a fresh gitdir.
// No ordering dependency between them.
var scaffoldDirs = []string{
	"branches",
	"objects",
	filepath.Join("refs", "tags"),
	filepath.Join("refs", "heads"),
}

// Create initializes a new repository at root and returns it validated.
//
// The worktree is created if absent. Create refuses a root that exists
// as a non-directory (*NotDirectoryError) and a gitdir that already
// contains entries (*NotEmptyError); re-running against an existing but
// empty gitdir is safe and converges to the same end state. The
// description, HEAD, and config defaults are (re)written outright.
//
// branch names the ref HEAD points at; empty means DefaultBranch.
// Failures leave any partially created tree in place.
func Create(ctx context.Context, root, branch string) (*Repo, error) {
	if branch == "" {
		branch = DefaultBranch
	}
	l := log.FromContext(ctx)
	layout := Resolve(root)

	info, err := os.Stat(layout.Worktree)
	switch {
	case err == nil && !info.IsDir():
		return nil, &NotDirectoryError{Path: layout.Worktree}
	case err == nil:
		if err := checkGitdirEmpty(layout.Gitdir); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := EnsureDir(layout.Worktree); err != nil {
			return nil, fmt.Errorf("create worktree %s: %w", layout.Worktree, err)
		}
		l.Verbosef("created worktree %s\n", layout.Worktree)
	default:
		return nil, fmt.Errorf("stat %s: %w", layout.Worktree, err)
	}

	for _, dir := range scaffoldDirs {
		path := filepath.Join(layout.Gitdir, dir)
		if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		l.Verbosef("created %s\n", path)
	}

	defaults := []struct {
		name    string
		content string
	}{
		{"description", defaultDescription},
		{"HEAD", "ref: refs/heads/" + branch + "\n"},
		{"config", defaultConfig},
	}
	for _, d := range defaults {
		path := filepath.Join(layout.Gitdir, d.name)
		if err := os.WriteFile(path, []byte(d.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		l.Verbosef("wrote %s\n", path)
	}

	// Proves the invariant instead of assuming it: the written config
	// always declares version 0, but I/O failures still surface here.
	return Validate(layout, gitconfig.Load)
}

// checkGitdirEmpty fails with *NotEmptyError if gitdir exists and has
// at least one entry. A missing gitdir is fine.
func checkGitdirEmpty(gitdir string) error {
	entries, err := os.ReadDir(gitdir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", gitdir, err)
	}
	if len(entries) > 0 {
		return &NotEmptyError{Path: gitdir}
	}
	return nil
}
