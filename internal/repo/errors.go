package repo

import "fmt"

// NotRepositoryError indicates that validation ran against a path that
// does not hold a usable worktree.
type NotRepositoryError struct {
	Path string
}

func (e *NotRepositoryError) Error() string {
	return fmt.Sprintf("not a gat repository: %s", e.Path)
}

// NotDirectoryError indicates an init target that exists but is not a
// directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// NotEmptyError indicates an init target whose gitdir already contains
// entries. Create never overwrites an initialized or foreign gitdir.
type NotEmptyError struct {
	Path string
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("%s is not empty", e.Path)
}

// VersionError indicates a config document that declares an
// incompatible core.repositoryformatversion, or none at all.
type VersionError struct {
	Version uint64
	Missing bool // the config does not declare a version
}

func (e *VersionError) Error() string {
	if e.Missing {
		return "unsupported repositoryformatversion: not set"
	}
	return fmt.Sprintf("unsupported repositoryformatversion: %d", e.Version)
}
