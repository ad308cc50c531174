// Package repo locates, validates, and initializes gat repositories on disk.
//
// The package separates "a path that may hold a repository" from "a
// repository we have checked":
//
//   - [UnvalidatedRepo]: worktree/gitdir path pair derived from a root
//     path. Pure path arithmetic, asserts nothing about the filesystem.
//   - [Repo]: a repository whose layout and config passed validation.
//     Its fields are unexported; the only way to obtain one is through
//     [Validate], [Open], or [Create], so holding a *Repo is proof the
//     location was usable at the time of the check.
//
// # Validation
//
// [Validate] is the single authority for "is this a usable repository":
// the worktree must be an existing directory, the gitdir must contain a
// parsable config document, and that document must declare
// core.repositoryformatversion 0. Validation never writes.
//
// # Initialization
//
// [Create] builds the full layout for a brand-new repository:
// branches/, objects/, refs/tags/ and refs/heads/ directories plus the
// description, HEAD, and config default files. The scaffold steps are
// idempotent, so re-running against an existing but empty gitdir is
// safe. Create refuses to touch a non-directory target or a gitdir
// that already has entries, and finishes by re-validating the result.
// There is no rollback: a failed run may leave a partial tree behind.
package repo
