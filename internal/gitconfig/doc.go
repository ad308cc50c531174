// Package gitconfig reads repository configuration documents.
//
// The repository config is an INI-style sections/keys file at
// <gitdir>/config. Only core.repositoryformatversion is interpreted by
// gat itself; everything else is opaque to this layer.
//
// Consumers depend on the [Config] interface and take a [Loader], not
// the file-backed implementation, so tests can substitute an in-memory
// fake without touching the filesystem.
package gitconfig
