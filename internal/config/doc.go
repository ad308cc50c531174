// Package config handles loading and validation of gat's tool
// configuration.
//
// Configuration is read from ~/.config/gat/config.toml. A missing file
// is not an error and yields the defaults; a file that exists but does
// not parse or validate is.
//
// This is the configuration of the tool itself, not of any repository:
// per-repository configuration lives in <gitdir>/config and is handled
// by the gitconfig package.
//
// # Key Settings
//
//   - init.default_branch: ref name HEAD points at in new repositories
//     (default: "master")
package config
