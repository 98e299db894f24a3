// Package workdir abstracts the directory the updater operates in.
//
// Directory is the narrow filesystem capability injected into the update
// pipeline. OSDirectory implements it over a real directory resolved to an
// absolute path at construction, so a relative configured directory still
// yields absolute paths for spawned children.
package workdir
