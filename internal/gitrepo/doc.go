// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes Repository, a handle that derives and caches repository state
// (branch, remotes, head commit, dirty flag, bareness) by invoking the external
// git tool, along with the typed remote and branch-state records consumed by
// build orchestration services.
package gitrepo
