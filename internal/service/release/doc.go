// Package release implements the client for the GitHub-style releases API.
//
// Client resolves the asset to install for a channel (stable or pre-release),
// exposes the raw release payloads for callers that need the asset list, and
// opens streaming asset downloads. All failures are reported through the
// closed error union of the update domain.
package release
