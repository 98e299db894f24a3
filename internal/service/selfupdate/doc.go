// Package selfupdate replaces the updater's own binary.
//
// It resolves the latest published release, picks the asset matching the
// configured updater prefix, and applies it over the running executable,
// cleaning up the previous image that the swap leaves behind.
package selfupdate
