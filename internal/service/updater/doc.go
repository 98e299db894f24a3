// Package updater runs the update pipeline for the loader.
//
// A run resolves the release asset for the selected channel, decides by byte
// size whether the local build is current, sweeps stale builds, downloads the
// asset with streamed progress when needed, and finally hands execution off
// to the loader with inherited stdio and forwarded arguments.
package updater
