// Package config defines updater settings and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type identifies the release repository, the API endpoint, the
// on-disk naming of loader builds and the behavioral switches of the run.
// Every field has a built-in default so the shipped binary works without a
// settings file.
package config
