// Package console renders download progress for interactive runs.
//
// Reporter implements the update.Sink contract on top of any writer,
// keeping the pipeline itself free of terminal concerns.
package console
