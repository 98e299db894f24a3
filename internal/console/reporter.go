package console

import (
	"fmt"
	"io"

	"github.com/dest4590/collapse-updater/internal/domain/update"
)

// Reporter renders download progress as a single console line,
// rewritten in place with carriage returns.
type Reporter struct {
	// out receives the rendered progress line.
	out io.Writer
	// dirty tracks whether a progress line is currently on screen.
	dirty bool
}

// NewReporter creates a progress reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Update rewrites the progress line with the latest byte counts.
func (r *Reporter) Update(p update.Progress) {
	percent := uint64(100)
	if p.BytesTotal > 0 {
		percent = p.BytesDone * 100 / p.BytesTotal
	}

	_, _ = fmt.Fprintf(r.out, "\rDownloading... %3d%% (%d/%d bytes)", percent, p.BytesDone, p.BytesTotal)
	r.dirty = true
}

// Done finishes the line so subsequent log output starts on a fresh row.
// Without prior updates it stays silent.
func (r *Reporter) Done() {
	if !r.dirty {
		return
	}

	_, _ = fmt.Fprintln(r.out)
	r.dirty = false
}
