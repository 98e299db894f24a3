package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dest4590/collapse-updater/internal/domain/update"
)

// TestReporter verifies in-place rendering and the terminal newline.
func TestReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := NewReporter(&buf)
	r.Update(update.Progress{BytesDone: 500, BytesTotal: 1000})
	r.Update(update.Progress{BytesDone: 1000, BytesTotal: 1000})
	r.Done()

	out := buf.String()
	require.Contains(t, out, "\rDownloading...  50% (500/1000 bytes)")
	require.Contains(t, out, "\rDownloading... 100% (1000/1000 bytes)")
	require.True(t, strings.HasSuffix(out, "\n"))
}

// TestReporterDoneWithoutUpdates ensures no stray output when nothing was downloaded.
func TestReporterDoneWithoutUpdates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := NewReporter(&buf)
	r.Done()
	require.Empty(t, buf.String())
}
