package updater

import (
	"runtime"
	"strings"

	"github.com/dest4590/collapse-updater/internal/domain/update"
)

// downloadChunkSize caps the read buffer for asset streaming. Each read
// returns whatever the transport yields, up to this size.
const downloadChunkSize = 32 * 1024

// executableExtension returns ".exe" on Windows and "" elsewhere.
func executableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}

// isProductBinary reports whether name looks like a loader build:
// the product prefix plus the platform executable extension.
func isProductBinary(name, prefix string) bool {
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, executableExtension())
}

// discardSink swallows progress when no consumer is attached.
type discardSink struct{}

func (discardSink) Update(update.Progress) {}

func (discardSink) Done() {}
