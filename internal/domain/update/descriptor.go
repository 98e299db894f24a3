package update

import "strings"

// Channel selects which release stream the updater follows.
type Channel uint8

const (
	// ChannelStable follows the latest published release.
	ChannelStable Channel = iota
	// ChannelPreRelease follows the newest release flagged as a pre-release.
	ChannelPreRelease
)

// String implements fmt.Stringer.
func (c Channel) String() string {
	if c == ChannelPreRelease {
		return "pre-release"
	}

	return "stable"
}

// Descriptor identifies the release asset selected for this run.
type Descriptor struct {
	// AssetURL is the direct download URL of the asset.
	AssetURL string
	// AssetSize is the exact asset length in bytes, as reported by the API.
	AssetSize uint64
	// Prerelease marks assets resolved from a pre-release.
	Prerelease bool
}

// LocalFileName derives the on-disk name of an asset from the final path
// segment of its download URL. The same name keys the dedup check and is
// excluded from the stale build sweep.
func LocalFileName(assetURL string) string {
	return assetURL[strings.LastIndex(assetURL, "/")+1:]
}

// Decision is the outcome of comparing the resolved asset with the local file.
type Decision uint8

const (
	// DecisionNeedsDownload means no local regular file matches the asset size.
	DecisionNeedsDownload Decision = iota
	// DecisionAlreadyCurrent means the local file length equals the asset size.
	DecisionAlreadyCurrent
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	if d == DecisionAlreadyCurrent {
		return "already current"
	}

	return "needs download"
}
