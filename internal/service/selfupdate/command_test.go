package selfupdate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dest4590/collapse-updater/internal/domain/update"
	"github.com/dest4590/collapse-updater/internal/service/release"
)

// TestSelectUpdaterAsset picks the first asset carrying the updater prefix and
// reports a release without one as an API request failure.
func TestSelectUpdaterAsset(t *testing.T) {
	t.Parallel()

	assets := []release.Asset{
		{Name: "CollapseLoader-v2.exe", Size: 100},
		{Name: "CollapseUpdater-v2.exe", Size: 50},
		{Name: "CollapseUpdater-v2-arm64.exe", Size: 51},
	}

	asset, err := selectUpdaterAsset(assets, "CollapseUpdater")
	require.NoError(t, err)
	require.Equal(t, "CollapseUpdater-v2.exe", asset.Name)

	_, err = selectUpdaterAsset(assets[:1], "CollapseUpdater")
	require.True(t, update.IsKind(err, update.KindAPIRequest))
	require.ErrorContains(t, err, "no updater asset")
}

// TestApplyTo swaps a file on disk for the streamed contents.
func TestApplyTo(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "collapse-updater")
	require.NoError(t, os.WriteFile(target, []byte("previous"), 0o755))

	require.NoError(t, applyTo(target, bytes.NewReader([]byte("replacement"))))

	contents, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "replacement", string(contents))
}
