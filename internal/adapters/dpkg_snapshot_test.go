package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernel-lifecycle/internal/types"
)

const sampleDpkgStatus = `Package: linux-image-6.8.0-88-generic
Status: install ok installed
Priority: optional
Installed-Size: 14664
Version: 6.8.0-88.89
Description: Signed kernel image generic
 A kernel image for generic.

Package: linux-image-6.8.0-86-generic
Status: deinstall ok config-files
Version: 6.8.0-86.87

Package: linux-headers-6.8.0-88
Status: hold ok installed
Installed-Size: 81000
Version: 6.8.0-88.89
Description: Header files related to Linux kernel version 6.8.0

Package: firefox
Status: install ok installed
Version: 1:1snap1-0ubuntu5

Package: linux-image-6.8.0-87-generic
Status: install ok installed
Installed-Size: not-a-number
Version: 6.8.0-87.88
`

const sampleExtendedStates = `Package: linux-image-6.8.0-88-generic
Architecture: amd64
Auto-Installed: 1

Package: linux-headers-6.8.0-88
Architecture: amd64
Auto-Installed: 0
`

func TestDpkgSnapshotAdapterLoad(t *testing.T) {
	dir := t.TempDir()
	statusPath := filepath.Join(dir, "status")
	statesPath := filepath.Join(dir, "extended_states")
	require.NoError(t, os.WriteFile(statusPath, []byte(sampleDpkgStatus), 0o644))
	require.NoError(t, os.WriteFile(statesPath, []byte(sampleExtendedStates), 0o644))

	snapshot, err := NewDpkgSnapshotAdapter(statusPath, statesPath).LoadSnapshot(t.Context())
	require.NoError(t, err)

	want := []types.PackageRecord{
		{Name: "linux-image-6.8.0-88-generic", Version: "6.8.0-88.89", Installed: true, Manual: false, Size: 14664 * 1024, Description: "Signed kernel image generic"},
		{Name: "linux-headers-6.8.0-88", Version: "6.8.0-88.89", Installed: true, Manual: true, Size: 81000 * 1024, Description: "Header files related to Linux kernel version 6.8.0"},
		{Name: "linux-image-6.8.0-87-generic", Version: "6.8.0-87.88", Installed: true, Manual: true},
	}
	if diff := cmp.Diff(want, snapshot.Packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
	assert.Empty(t, snapshot.RunningKernel)
}

func TestDpkgSnapshotAdapterMissingExtendedStates(t *testing.T) {
	dir := t.TempDir()
	statusPath := filepath.Join(dir, "status")
	require.NoError(t, os.WriteFile(statusPath, []byte(sampleDpkgStatus), 0o644))

	snapshot, err := NewDpkgSnapshotAdapter(statusPath, filepath.Join(dir, "absent")).LoadSnapshot(t.Context())
	require.NoError(t, err)
	for _, record := range snapshot.Packages {
		assert.True(t, record.Manual, record.Name)
	}
}

func TestDpkgSnapshotAdapterMissingStatus(t *testing.T) {
	_, err := NewDpkgSnapshotAdapter(filepath.Join(t.TempDir(), "status"), "").LoadSnapshot(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpkg status file not found")
}

func TestNewDpkgSnapshotAdapterDefaults(t *testing.T) {
	adapter := NewDpkgSnapshotAdapter("", " ")
	assert.Equal(t, DefaultDpkgStatusPath, adapter.StatusPath)
	assert.Equal(t, DefaultExtendedStatesPath, adapter.ExtendedStatesPath)
}
