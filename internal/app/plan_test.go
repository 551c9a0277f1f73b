package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernel-lifecycle/internal/types"
)

const sampleSnapshot = `
running_kernel: 6.8.0-88-generic
packages:
  - name: linux-image-6.8.0-88-generic
    version: 6.8.0-88.89
    installed: true
    manual: false
  - name: linux-image-6.8.0-86-generic
    version: 6.8.0-86.87
    installed: true
    manual: true
  - name: linux-image-6.8.0-85-generic
    version: 6.8.0-85.85
    installed: true
    manual: true
  - name: linux-headers-6.8.0-85
    version: 6.8.0-85.85
    installed: true
    manual: true
  - name: linux-image-6.8.0-90-lowlatency
    version: 6.8.0-90.91
    installed: true
    manual: false
  - name: linux-image-6.8.0-90-generic
    version: 6.8.0-90.91
    installed: false
    manual: false
`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ---------------------------------------------------------------------------
// PlanRetention
// ---------------------------------------------------------------------------

func TestPlanRetentionFromSnapshot(t *testing.T) {
	service := NewService()
	result, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot: writeSnapshot(t, sampleSnapshot),
	})
	require.NoError(t, err)

	assert.Equal(t, "6.8.0-88-generic", result.RunningKernel)
	assert.Equal(t, types.DefaultKernelFlavor, result.Flavor)
	assert.Len(t, result.Groups, 3)
	assert.Empty(t, result.OutputPath)

	want := []types.ChangeDirective{
		{Package: "linux-image-6.8.0-88-generic", From: types.MarkAuto, To: types.MarkManual},
		{Package: "linux-image-6.8.0-85-generic", From: types.MarkManual, To: types.MarkAuto},
		{Package: "linux-headers-6.8.0-85", From: types.MarkManual, To: types.MarkAuto},
	}
	if diff := cmp.Diff(want, result.Plan.Directives); diff != "" {
		t.Fatalf("unexpected directives (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.RetentionReasonRunningKernel, result.Plan.Decisions["6.8.0-88"].Reason)
	assert.Equal(t, types.RetentionReasonSecondMostRecent, result.Plan.Decisions["6.8.0-86"].Reason)
	assert.False(t, result.Plan.Decisions["6.8.0-85"].Keep)
}

func TestPlanRetentionOverridesRunningKernel(t *testing.T) {
	service := NewService()
	result, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot:      writeSnapshot(t, sampleSnapshot),
		RunningKernel: "6.8.0-85-generic",
	})
	require.NoError(t, err)

	assert.Equal(t, "6.8.0-85-generic", result.RunningKernel)
	assert.Equal(t, types.RetentionReasonRunningKernel, result.Plan.Decisions["6.8.0-85"].Reason)
	assert.True(t, result.Plan.Decisions["6.8.0-88"].Keep)
	assert.True(t, result.Plan.Decisions["6.8.0-86"].Keep)
}

func TestPlanRetentionOtherFlavor(t *testing.T) {
	service := NewService()
	result, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot: writeSnapshot(t, sampleSnapshot),
		Flavor:   "lowlatency",
	})
	require.NoError(t, err)

	assert.Equal(t, types.KernelFlavor("lowlatency"), result.Flavor)
	// Unflavored headers join whichever flavor is planned.
	assert.Len(t, result.Groups, 2)
	assert.True(t, result.Plan.Decisions["6.8.0-90"].Keep)
	assert.True(t, result.Plan.Decisions["6.8.0-85"].Keep)
}

func TestPlanRetentionWritesScript(t *testing.T) {
	output := filepath.Join(t.TempDir(), "apply.sh")
	service := NewService()
	result, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot:     writeSnapshot(t, sampleSnapshot),
		Output:       output,
		OutputFormat: "script",
	})
	require.NoError(t, err)
	assert.Equal(t, output, result.OutputPath)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apt-mark manual linux-image-6.8.0-88-generic\n")
	assert.Contains(t, string(data), "apt-mark auto linux-image-6.8.0-85-generic linux-headers-6.8.0-85\n")
}

func TestPlanRetentionIsIdempotentAfterApplying(t *testing.T) {
	compliant := `
running_kernel: 6.8.0-88-generic
packages:
  - name: linux-image-6.8.0-88-generic
    version: 6.8.0-88.89
    installed: true
    manual: true
  - name: linux-image-6.8.0-86-generic
    version: 6.8.0-86.87
    installed: true
    manual: true
  - name: linux-image-6.8.0-85-generic
    version: 6.8.0-85.85
    installed: true
    manual: false
`
	output := filepath.Join(t.TempDir(), "directives.yaml")
	service := NewService()
	result, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot: writeSnapshot(t, compliant),
		Output:   output,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Plan.Directives)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "directives: []\n", string(data))
}

func TestPlanRetentionErrors(t *testing.T) {
	service := NewService()

	_, err := service.PlanRetention(t.Context(), PlanRequest{
		Snapshot:     writeSnapshot(t, sampleSnapshot),
		OutputFormat: "json",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported directive format")

	_, err = service.PlanRetention(t.Context(), PlanRequest{
		Snapshot: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)
}
