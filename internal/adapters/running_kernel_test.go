package adapters

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningKernelAdapterOverride(t *testing.T) {
	release, err := NewRunningKernelAdapter(" 6.8.0-88-generic ").RunningKernel(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "6.8.0-88-generic", release)
}

func TestRunningKernelAdapterUname(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uname detection is linux only")
	}
	release, err := NewRunningKernelAdapter("").RunningKernel(t.Context())
	require.NoError(t, err)
	assert.NotEmpty(t, release)
}
