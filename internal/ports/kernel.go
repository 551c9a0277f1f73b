package ports

import (
	"context"

	"kernel-lifecycle/internal/types"
)

// KernelSnapshotPort loads the package manager's view of kernel packages.
type KernelSnapshotPort interface {
	LoadSnapshot(ctx context.Context) (types.KernelSnapshot, error)
}

// RunningKernelPort reports the release string of the booted kernel.
type RunningKernelPort interface {
	RunningKernel(ctx context.Context) (string, error)
}
