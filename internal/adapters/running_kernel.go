package adapters

import "kernel-lifecycle/internal/ports"

// RunningKernelAdapter reports the booted kernel release via uname(2).
// Override, when set, is returned instead.
type RunningKernelAdapter struct {
	Override string
}

func NewRunningKernelAdapter(override string) RunningKernelAdapter {
	return RunningKernelAdapter{Override: override}
}

var _ ports.RunningKernelPort = RunningKernelAdapter{}
