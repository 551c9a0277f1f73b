package types

import "fmt"

// KernelVersion is the ordered key derived from a raw kernel version string
// such as "6.8.0-88-generic" or "6.9.0-060900rc2". Original is kept verbatim
// for display only and never takes part in ordering.
type KernelVersion struct {
	Major      int
	Minor      int
	Patch      int
	ABI        int
	PreRelease string
	Original   string
}

// Series returns the (major, minor) release line of the version.
func (v KernelVersion) Series() Series {
	return Series{Major: v.Major, Minor: v.Minor}
}

func (v KernelVersion) String() string {
	if v.Original != "" {
		return v.Original
	}
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.ABI)
}

// Series identifies a kernel release line, e.g. 6.8.
type Series struct {
	Major int
	Minor int
}

func (s Series) String() string {
	return fmt.Sprintf("%d.%d", s.Major, s.Minor)
}

// KernelFlavor is the kernel type suffix carried by flavored package names,
// e.g. "generic" in linux-image-6.8.0-88-generic.
type KernelFlavor string

const DefaultKernelFlavor KernelFlavor = "generic"

type KernelPackage struct {
	Name   string
	Manual bool
}

// KernelPackageGroup is every package belonging to one kernel version.
type KernelPackageGroup struct {
	Version   KernelVersion
	Packages  []KernelPackage
	IsRunning bool
}
