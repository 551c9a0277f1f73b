package types

// PackageRecord is one kernel-family package as reported by the package
// manager. Size and Description are carried for display only.
type PackageRecord struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Origin      string `yaml:"origin,omitempty"`
	Installed   bool   `yaml:"installed"`
	Manual      bool   `yaml:"manual"`
	Size        int64  `yaml:"size,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// KernelSnapshot is the immutable input handed to the retention engine.
type KernelSnapshot struct {
	RunningKernel string          `yaml:"running_kernel,omitempty"`
	Packages      []PackageRecord `yaml:"packages"`
}
