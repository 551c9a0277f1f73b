package core

import (
	"regexp"
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"kernel-lifecycle/internal/types"
)

// Longer prefixes first so linux-image-unsigned- wins over linux-image-.
var kernelPackagePrefixes = []string{
	"linux-image-unsigned-",
	"linux-image-",
	"linux-modules-extra-",
	"linux-modules-",
	"linux-headers-",
	"linux-cloud-tools-",
	"linux-tools-",
}

var kernelPackageVersion = regexp.MustCompile(`^(\d+\.\d+(?:\.\d+)?(?:-\d+(?:rc\d+)?)?)(?:-(.+))?$`)

// ParseKernelPackage extracts the kernel version from a versioned kernel
// package name. Packages built for a different flavor and unversioned
// meta-packages such as linux-image-generic are rejected.
func ParseKernelPackage(name string, flavor types.KernelFlavor) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, prefix := range kernelPackagePrefixes {
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		match := kernelPackageVersion.FindStringSubmatch(strings.TrimPrefix(trimmed, prefix))
		if match == nil {
			return "", false
		}
		suffix := match[2]
		if suffix != "" && suffix != string(normalizeFlavor(flavor)) {
			return "", false
		}
		return match[1], true
	}
	return "", false
}

// BuildKernelGroups folds installed kernel packages of the given flavor into
// one group per kernel version, in snapshot order.
func BuildKernelGroups(snapshot types.KernelSnapshot, flavor types.KernelFlavor) []types.KernelPackageGroup {
	index := map[string]int{}
	var groups []types.KernelPackageGroup
	for _, record := range NormalizePackages(snapshot.Packages) {
		if !record.Installed {
			continue
		}
		version, ok := ParseKernelPackage(record.Name, flavor)
		if !ok {
			continue
		}
		pkg := types.KernelPackage{Name: record.Name, Manual: record.Manual}
		if pos, seen := index[version]; seen {
			groups[pos].Packages = append(groups[pos].Packages, pkg)
			continue
		}
		index[version] = len(groups)
		groups = append(groups, types.KernelPackageGroup{
			Version:   ParseKernelVersion(version),
			Packages:  []types.KernelPackage{pkg},
			IsRunning: SameKernelVersion(version, snapshot.RunningKernel),
		})
	}
	return groups
}

// NormalizePackages collapses duplicate records of one package (for example
// an installed build next to a newer candidate) to the record carrying the
// highest Debian version. The installed and manual flags are merged so a
// candidate never hides the installed state. Order of first appearance is
// kept.
func NormalizePackages(records []types.PackageRecord) []types.PackageRecord {
	index := map[string]int{}
	var out []types.PackageRecord
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			continue
		}
		record.Name = name
		pos, seen := index[name]
		if !seen {
			index[name] = len(out)
			out = append(out, record)
			continue
		}
		current := out[pos]
		installed := current.Installed || record.Installed
		manual := current.Manual || record.Manual
		if compareDebVersions(record.Version, current.Version) > 0 {
			current = record
		}
		current.Installed = installed
		current.Manual = manual
		out[pos] = current
	}
	return out
}

// compareDebVersions compares Debian package versions; an unparseable
// version is lower than any valid one.
func compareDebVersions(a string, b string) int {
	va, errA := debversion.NewVersion(a)
	vb, errB := debversion.NewVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}

func normalizeFlavor(flavor types.KernelFlavor) types.KernelFlavor {
	value := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(string(flavor))), "-")
	if value == "" {
		return types.DefaultKernelFlavor
	}
	return types.KernelFlavor(value)
}
