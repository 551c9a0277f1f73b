package types

import "time"

// DurationUnknown marks a point release whose support duration was not
// declared by the vendor.
const DurationUnknown = -1

// ReleaseInfo is one row of the distro release-date table.
type ReleaseInfo struct {
	Codename       string
	Version        string
	ReleaseDate    time.Time
	SupportEndDate time.Time
}

// ReleaseTable maps a distro codename to its release dates.
type ReleaseTable map[string]ReleaseInfo

// PointRelease is one kernel build in a release's hardware-enablement
// sequence. DeclaredDurationMonths is DurationUnknown when not declared.
type PointRelease struct {
	Label                  string
	Kernel                 string
	DeclaredDurationMonths int
	FromVendor             bool
}

// ReleaseMetadata carries a release with its ordered point releases.
type ReleaseMetadata struct {
	Release       ReleaseInfo
	PointReleases []PointRelease
}
