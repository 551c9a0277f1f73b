package core

import (
	"sort"

	"kernel-lifecycle/internal/types"
)

// GroupBySeries partitions kernel groups by (major, minor). Each series is
// sorted newest first.
func GroupBySeries(groups []types.KernelPackageGroup) map[types.Series][]types.KernelPackageGroup {
	series := map[types.Series][]types.KernelPackageGroup{}
	for _, group := range groups {
		key := group.Version.Series()
		series[key] = append(series[key], group)
	}
	for key, members := range series {
		sortGroupsDescending(members)
		series[key] = members
	}
	return series
}

// SortedSeries returns the series keys newest first.
func SortedSeries(series map[types.Series][]types.KernelPackageGroup) []types.Series {
	keys := make([]types.Series, 0, len(series))
	for key := range series {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Major != keys[j].Major {
			return keys[i].Major > keys[j].Major
		}
		return keys[i].Minor > keys[j].Minor
	})
	return keys
}

func sortGroupsDescending(groups []types.KernelPackageGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		c := CompareKernelVersions(groups[i].Version, groups[j].Version)
		if c != 0 {
			return c > 0
		}
		return groups[i].Version.Original > groups[j].Version.Original
	})
}
