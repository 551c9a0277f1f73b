package core

import (
	"strconv"
	"time"

	"kernel-lifecycle/internal/types"
)

const (
	// The point release that normally becomes the long-term kernel.
	ltsPointRelease = 3
	// Point releases from this index on may be the final long-term kernel.
	finalPointReleaseIndex = 4
	// Months after release before a late point release is taken as final.
	finalPointReleaseAgeMonths = 28
	// Regular cadence: a point release every six months, the first one three
	// months after release, each supported ten months past its slot.
	cadenceMonths       = 6
	cadenceOffsetMonths = 3
	baseSupportMonths   = 10
)

// EstimateSupportWindows infers support windows for the point releases of
// one distro release, given in ascending chronological order. Declared
// durations are taken as-is; unknown ones follow the hardware-enablement
// cadence heuristic. A release without a release date resolves nothing.
// The result depends on now and must not be cached.
func EstimateSupportWindows(release types.ReleaseInfo, points []types.PointRelease, now time.Time) []types.SupportWindow {
	sinceRelease := monthsBetween(release.ReleaseDate, now)
	resolved := make([]int, len(points))
	windows := make([]types.SupportWindow, len(points))
	for i, point := range points {
		duration := types.DurationUnknown
		switch {
		case !point.FromVendor:
		case release.ReleaseDate.IsZero():
		case point.DeclaredDurationMonths >= 0:
			duration = point.DeclaredDurationMonths
		default:
			duration = inferDuration(i, len(points), sinceRelease, release, resolved)
		}
		resolved[i] = duration

		window := types.SupportWindow{
			Index:                  i,
			Label:                  point.Label,
			Kernel:                 point.Kernel,
			DeclaredDurationMonths: point.DeclaredDurationMonths,
			ReleaseDate:            release.ReleaseDate,
			ResolvedDurationMonths: duration,
		}
		if duration != types.DurationUnknown {
			window.SupportEnd = addMonths(yearMonthOf(release.ReleaseDate), duration)
			window.IsEndOfLife = monthAfter(now, window.SupportEnd)
		}
		windows[i] = window
	}
	assignDisplayStatus(windows)
	return windows
}

// inferDuration resolves an undeclared duration for point release i. The
// out-of-turn detection cannot tell a late regular kernel from a genuinely
// early one; it is kept as published.
func inferDuration(i int, total int, sinceRelease int, release types.ReleaseInfo, resolved []int) int {
	if i >= finalPointReleaseIndex {
		if total > finalPointReleaseIndex+1 && i != total-1 {
			if resolved[ltsPointRelease] != types.DurationUnknown {
				return resolved[ltsPointRelease]
			}
		} else if sinceRelease >= finalPointReleaseAgeMonths {
			return releaseSpanMonths(release)
		}
	}
	if i >= 1 {
		maxExpected := floorDiv(sinceRelease-cadenceOffsetMonths, cadenceMonths) + 1
		if i > maxExpected {
			return baseSupportMonths + maxExpected*cadenceMonths
		}
		return baseSupportMonths + i*cadenceMonths
	}
	return types.DurationUnknown
}

// assignDisplayStatus walks the windows in order and makes the first live
// window of each label the supported one; every other window sharing that
// label is superseded, whatever its own window. Labels without a live window
// keep their own end-of-life or unsupported state.
func assignDisplayStatus(windows []types.SupportWindow) {
	winners := map[string]int{}
	for i, window := range windows {
		if !window.Resolved() || window.IsEndOfLife {
			continue
		}
		if _, ok := winners[labelKey(window)]; !ok {
			winners[labelKey(window)] = i
		}
	}
	for i := range windows {
		window := &windows[i]
		if best, ok := winners[labelKey(*window)]; ok {
			if best == i {
				window.Status = types.DisplayStatus{Kind: types.SupportStatusSupportedUntil, Until: window.SupportEnd}
			} else {
				window.Status = types.DisplayStatus{Kind: types.SupportStatusSuperseded}
			}
			continue
		}
		if window.Resolved() {
			window.Status = types.DisplayStatus{Kind: types.SupportStatusEndOfLife}
			continue
		}
		window.Status = types.DisplayStatus{Kind: types.SupportStatusUnsupported}
	}
}

func labelKey(window types.SupportWindow) string {
	switch {
	case window.Label != "":
		return "label:" + window.Label
	case window.Kernel != "":
		return "kernel:" + window.Kernel
	default:
		return "index:" + strconv.Itoa(window.Index)
	}
}

// releaseSpanMonths is the whole release lifetime in months, or unknown when
// either date is missing or the span is not positive.
func releaseSpanMonths(release types.ReleaseInfo) int {
	if release.ReleaseDate.IsZero() || release.SupportEndDate.IsZero() {
		return types.DurationUnknown
	}
	span := monthsBetween(release.ReleaseDate, release.SupportEndDate)
	if span <= 0 {
		return types.DurationUnknown
	}
	return span
}
