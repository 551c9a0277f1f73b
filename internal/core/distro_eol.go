package core

import (
	"math"
	"time"

	"kernel-lifecycle/internal/shared"
	"kernel-lifecycle/internal/types"
)

const DefaultEarlyWarningDays = 90

// DistroEOL reports whether the release named by codename is past, or close
// to, its declared support end. An unknown codename yields the zero status.
// A negative earlyWarningDays falls back to DefaultEarlyWarningDays.
func DistroEOL(codename string, table types.ReleaseTable, now time.Time, earlyWarningDays int) types.DistroEOLStatus {
	info, ok := table[shared.NormalizeCodename(codename)]
	if !ok || info.SupportEndDate.IsZero() {
		return types.DistroEOLStatus{}
	}
	if earlyWarningDays < 0 {
		earlyWarningDays = DefaultEarlyWarningDays
	}
	eol := info.SupportEndDate
	daysLeft := int(math.Floor(eol.Sub(now).Hours() / 24))
	return types.DistroEOLStatus{
		IsEndOfLife:      now.After(eol),
		ShowEarlyWarning: daysLeft <= earlyWarningDays,
		EOLDate:          &eol,
	}
}
