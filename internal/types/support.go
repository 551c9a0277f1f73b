package types

import (
	"fmt"
	"time"
)

type SupportStatusKind string

const (
	SupportStatusSupportedUntil SupportStatusKind = "supported-until"
	SupportStatusSuperseded     SupportStatusKind = "superseded"
	SupportStatusEndOfLife      SupportStatusKind = "end-of-life"
	SupportStatusUnsupported    SupportStatusKind = "unsupported"
)

// YearMonth is a calendar month with no day component.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// DisplayStatus is the presentation-facing state of a point release. Until
// is only meaningful for SupportStatusSupportedUntil.
type DisplayStatus struct {
	Kind  SupportStatusKind
	Until YearMonth
}

func (s DisplayStatus) String() string {
	if s.Kind == SupportStatusSupportedUntil {
		return fmt.Sprintf("supported until %s", s.Until)
	}
	return string(s.Kind)
}

type SupportWindow struct {
	Index                  int
	Label                  string
	Kernel                 string
	DeclaredDurationMonths int
	ReleaseDate            time.Time
	ResolvedDurationMonths int
	SupportEnd             YearMonth
	IsEndOfLife            bool
	Status                 DisplayStatus
	IsRunning              bool
}

// Resolved reports whether a support duration was declared or inferred.
func (w SupportWindow) Resolved() bool {
	return w.ResolvedDurationMonths != DurationUnknown
}

type DistroEOLStatus struct {
	IsEndOfLife      bool
	ShowEarlyWarning bool
	EOLDate          *time.Time
}
