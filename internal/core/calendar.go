package core

import (
	"time"

	"kernel-lifecycle/internal/types"
)

// monthsBetween returns the whole calendar months from start to end. A month
// only counts once its day of month has been reached.
func monthsBetween(start time.Time, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months > 0 && end.Day() < start.Day() {
		months--
	} else if months < 0 && end.Day() > start.Day() {
		months++
	}
	return months
}

func addMonths(start types.YearMonth, months int) types.YearMonth {
	total := start.Year*12 + int(start.Month) - 1 + months
	return types.YearMonth{Year: floorDiv(total, 12), Month: time.Month(total-floorDiv(total, 12)*12 + 1)}
}

func yearMonthOf(t time.Time) types.YearMonth {
	return types.YearMonth{Year: t.Year(), Month: t.Month()}
}

// monthAfter reports whether now lies in a calendar month after end.
func monthAfter(now time.Time, end types.YearMonth) bool {
	if now.Year() != end.Year {
		return now.Year() > end.Year
	}
	return now.Month() > end.Month
}

func floorDiv(a int, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
