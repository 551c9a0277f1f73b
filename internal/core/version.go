package core

import (
	"regexp"
	"strconv"
	"strings"

	"kernel-lifecycle/internal/types"
)

var (
	numericToken = regexp.MustCompile(`^\d+$`)
	rcToken      = regexp.MustCompile(`(?i)rc(\d+)`)
)

// ParseKernelVersion derives an ordered key from a raw kernel version string.
// It never fails: numeric fields that cannot be found default to 0, so a
// malformed string simply sorts first.
func ParseKernelVersion(raw string) types.KernelVersion {
	key := types.KernelVersion{Original: raw}
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "-", ".")
	var fields [4]int
	count := 0
	for _, token := range strings.Split(normalized, ".") {
		if count < len(fields) && numericToken.MatchString(token) {
			value, err := strconv.Atoi(token)
			if err == nil {
				fields[count] = value
				count++
				continue
			}
		}
		if count < len(fields) && key.PreRelease == "" {
			if match := rcToken.FindString(token); match != "" {
				key.PreRelease = strings.ToLower(match)
			}
		}
	}
	key.Major, key.Minor, key.Patch, key.ABI = fields[0], fields[1], fields[2], fields[3]
	return key
}

// CompareKernelVersions returns -1, 0, or 1. Numeric fields compare
// lexicographically; on a numeric tie a release candidate sorts before the
// final release, and two candidates compare by their rc number.
func CompareKernelVersions(a types.KernelVersion, b types.KernelVersion) int {
	pairs := [][2]int{
		{a.Major, b.Major},
		{a.Minor, b.Minor},
		{a.Patch, b.Patch},
		{a.ABI, b.ABI},
	}
	for _, pair := range pairs {
		if c := compareInts(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	switch {
	case a.PreRelease == "" && b.PreRelease == "":
		return 0
	case a.PreRelease == "":
		return 1
	case b.PreRelease == "":
		return -1
	}
	if c := compareInts(rcNumber(a.PreRelease), rcNumber(b.PreRelease)); c != 0 {
		return c
	}
	return strings.Compare(a.PreRelease, b.PreRelease)
}

// SameKernelVersion reports whether two raw strings identify the same
// kernel, ignoring any flavor suffix.
func SameKernelVersion(a string, b string) bool {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return false
	}
	return CompareKernelVersions(ParseKernelVersion(a), ParseKernelVersion(b)) == 0
}

func rcNumber(tag string) int {
	match := rcToken.FindStringSubmatch(tag)
	if len(match) < 2 {
		return 0
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return value
}

func compareInts(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
