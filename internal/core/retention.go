package core

import (
	"kernel-lifecycle/internal/types"
)

// retainedPositions maps the newest positions of a descending series to the
// reason they are kept.
var retainedPositions = []types.RetentionReason{
	types.RetentionReasonMostRecent,
	types.RetentionReasonSecondMostRecent,
}

// DecideRetention computes, per series, which kernel versions stay protected.
// Series never interact. The running kernel is kept wherever it sits; the two
// newest versions of every series are kept; everything else is eligible for
// cleanup. A running version that is absent from every series has no effect.
func DecideRetention(series map[types.Series][]types.KernelPackageGroup, runningVersion string) map[string]types.RetentionDecision {
	decisions := map[string]types.RetentionDecision{}
	for _, groups := range series {
		for pos, group := range groups {
			decisions[group.Version.Original] = decideGroup(pos, group, runningVersion)
		}
	}
	return decisions
}

func decideGroup(pos int, group types.KernelPackageGroup, runningVersion string) types.RetentionDecision {
	if group.IsRunning || SameKernelVersion(group.Version.Original, runningVersion) {
		return types.RetentionDecision{Keep: true, Reason: types.RetentionReasonRunningKernel}
	}
	if pos < len(retainedPositions) {
		return types.RetentionDecision{Keep: true, Reason: retainedPositions[pos]}
	}
	return types.RetentionDecision{Keep: false, Reason: types.RetentionReasonOutsideRetention}
}

// RetentionDirectives lists the mark changes needed to make the snapshot agree
// with decisions: kept packages that are auto become manual, dropped packages
// that are manual become auto. A compliant snapshot yields no directives.
// Output is ordered by series, then version (newest first), then package.
func RetentionDirectives(series map[types.Series][]types.KernelPackageGroup, decisions map[string]types.RetentionDecision) []types.ChangeDirective {
	directives := []types.ChangeDirective{}
	for _, key := range SortedSeries(series) {
		for _, group := range series[key] {
			decision, ok := decisions[group.Version.Original]
			if !ok {
				continue
			}
			for _, pkg := range group.Packages {
				if directive, needed := directiveFor(pkg, decision); needed {
					directives = append(directives, directive)
				}
			}
		}
	}
	return directives
}

func directiveFor(pkg types.KernelPackage, decision types.RetentionDecision) (types.ChangeDirective, bool) {
	switch {
	case decision.Keep && !pkg.Manual:
		return types.ChangeDirective{Package: pkg.Name, From: types.MarkAuto, To: types.MarkManual}, true
	case !decision.Keep && pkg.Manual:
		return types.ChangeDirective{Package: pkg.Name, From: types.MarkManual, To: types.MarkAuto}, true
	default:
		return types.ChangeDirective{}, false
	}
}

// PlanRetention runs grouping, decisions and directive generation in one pass.
func PlanRetention(groups []types.KernelPackageGroup, runningVersion string) types.RetentionPlan {
	series := GroupBySeries(groups)
	decisions := DecideRetention(series, runningVersion)
	return types.RetentionPlan{
		Series:     series,
		Decisions:  decisions,
		Directives: RetentionDirectives(series, decisions),
	}
}
