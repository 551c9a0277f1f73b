package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kernel-lifecycle/internal/types"
)

// ---------------------------------------------------------------------------
// DecideRetention
// ---------------------------------------------------------------------------

func TestDecideRetentionKeepsTwoNewest(t *testing.T) {
	series := GroupBySeries(kernelGroups("6.8.0-86", "6.8.0-87", "6.8.0-88"))

	decisions := DecideRetention(series, "")

	want := map[string]types.RetentionDecision{
		"6.8.0-88": {Keep: true, Reason: types.RetentionReasonMostRecent},
		"6.8.0-87": {Keep: true, Reason: types.RetentionReasonSecondMostRecent},
		"6.8.0-86": {Keep: false, Reason: types.RetentionReasonOutsideRetention},
	}
	if diff := cmp.Diff(want, decisions); diff != "" {
		t.Fatalf("unexpected decisions (-want +got):\n%s", diff)
	}
}

func TestDecideRetentionRunningOldestKept(t *testing.T) {
	series := GroupBySeries(kernelGroups("6.8.0-86", "6.8.0-87", "6.8.0-88"))

	decisions := DecideRetention(series, "6.8.0-86-generic")

	assert.Equal(t, types.RetentionDecision{Keep: true, Reason: types.RetentionReasonRunningKernel}, decisions["6.8.0-86"])
	assert.Equal(t, types.RetentionReasonMostRecent, decisions["6.8.0-88"].Reason)
	assert.Equal(t, types.RetentionReasonSecondMostRecent, decisions["6.8.0-87"].Reason)
}

func TestDecideRetentionRunningNewestTakesPrecedence(t *testing.T) {
	series := GroupBySeries(kernelGroups("6.8.0-86", "6.8.0-87", "6.8.0-88"))

	decisions := DecideRetention(series, "6.8.0-88")

	assert.Equal(t, types.RetentionReasonRunningKernel, decisions["6.8.0-88"].Reason)
	assert.Equal(t, types.RetentionReasonSecondMostRecent, decisions["6.8.0-87"].Reason)
	assert.False(t, decisions["6.8.0-86"].Keep)
}

func TestDecideRetentionRunningAbsent(t *testing.T) {
	series := GroupBySeries(kernelGroups("6.8.0-86", "6.8.0-87", "6.8.0-88"))

	withMissing := DecideRetention(series, "6.8.0-40")
	without := DecideRetention(series, "")

	if diff := cmp.Diff(without, withMissing); diff != "" {
		t.Fatalf("absent running kernel changed decisions (-want +got):\n%s", diff)
	}
}

func TestDecideRetentionSeriesAreIndependent(t *testing.T) {
	series := GroupBySeries(kernelGroups("5.15.0-100", "5.15.0-101", "6.8.0-86", "6.8.0-87", "6.8.0-88", "6.11.0-9"))

	decisions := DecideRetention(series, "")

	assert.True(t, decisions["5.15.0-101"].Keep)
	assert.True(t, decisions["5.15.0-100"].Keep)
	assert.True(t, decisions["6.11.0-9"].Keep)
	assert.False(t, decisions["6.8.0-86"].Keep)
}

func TestDecideRetentionSmallSeriesHasNoOutsideRetention(t *testing.T) {
	for _, versions := range [][]string{{"6.8.0-88"}, {"6.8.0-87", "6.8.0-88"}} {
		decisions := DecideRetention(GroupBySeries(kernelGroups(versions...)), "")
		for version, decision := range decisions {
			assert.True(t, decision.Keep, version)
			assert.NotEqual(t, types.RetentionReasonOutsideRetention, decision.Reason)
		}
	}
}

// ---------------------------------------------------------------------------
// RetentionDirectives / PlanRetention
// ---------------------------------------------------------------------------

func TestPlanRetentionDirectivesAndIdempotence(t *testing.T) {
	groups := []types.KernelPackageGroup{
		group("6.8.0-86", false, "linux-image-6.8.0-86-generic", "linux-modules-6.8.0-86-generic"),
		group("6.8.0-87", false, "linux-image-6.8.0-87-generic", "linux-modules-6.8.0-87-generic"),
		group("6.8.0-88", false, "linux-image-6.8.0-88-generic"),
	}

	plan := PlanRetention(groups, "")

	want := []types.ChangeDirective{
		{Package: "linux-image-6.8.0-88-generic", From: types.MarkAuto, To: types.MarkManual},
		{Package: "linux-image-6.8.0-87-generic", From: types.MarkAuto, To: types.MarkManual},
		{Package: "linux-modules-6.8.0-87-generic", From: types.MarkAuto, To: types.MarkManual},
	}
	if diff := cmp.Diff(want, plan.Directives); diff != "" {
		t.Fatalf("unexpected directives (-want +got):\n%s", diff)
	}

	applied := applyDirectives(groups, plan.Directives)
	again := PlanRetention(applied, "")
	assert.Empty(t, again.Directives)
}

func TestPlanRetentionDemotesManualOutsideRetention(t *testing.T) {
	groups := []types.KernelPackageGroup{
		group("6.8.0-85", true, "linux-image-6.8.0-85-generic"),
		group("6.8.0-86", true, "linux-image-6.8.0-86-generic"),
		group("6.8.0-87", true, "linux-image-6.8.0-87-generic"),
		group("6.8.0-88", true, "linux-image-6.8.0-88-generic"),
	}

	plan := PlanRetention(groups, "6.8.0-85-generic")

	require.Len(t, plan.Directives, 1)
	assert.Equal(t, types.ChangeDirective{Package: "linux-image-6.8.0-86-generic", From: types.MarkManual, To: types.MarkAuto}, plan.Directives[0])

	again := PlanRetention(applyDirectives(groups, plan.Directives), "6.8.0-85-generic")
	assert.Empty(t, again.Directives)
}

func TestPlanRetentionIdempotentForMixedMarks(t *testing.T) {
	groups := []types.KernelPackageGroup{
		group("5.15.0-100", true, "linux-image-5.15.0-100-generic"),
		group("5.15.0-99", false, "linux-image-5.15.0-99-generic"),
		group("5.15.0-98", true, "linux-image-5.15.0-98-generic", "linux-headers-5.15.0-98"),
		group("6.8.0-40", false, "linux-image-6.8.0-40-generic"),
	}
	groups[2].Packages[1].Manual = false

	first := PlanRetention(groups, "5.15.0-98")
	assert.NotEmpty(t, first.Directives)

	second := PlanRetention(applyDirectives(groups, first.Directives), "5.15.0-98")
	assert.Empty(t, second.Directives)
}

func TestPlanRetentionEmptySnapshot(t *testing.T) {
	plan := PlanRetention(nil, "6.8.0-88")
	assert.Empty(t, plan.Series)
	assert.Empty(t, plan.Decisions)
	assert.NotNil(t, plan.Directives)
	assert.Empty(t, plan.Directives)
}

func group(version string, manual bool, names ...string) types.KernelPackageGroup {
	packages := make([]types.KernelPackage, 0, len(names))
	for _, name := range names {
		packages = append(packages, types.KernelPackage{Name: name, Manual: manual})
	}
	return types.KernelPackageGroup{Version: ParseKernelVersion(version), Packages: packages}
}

func applyDirectives(groups []types.KernelPackageGroup, directives []types.ChangeDirective) []types.KernelPackageGroup {
	targets := map[string]types.MarkState{}
	for _, directive := range directives {
		targets[directive.Package] = directive.To
	}
	out := make([]types.KernelPackageGroup, 0, len(groups))
	for _, g := range groups {
		copied := g
		copied.Packages = append([]types.KernelPackage(nil), g.Packages...)
		for i, pkg := range copied.Packages {
			if to, ok := targets[pkg.Name]; ok {
				copied.Packages[i].Manual = to == types.MarkManual
			}
		}
		out = append(out, copied)
	}
	return out
}
