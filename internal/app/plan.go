package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/core"
	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/types"
)

// PlanRetention decides which installed kernels stay pinned and, when an
// output path is given, writes the resulting mark directives.
func (s Service) PlanRetention(ctx context.Context, req PlanRequest) (PlanResult, error) {
	format, err := adapters.ParseDirectiveFormat(req.OutputFormat)
	if err != nil {
		return PlanResult{}, err
	}
	flavor := types.KernelFlavor(strings.TrimSpace(req.Flavor))
	if flavor == "" {
		flavor = types.DefaultKernelFlavor
	}

	snapshot, err := s.snapshotSource(req).LoadSnapshot(ctx)
	if err != nil {
		return PlanResult{}, err
	}
	for _, record := range snapshot.Packages {
		assert.NotEmpty(ctx, record.Name, "snapshot package name must be set")
	}
	snapshot.Packages = core.NormalizePackages(snapshot.Packages)

	running, err := s.resolveRunningKernel(ctx, req.RunningKernel, snapshot.RunningKernel)
	if err != nil {
		return PlanResult{}, err
	}
	snapshot.RunningKernel = running

	groups := core.BuildKernelGroups(snapshot, flavor)
	plan := core.PlanRetention(groups, running)
	log.Ctx(ctx).Debug().
		Int("groups", len(groups)).
		Int("series", len(plan.Series)).
		Int("directives", len(plan.Directives)).
		Str("running", running).
		Msg("retention planned")

	result := PlanResult{
		RunningKernel: running,
		Flavor:        flavor,
		Groups:        groups,
		Plan:          plan,
	}
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return result, nil
	}
	if err := s.directiveWriter(format).WriteDirectives(output, plan.Directives); err != nil {
		return PlanResult{}, err
	}
	result.OutputPath = output
	return result, nil
}

func (s Service) directiveWriter(format adapters.DirectiveFormat) ports.DirectiveWriterPort {
	if s.Directives == nil {
		return adapters.NewDirectiveFileAdapter(format)
	}
	return s.Directives(format)
}

// resolveRunningKernel picks the explicit override, then the snapshot's
// recorded kernel, then the live system.
func (s Service) resolveRunningKernel(ctx context.Context, override string, recorded string) (string, error) {
	if value := strings.TrimSpace(override); value != "" {
		return value, nil
	}
	if value := strings.TrimSpace(recorded); value != "" {
		return value, nil
	}
	return s.runningKernelSource().RunningKernel(ctx)
}
