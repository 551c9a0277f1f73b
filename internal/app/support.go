package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/core"
	"kernel-lifecycle/internal/shared"
	"kernel-lifecycle/internal/types"
)

// SupportStatus estimates the support window of every point release of the
// release in use and flags the one the running kernel belongs to.
func (s Service) SupportStatus(ctx context.Context, req SupportRequest) (SupportResult, error) {
	releases := strings.TrimSpace(req.Releases)
	if releases == "" && s.ReleaseMetadata == nil {
		return SupportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release metadata file is required")
	}
	codename, err := s.resolveCodename(ctx, req.Codename, req.OSRelease)
	if err != nil {
		return SupportResult{}, err
	}
	metadata, found, err := s.releaseMetadataSource(releases).LoadReleaseMetadata(ctx, codename)
	if err != nil {
		return SupportResult{}, err
	}
	if !found {
		return SupportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no release metadata for %q", codename))
	}
	assert.NotEmpty(ctx, metadata.Release.Codename, "release codename must be set")

	windows := core.EstimateSupportWindows(metadata.Release, metadata.PointReleases, timeNow(s.Clock))
	running, err := s.resolveRunningKernel(ctx, req.RunningKernel, "")
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("running kernel unavailable")
		running = ""
	}
	markRunningWindow(windows, running)

	return SupportResult{
		Codename:      codename,
		Release:       metadata.Release,
		RunningKernel: running,
		Windows:       windows,
	}, nil
}

// markRunningWindow flags windows whose label, or kernel series, matches the
// running kernel's series.
func markRunningWindow(windows []types.SupportWindow, running string) {
	if strings.TrimSpace(running) == "" {
		return
	}
	series := core.ParseKernelVersion(running).Series().String()
	for i := range windows {
		label := strings.TrimSpace(windows[i].Label)
		if label == "" && windows[i].Kernel != "" {
			label = core.ParseKernelVersion(windows[i].Kernel).Series().String()
		}
		windows[i].IsRunning = label == series
	}
}

// resolveCodename prefers the explicit codename over the host's os-release.
func (s Service) resolveCodename(ctx context.Context, explicit string, osRelease string) (string, error) {
	if value := shared.NormalizeCodename(explicit); value != "" {
		return value, nil
	}
	value, err := s.codenameSource(osRelease).Codename(ctx)
	if err != nil {
		return "", err
	}
	return shared.NormalizeCodename(value), nil
}
