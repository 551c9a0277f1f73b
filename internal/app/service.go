package app

import (
	"strings"
	"time"

	"kernel-lifecycle/internal/adapters"
	"kernel-lifecycle/internal/ports"
)

// Service runs the kernel lifecycle use cases. Source ports left nil are
// built per request from the paths it carries.
type Service struct {
	Snapshot        ports.KernelSnapshotPort
	RunningKernel   ports.RunningKernelPort
	ReleaseMetadata ports.ReleaseMetadataPort
	ReleaseTable    ports.ReleaseTablePort
	Codename        ports.CodenamePort
	Directives      func(format adapters.DirectiveFormat) ports.DirectiveWriterPort
	Watcher         func(debounce time.Duration) ports.ChangeWatcherPort
	Clock           func() time.Time
}

func NewService() Service {
	return Service{
		RunningKernel: adapters.NewRunningKernelAdapter(""),
		Directives: func(format adapters.DirectiveFormat) ports.DirectiveWriterPort {
			return adapters.NewDirectiveFileAdapter(format)
		},
		Watcher: func(debounce time.Duration) ports.ChangeWatcherPort {
			return adapters.NewFileWatchAdapter(debounce)
		},
		Clock: time.Now,
	}
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}

// snapshotSource prefers an explicit snapshot document over the live dpkg
// database.
func (s Service) snapshotSource(req PlanRequest) ports.KernelSnapshotPort {
	if s.Snapshot != nil {
		return s.Snapshot
	}
	if path := strings.TrimSpace(req.Snapshot); path != "" {
		return adapters.NewSnapshotFileAdapter(path)
	}
	return adapters.NewDpkgSnapshotAdapter(req.DpkgStatus, req.AptExtendedStates)
}

// snapshotWatchPath is the file whose changes invalidate a plan.
func snapshotWatchPath(req PlanRequest) string {
	if path := strings.TrimSpace(req.Snapshot); path != "" {
		return path
	}
	if path := strings.TrimSpace(req.DpkgStatus); path != "" {
		return path
	}
	return adapters.DefaultDpkgStatusPath
}

func (s Service) runningKernelSource() ports.RunningKernelPort {
	if s.RunningKernel != nil {
		return s.RunningKernel
	}
	return adapters.NewRunningKernelAdapter("")
}

func (s Service) releaseMetadataSource(releases string) ports.ReleaseMetadataPort {
	if s.ReleaseMetadata != nil {
		return s.ReleaseMetadata
	}
	return adapters.NewReleaseFileAdapter(releases)
}

func (s Service) releaseTableSource(releases string, distroInfo string) ports.ReleaseTablePort {
	if s.ReleaseTable != nil {
		return s.ReleaseTable
	}
	if path := strings.TrimSpace(releases); path != "" {
		return adapters.NewReleaseFileAdapter(path)
	}
	return adapters.NewDistroInfoAdapter(distroInfo)
}

func (s Service) codenameSource(osRelease string) ports.CodenamePort {
	if s.Codename != nil {
		return s.Codename
	}
	return adapters.NewOSReleaseAdapter(osRelease)
}
