package app

import (
	"time"

	"kernel-lifecycle/internal/types"
)

type PlanRequest struct {
	Snapshot          string
	DpkgStatus        string
	AptExtendedStates string
	RunningKernel     string
	Flavor            string
	Output            string
	OutputFormat      string
}

type PlanResult struct {
	RunningKernel string
	Flavor        types.KernelFlavor
	Groups        []types.KernelPackageGroup
	Plan          types.RetentionPlan
	OutputPath    string
}

type SupportRequest struct {
	Releases      string
	Codename      string
	OSRelease     string
	RunningKernel string
}

type SupportResult struct {
	Codename      string
	Release       types.ReleaseInfo
	RunningKernel string
	Windows       []types.SupportWindow
}

type EOLRequest struct {
	Releases         string
	DistroInfo       string
	Codename         string
	OSRelease        string
	EarlyWarningDays int
}

type EOLResult struct {
	Codename    string
	Known       bool
	Status      types.DistroEOLStatus
	EvaluatedAt time.Time
}

type WatchRequest struct {
	Plan       PlanRequest
	DebounceMs int
}
