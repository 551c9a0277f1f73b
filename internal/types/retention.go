package types

type RetentionReason string

const (
	RetentionReasonRunningKernel    RetentionReason = "running-kernel"
	RetentionReasonMostRecent       RetentionReason = "most-recent"
	RetentionReasonSecondMostRecent RetentionReason = "second-most-recent"
	RetentionReasonOutsideRetention RetentionReason = "outside-retention"
)

type RetentionDecision struct {
	Keep   bool
	Reason RetentionReason
}

type MarkState string

const (
	MarkAuto   MarkState = "auto"
	MarkManual MarkState = "manual"
)

// ChangeDirective asks the package manager to move one package between
// manual and auto marks.
type ChangeDirective struct {
	Package string    `yaml:"package"`
	From    MarkState `yaml:"from"`
	To      MarkState `yaml:"to"`
}

// RetentionPlan is the full outcome of one retention pass.
type RetentionPlan struct {
	Series     map[Series][]KernelPackageGroup
	Decisions  map[string]RetentionDecision
	Directives []ChangeDirective
}
