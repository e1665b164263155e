package model

// Project lifecycle status
type ProjectStatus string

const (
	ProjectPlanned  ProjectStatus = "planned"
	ProjectActive   ProjectStatus = "active"
	ProjectOnHold   ProjectStatus = "on_hold"
	ProjectComplete ProjectStatus = "complete"
)

// Budget item health
type BudgetStatus string

const (
	BudgetOnTrack  BudgetStatus = "on_track"
	BudgetAtRisk   BudgetStatus = "at_risk"
	BudgetOffTrack BudgetStatus = "off_track"
)

// Milestone progress status
type MilestoneStatus string

const (
	MilestoneDone       MilestoneStatus = "done"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneAtRisk     MilestoneStatus = "at_risk"
)

// Risk status
type RiskStatus string

const (
	RiskOpen       RiskStatus = "open"
	RiskMitigating RiskStatus = "mitigating"
	RiskClosed     RiskStatus = "closed"
)

// RFI status
type RfiStatus string

const (
	RfiOpen     RfiStatus = "open"
	RfiAnswered RfiStatus = "answered"
	RfiClosed   RfiStatus = "closed"
)

// Document classification
type DocType string

const (
	DocTypePlan     DocType = "plan"
	DocTypeApproval DocType = "approval"
	DocTypeReport   DocType = "report"
	DocTypeOther    DocType = "other"
)

// Document status
type DocumentStatus string

const (
	DocumentDraft      DocumentStatus = "draft"
	DocumentApproved   DocumentStatus = "approved"
	DocumentSuperseded DocumentStatus = "superseded"
)

// Media item kind
type MediaType string

const (
	MediaPhoto      MediaType = "photo"
	MediaUpdate     MediaType = "update"
	MediaCameraFeed MediaType = "camera_feed"
)

// Approval workflow status
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Activity log action
type ActivityAction string

const (
	ActionSubmit  ActivityAction = "submit"
	ActionApprove ActivityAction = "approve"
	ActionReject  ActivityAction = "reject"
	ActionUpdate  ActivityAction = "update"
)

// SystemActor is recorded on activity entries when no session is attached.
const SystemActor = "System"
