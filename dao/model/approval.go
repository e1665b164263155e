package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

// Approval tracks the review status of an arbitrary record within a project.
// EntityType/EntityID form a weak reference pair, not an ownership relation,
// so approvals can target entity kinds the store does not know about yet.
type Approval struct {
	ID           string         `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID    string         `gorm:"type:varchar(32);not null;index" json:"project_id"`
	EntityType   string         `gorm:"type:varchar(120)" json:"entity_type"`
	EntityID     string         `gorm:"type:varchar(60)" json:"entity_id"`
	Status       ApprovalStatus `gorm:"type:varchar(20);index" json:"status"`
	RequestedBy  string         `gorm:"type:varchar(120)" json:"requested_by"`
	RequestedAt  time.Time      `json:"requested_at"`
	ReviewedBy   *string        `gorm:"type:varchar(120)" json:"reviewed_by"`
	ReviewedAt   *time.Time     `json:"reviewed_at"`
	DecisionNote string         `gorm:"type:text" json:"decision_note"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (a *Approval) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = util.NewID("appr")
	}
	return nil
}
