package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/util"
)

// ActivityLog is the append-only audit trail. Rows are written as a side
// effect of approval transitions and are never mutated afterwards.
type ActivityLog struct {
	ID         string            `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID  string            `gorm:"type:varchar(32);not null;index" json:"project_id"`
	Actor      string            `gorm:"type:varchar(120)" json:"actor"`
	Action     ActivityAction    `gorm:"type:varchar(20)" json:"action"`
	EntityType string            `gorm:"type:varchar(120)" json:"entity_type"`
	EntityID   string            `gorm:"type:varchar(60)" json:"entity_id"`
	Metadata   datatypes.JSONMap `json:"metadata"`
	CreatedAt  time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (a *ActivityLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = util.NewID("act")
	}
	return nil
}
