package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

type Milestone struct {
	ID              string          `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID       string          `gorm:"type:varchar(32);not null;index" json:"project_id"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	PlannedDate     time.Time       `gorm:"type:date" json:"planned_date"`
	ActualDate      *time.Time      `gorm:"type:date" json:"actual_date"`
	Status          MilestoneStatus `gorm:"type:varchar(20);index" json:"status"`
	PercentComplete int             `gorm:"default:0" json:"percent_complete"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (m *Milestone) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = util.NewID("ms")
	}
	return nil
}

func (m *Milestone) Validate() map[string]string {
	if m.PercentComplete < 0 || m.PercentComplete > 100 {
		return map[string]string{"percent_complete": "must be between 0 and 100"}
	}
	return nil
}
