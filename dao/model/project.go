package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

// Project is the root aggregate; every other record hangs off it and is
// removed by the store when the project row goes away.
type Project struct {
	ID          string        `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name        string        `gorm:"type:varchar(200);not null" json:"name"`
	Location    string        `gorm:"type:varchar(200)" json:"location"`
	Status      ProjectStatus `gorm:"type:varchar(20);index" json:"status"`
	StartDate   time.Time     `gorm:"type:date" json:"start_date"`
	EndDate     time.Time     `gorm:"type:date" json:"end_date"`
	Description string        `gorm:"type:text" json:"description"`
	ProgramName string        `gorm:"type:varchar(120)" json:"program_name"`
	Phase       string        `gorm:"type:varchar(120)" json:"phase"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	BudgetItems  []BudgetItem  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Milestones   []Milestone   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Risks        []Risk        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Rfis         []Rfi         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Documents    []Document    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MediaItems   []MediaItem   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Approvals    []Approval    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ActivityLogs []ActivityLog `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = util.NewID("proj")
	}
	return nil
}
