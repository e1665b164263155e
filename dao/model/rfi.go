package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

type Rfi struct {
	ID              string     `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID       string     `gorm:"type:varchar(32);not null;index" json:"project_id"`
	RfiNumber       string     `gorm:"type:varchar(40)" json:"rfi_number"`
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Question        string     `gorm:"type:text" json:"question"`
	Status          RfiStatus  `gorm:"type:varchar(20);index" json:"status"`
	RaisedBy        string     `gorm:"type:varchar(120)" json:"raised_by"`
	RaisedAt        time.Time  `json:"raised_at"`
	DueDate         time.Time  `gorm:"type:date" json:"due_date"`
	RespondedAt     *time.Time `json:"responded_at"`
	ResponseSummary string     `gorm:"type:text" json:"response_summary"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (r *Rfi) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = util.NewID("rfi")
	}
	return nil
}
