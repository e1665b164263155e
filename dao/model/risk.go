package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

type Risk struct {
	ID             string     `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID      string     `gorm:"type:varchar(32);not null;index" json:"project_id"`
	Title          string     `gorm:"type:varchar(200);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Category       string     `gorm:"type:varchar(120)" json:"category"`
	Likelihood     int        `gorm:"not null" json:"likelihood"`
	Impact         int        `gorm:"not null" json:"impact"`
	Rating         int        `gorm:"not null;index" json:"rating"`
	Status         RiskStatus `gorm:"type:varchar(20);index" json:"status"`
	Owner          string     `gorm:"type:varchar(120)" json:"owner"`
	DueDate        time.Time  `gorm:"type:date" json:"due_date"`
	MitigationPlan string     `gorm:"type:text" json:"mitigation_plan"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (r *Risk) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = util.NewID("risk")
	}
	return nil
}

// Validate checks the likelihood/impact ranges and the derived rating.
// The rating is not recomputed silently; a mismatch is a client error.
func (r *Risk) Validate() map[string]string {
	errs := map[string]string{}
	if r.Likelihood < 1 || r.Likelihood > 5 {
		errs["likelihood"] = "likelihood must be between 1 and 5"
	}
	if r.Impact < 1 || r.Impact > 5 {
		errs["impact"] = "impact must be between 1 and 5"
	}
	if len(errs) == 0 && r.Rating != r.Likelihood*r.Impact {
		errs["rating"] = fmt.Sprintf("rating must equal likelihood * impact (%d)", r.Likelihood*r.Impact)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
