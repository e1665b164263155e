package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

// BudgetItem tracks one cost line of a project budget. Amounts are stored
// with two decimal places and must never go negative.
type BudgetItem struct {
	ID                 string       `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID          string       `gorm:"type:varchar(32);not null;index" json:"project_id"`
	Category           string       `gorm:"type:varchar(120)" json:"category"`
	Description        string       `gorm:"type:text" json:"description"`
	OriginalBudget     float64      `gorm:"type:numeric(14,2)" json:"original_budget"`
	ApprovedVariations float64      `gorm:"type:numeric(14,2)" json:"approved_variations"`
	ForecastCost       float64      `gorm:"type:numeric(14,2)" json:"forecast_cost"`
	ActualSpent        float64      `gorm:"type:numeric(14,2)" json:"actual_spent"`
	Currency           string       `gorm:"type:varchar(3);default:AUD" json:"currency"`
	CostCode           string       `gorm:"type:varchar(40)" json:"cost_code"`
	Status             BudgetStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func (b *BudgetItem) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = util.NewID("budget")
	}
	return nil
}

func (b *BudgetItem) Validate() map[string]string {
	errs := map[string]string{}
	if b.OriginalBudget < 0 {
		errs["original_budget"] = "must not be negative"
	}
	if b.ApprovedVariations < 0 {
		errs["approved_variations"] = "must not be negative"
	}
	if b.ForecastCost < 0 {
		errs["forecast_cost"] = "must not be negative"
	}
	if b.ActualSpent < 0 {
		errs["actual_spent"] = "must not be negative"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
