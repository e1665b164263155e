package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

type budgetTotals struct {
	TotalOriginal   float64
	TotalVariations float64
	TotalForecast   float64
	TotalActual     float64
}

type MilestoneCounts struct {
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}

type SummaryResp struct {
	TotalOriginalBudget float64         `json:"total_original_budget"`
	TotalVariations     float64         `json:"total_variations"`
	TotalForecastCost   float64         `json:"total_forecast_cost"`
	TotalActualSpend    float64         `json:"total_actual_spend"`
	MilestonesCompleted MilestoneCounts `json:"milestones_completed"`
	OpenRisks           int64           `json:"open_risks"`
	PendingApprovals    int64           `json:"pending_approvals"`
}

// ProgramSummary aggregates across every project; the rollup is global by
// design and recomputed on each call.
func ProgramSummary(c *gin.Context) {
	db := query.DB.WithContext(c.Request.Context())

	var totals budgetTotals
	err := db.Model(&model.BudgetItem{}).
		Select("COALESCE(SUM(original_budget), 0) AS total_original, " +
			"COALESCE(SUM(approved_variations), 0) AS total_variations, " +
			"COALESCE(SUM(forecast_cost), 0) AS total_forecast, " +
			"COALESCE(SUM(actual_spent), 0) AS total_actual").
		Scan(&totals).Error
	if err != nil {
		logutils.Log.Error("summary budget totals: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}

	var milestonesTotal, milestonesDone, openRisks, pendingApprovals int64
	if err := db.Model(&model.Milestone{}).Count(&milestonesTotal).Error; err != nil {
		logutils.Log.Error("summary milestones: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	if err := db.Model(&model.Milestone{}).
		Where("status = ?", model.MilestoneDone).Count(&milestonesDone).Error; err != nil {
		logutils.Log.Error("summary milestones done: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	if err := db.Model(&model.Risk{}).
		Where("status <> ?", model.RiskClosed).Count(&openRisks).Error; err != nil {
		logutils.Log.Error("summary open risks: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	if err := db.Model(&model.Approval{}).
		Where("status = ?", model.ApprovalPending).Count(&pendingApprovals).Error; err != nil {
		logutils.Log.Error("summary pending approvals: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}

	response.Success(c, SummaryResp{
		TotalOriginalBudget: totals.TotalOriginal,
		TotalVariations:     totals.TotalVariations,
		TotalForecastCost:   totals.TotalForecast,
		TotalActualSpend:    totals.TotalActual,
		MilestonesCompleted: MilestoneCounts{
			Completed: milestonesDone,
			Total:     milestonesTotal,
		},
		OpenRisks:           openRisks,
		PendingApprovals:    pendingApprovals,
	})
}

func RegisterSummary(g *gin.RouterGroup) {
	g.GET("/summary", ProgramSummary)
}
