package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/dao/model"
)

func milestonePayload(projectID string, percent int) map[string]any {
	return map[string]any{
		"project_id":       projectID,
		"name":             "Station box complete",
		"planned_date":     "2026-09-01T00:00:00Z",
		"status":           "in_progress",
		"percent_complete": percent,
	}
}

func TestCreateMilestone(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/milestones", milestonePayload(project.ID, 40), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	got := dataAs[model.Milestone](t, w)
	assert.Contains(t, got.ID, "ms-")
	assert.Equal(t, 40, got.PercentComplete)
	assert.Nil(t, got.ActualDate)
}

func TestCreateMilestonePercentTooHigh(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/milestones", milestonePayload(project.ID, 150), nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["percent_complete"], "between 0 and 100")

	// nothing persisted on a validation failure
	var count int64
	require.NoError(t, db.Model(&model.Milestone{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMilestonePercentNegative(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/milestones", milestonePayload(project.ID, -1), nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["percent_complete"], "between 0 and 100")
}

func TestUpdateMilestonePercentBounds(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/milestones", milestonePayload(project.ID, 40), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.Milestone](t, w)

	w = doJSON(t, r, http.MethodPatch, "/api/milestones/"+created.ID,
		map[string]any{"percent_complete": 101}, nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["percent_complete"], "between 0 and 100")

	w = doJSON(t, r, http.MethodPatch, "/api/milestones/"+created.ID,
		map[string]any{"percent_complete": 100, "status": "done"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataAs[model.Milestone](t, w)
	assert.Equal(t, 100, updated.PercentComplete)
	assert.Equal(t, model.MilestoneDone, updated.Status)
}
