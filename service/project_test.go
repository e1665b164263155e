package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/dao/model"
)

func TestProjectCRUD(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":         "Metro Tunnel",
		"location":     "Melbourne",
		"status":       "active",
		"start_date":   "2024-03-01T00:00:00Z",
		"end_date":     "2027-12-31T00:00:00Z",
		"program_name": "Transport",
		"phase":        "Delivery",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.Project](t, w)
	assert.Contains(t, created.ID, "proj-")

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := dataAs[model.Project](t, w)
	assert.Equal(t, "Metro Tunnel", fetched.Name)

	w = doJSON(t, r, http.MethodPatch, "/api/projects/"+created.ID,
		map[string]any{"status": "on_hold", "phase": "Paused"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataAs[model.Project](t, w)
	assert.Equal(t, model.ProjectOnHold, updated.Status)
	assert.Equal(t, "Paused", updated.Phase)
	assert.Equal(t, "Metro Tunnel", updated.Name)

	w = doJSON(t, r, http.MethodDelete, "/api/projects/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Project{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListProjectsOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	require.NoError(t, db.Create(&model.Project{Name: "Western Freeway", Status: model.ProjectPlanned}).Error)
	require.NoError(t, db.Create(&model.Project{Name: "Airport Rail", Status: model.ProjectActive}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/projects", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := dataAs[[]model.Project](t, w)
	require.Len(t, projects, 2)
	assert.Equal(t, "Airport Rail", projects[0].Name)
	assert.Equal(t, "Western Freeway", projects[1].Name)
}

func TestGetProjectNotFound(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/projects/proj-missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProjectCascades(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	planned := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.BudgetItem{ProjectID: project.ID, Category: "Civil", OriginalBudget: 100}).Error)
	require.NoError(t, db.Create(&model.Milestone{ProjectID: project.ID, Name: "M1", PlannedDate: planned, Status: model.MilestoneInProgress}).Error)
	require.NoError(t, db.Create(&model.Risk{ProjectID: project.ID, Title: "R1", Likelihood: 2, Impact: 2, Rating: 4, Status: model.RiskOpen}).Error)
	require.NoError(t, db.Create(&model.Rfi{ProjectID: project.ID, RfiNumber: "RFI-1", Title: "Q", Status: model.RfiOpen, RaisedAt: planned, DueDate: planned}).Error)
	require.NoError(t, db.Create(&model.Document{ProjectID: project.ID, Title: "Plan", DocType: model.DocTypePlan, Status: model.DocumentDraft, UploadedAt: planned}).Error)
	require.NoError(t, db.Create(&model.MediaItem{ProjectID: project.ID, Title: "Photo", MediaType: model.MediaPhoto, CapturedAt: planned}).Error)
	seedApproval(t, db, project.ID, model.ApprovalPending)
	require.NoError(t, db.Create(&model.ActivityLog{ProjectID: project.ID, Actor: "alice", Action: model.ActionUpdate, EntityType: "project", EntityID: project.ID}).Error)

	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+project.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, entity := range []any{
		&model.BudgetItem{}, &model.Milestone{}, &model.Risk{}, &model.Rfi{},
		&model.Document{}, &model.MediaItem{}, &model.Approval{}, &model.ActivityLog{},
	} {
		var count int64
		require.NoError(t, db.Model(entity).Count(&count).Error)
		assert.Zero(t, count, "expected cascade delete for %T", entity)
	}
}
