package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/dao/model"
)

func activityEntries(t *testing.T, db *gorm.DB) []model.ActivityLog {
	t.Helper()

	var entries []model.ActivityLog
	require.NoError(t, db.Order("created_at").Find(&entries).Error)
	return entries
}

func TestApproveFromPending(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)
	approval := seedApproval(t, db, project.ID, model.ApprovalPending)

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/approve",
		DecisionReq{DecisionNote: "ok"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := dataAs[model.Approval](t, w)
	assert.Equal(t, model.ApprovalApproved, got.Status)
	assert.Equal(t, "ok", got.DecisionNote)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, model.SystemActor, *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)

	entries := activityEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionApprove, entries[0].Action)
	assert.Equal(t, model.SystemActor, entries[0].Actor)
	assert.Equal(t, "approval", entries[0].EntityType)
	assert.Equal(t, approval.ID, entries[0].EntityID)
	assert.Equal(t, approval.ID, entries[0].Metadata["approval_id"])
	assert.Equal(t, "approved", entries[0].Metadata["status"])
	assert.Equal(t, "ok", entries[0].Metadata["note"])

	// a second approve is rejected and writes no further audit entry
	w = doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/approve", nil, nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["status"], "approve")
	assert.Contains(t, errs["status"], "approved")
	assert.Len(t, activityEntries(t, db), 1)
}

func TestRejectFromPending(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)
	approval := seedApproval(t, db, project.ID, model.ApprovalPending)

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/reject",
		DecisionReq{DecisionNote: "missing cost code"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := dataAs[model.Approval](t, w)
	assert.Equal(t, model.ApprovalRejected, got.Status)
	assert.Equal(t, "missing cost code", got.DecisionNote)

	entries := activityEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionReject, entries[0].Action)
	assert.Equal(t, "missing cost code", entries[0].Metadata["note"])
}

func TestRejectRequiresPending(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)
	approval := seedApproval(t, db, project.ID, model.ApprovalRejected)

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/reject", nil, nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["status"], "rejected")
	assert.Empty(t, activityEntries(t, db))
}

func TestSubmitReopensDecidedApproval(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	reviewer := "bob"
	reviewedAt := time.Date(2026, 1, 12, 14, 0, 0, 0, time.UTC)
	approval := model.Approval{
		ProjectID:    project.ID,
		EntityType:   "document",
		EntityID:     "doc-00000001",
		Status:       model.ApprovalApproved,
		RequestedBy:  "alice",
		RequestedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		ReviewedBy:   &reviewer,
		ReviewedAt:   &reviewedAt,
		DecisionNote: "fine",
	}
	require.NoError(t, db.Create(&approval).Error)

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/submit", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := dataAs[model.Approval](t, w)
	assert.Equal(t, model.ApprovalPending, got.Status)
	assert.Equal(t, model.SystemActor, got.RequestedBy)
	assert.Nil(t, got.ReviewedBy)
	assert.Nil(t, got.ReviewedAt)
	assert.Empty(t, got.DecisionNote)

	entries := activityEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionSubmit, entries[0].Action)
	assert.Equal(t, approval.ID, entries[0].Metadata["approval_id"])
	assert.Equal(t, "pending", entries[0].Metadata["status"])
}

func TestSubmitRequiresDecidedStatus(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)
	approval := seedApproval(t, db, project.ID, model.ApprovalPending)

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/submit", nil, nil)
	errs := fieldErrors(t, w)
	assert.Contains(t, errs["status"], "submit")
	assert.Contains(t, errs["status"], "pending")
	assert.Empty(t, activityEntries(t, db))
}

func TestTransitionUsesSessionIdentity(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)
	approval := seedApproval(t, db, project.ID, model.ApprovalPending)
	seedUser(t, db, "carol", "Secret123!")
	cookie := sessionCookie(t, r, "carol", "Secret123!")

	w := doJSON(t, r, http.MethodPost, "/api/approvals/"+approval.ID+"/approve",
		DecisionReq{DecisionNote: "looks good"}, map[string]string{"Cookie": cookie})
	require.Equal(t, http.StatusOK, w.Code)

	got := dataAs[model.Approval](t, w)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "carol", *got.ReviewedBy)

	entries := activityEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, "carol", entries[0].Actor)
}

func TestTransitionUnknownApproval(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/approvals/appr-missing/approve", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovalCRUDAndFilter(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	first := seedProject(t, db)
	second := model.Project{Name: "Airport Rail", Status: model.ProjectPlanned}
	require.NoError(t, db.Create(&second).Error)

	seedApproval(t, db, first.ID, model.ApprovalPending)
	seedApproval(t, db, second.ID, model.ApprovalPending)

	w := doJSON(t, r, http.MethodGet, "/api/approvals", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataAs[[]model.Approval](t, w), 2)

	w = doJSON(t, r, http.MethodGet, "/api/approvals?project_id="+first.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered := dataAs[[]model.Approval](t, w)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ProjectID)

	w = doJSON(t, r, http.MethodPost, "/api/approvals", map[string]any{
		"project_id":   first.ID,
		"entity_type":  "milestone",
		"entity_id":    "ms-00000001",
		"status":       "pending",
		"requested_by": "alice",
		"requested_at": "2026-02-01T10:00:00Z",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.Approval](t, w)
	assert.Contains(t, created.ID, "appr-")

	w = doJSON(t, r, http.MethodDelete, "/api/approvals/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
