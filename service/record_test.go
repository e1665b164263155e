package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/dao/model"
)

func TestRfiRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/rfis", map[string]any{
		"project_id": project.ID,
		"rfi_number": "RFI-042",
		"title":      "Slab penetration detail",
		"question":   "Confirm sleeve size for the level 2 riser.",
		"status":     "open",
		"raised_by":  "dana",
		"raised_at":  "2026-02-03T08:30:00Z",
		"due_date":   "2026-02-17T00:00:00Z",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.Rfi](t, w)
	assert.Contains(t, created.ID, "rfi-")
	assert.Nil(t, created.RespondedAt)

	w = doJSON(t, r, http.MethodPatch, "/api/rfis/"+created.ID, map[string]any{
		"status":           "answered",
		"responded_at":     "2026-02-10T11:00:00Z",
		"response_summary": "Use a 150mm sleeve.",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataAs[model.Rfi](t, w)
	assert.Equal(t, model.RfiAnswered, updated.Status)
	require.NotNil(t, updated.RespondedAt)

	w = doJSON(t, r, http.MethodDelete, "/api/rfis/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDocumentRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/documents", map[string]any{
		"project_id":  project.ID,
		"doc_type":    "plan",
		"title":       "Site establishment plan",
		"file_url":    "https://files.example.com/plans/site-est-v2.pdf",
		"version":     "2.0",
		"status":      "draft",
		"uploaded_by": "dana",
		"uploaded_at": "2026-01-20T10:00:00Z",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.Document](t, w)
	assert.Contains(t, created.ID, "doc-")

	w = doJSON(t, r, http.MethodPatch, "/api/documents/"+created.ID,
		map[string]any{"status": "approved"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.DocumentApproved, dataAs[model.Document](t, w).Status)

	w = doJSON(t, r, http.MethodGet, "/api/documents?project_id="+project.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, dataAs[[]model.Document](t, w), 1)
}

func TestMediaItemRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()
	project := seedProject(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/media-items", map[string]any{
		"project_id":  project.ID,
		"title":       "East portal progress",
		"media_type":  "photo",
		"media_url":   "https://media.example.com/east-portal.jpg",
		"captured_at": "2026-02-05T07:45:00Z",
		"uploaded_by": "site-cam",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := dataAs[model.MediaItem](t, w)
	assert.Contains(t, created.ID, "media-")

	w = doJSON(t, r, http.MethodGet, "/api/media-items/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/media-items/media-missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
