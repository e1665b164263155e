package service

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

// projectExists reports whether the referenced project is in the store. The
// child tables carry a foreign key to projects, but checking up front turns
// a driver error into a proper field-level validation message.
func projectExists(c *gin.Context, projectID string) (bool, error) {
	var count int64
	err := query.DB.WithContext(c.Request.Context()).
		Model(&model.Project{}).Where("id = ?", projectID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkProjectRef validates a child record's project reference and writes
// the error response itself. Returns false when the handler should bail out.
func checkProjectRef(c *gin.Context, projectID string) bool {
	if projectID == "" {
		response.ValidationError(c, response.FieldErrors{"project_id": "project_id is required"})
		return false
	}
	ok, err := projectExists(c, projectID)
	if err != nil {
		logutils.Log.Error("project lookup: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return false
	}
	if !ok {
		response.ValidationError(c, response.FieldErrors{"project_id": "referenced project does not exist"})
		return false
	}
	return true
}

// respondFetchError maps a gorm read error to 404 or 500.
func respondFetchError(c *gin.Context, err error, what string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFoundError(c, what+" not found")
		return
	}
	logutils.Log.Error(what+" fetch: ", err)
	response.Error(c, err.Error(), response.NotSpecified)
}

// scopeByProject applies the optional ?project_id= list filter.
func scopeByProject(c *gin.Context, db *gorm.DB) *gorm.DB {
	if projectID := c.Query("project_id"); projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	return db
}
