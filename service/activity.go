package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

// The activity trail is append-only: rows are written by approval
// transitions, so only list and retrieve are exposed here.

func ListActivity(c *gin.Context) {
	var entries []model.ActivityLog
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("created_at desc").Find(&entries).Error; err != nil {
		logutils.Log.Error("list activity: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, entries)
}

func GetActivity(c *gin.Context) {
	var entry model.ActivityLog
	err := query.DB.WithContext(c.Request.Context()).
		First(&entry, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "activity entry")
		return
	}
	response.Success(c, entry)
}

func RegisterActivity(g *gin.RouterGroup) {
	g.GET("/activity", ListActivity)
	g.GET("/activity/:id", GetActivity)
}
