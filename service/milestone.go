package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListMilestones(c *gin.Context) {
	var milestones []model.Milestone
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("planned_date").Find(&milestones).Error; err != nil {
		logutils.Log.Error("list milestones: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, milestones)
}

func GetMilestone(c *gin.Context) {
	var milestone model.Milestone
	err := query.DB.WithContext(c.Request.Context()).
		First(&milestone, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "milestone")
		return
	}
	response.Success(c, milestone)
}

func CreateMilestone(c *gin.Context) {
	var milestone model.Milestone
	if err := c.ShouldBindJSON(&milestone); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if errs := milestone.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, milestone.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&milestone).Error; err != nil {
		logutils.Log.Error("create milestone: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, milestone)
}

func UpdateMilestone(c *gin.Context) {
	var milestone model.Milestone
	err := query.DB.WithContext(c.Request.Context()).
		First(&milestone, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "milestone")
		return
	}
	id := milestone.ID
	if err := c.ShouldBindJSON(&milestone); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	milestone.ID = id
	if errs := milestone.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, milestone.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&milestone).Error; err != nil {
		logutils.Log.Error("update milestone: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, milestone)
}

func DeleteMilestone(c *gin.Context) {
	var milestone model.Milestone
	err := query.DB.WithContext(c.Request.Context()).
		First(&milestone, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "milestone")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&milestone).Error; err != nil {
		logutils.Log.Error("delete milestone: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterMilestone(g *gin.RouterGroup) {
	g.GET("/milestones", ListMilestones)
	g.POST("/milestones", CreateMilestone)
	g.GET("/milestones/:id", GetMilestone)
	g.PUT("/milestones/:id", UpdateMilestone)
	g.PATCH("/milestones/:id", UpdateMilestone)
	g.DELETE("/milestones/:id", DeleteMilestone)
}
