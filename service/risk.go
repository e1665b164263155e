package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListRisks(c *gin.Context) {
	var risks []model.Risk
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("rating desc, title").Find(&risks).Error; err != nil {
		logutils.Log.Error("list risks: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, risks)
}

func GetRisk(c *gin.Context) {
	var risk model.Risk
	err := query.DB.WithContext(c.Request.Context()).
		First(&risk, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "risk")
		return
	}
	response.Success(c, risk)
}

func CreateRisk(c *gin.Context) {
	var risk model.Risk
	if err := c.ShouldBindJSON(&risk); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if errs := risk.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, risk.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&risk).Error; err != nil {
		logutils.Log.Error("create risk: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, risk)
}

func UpdateRisk(c *gin.Context) {
	var risk model.Risk
	err := query.DB.WithContext(c.Request.Context()).
		First(&risk, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "risk")
		return
	}
	id := risk.ID
	if err := c.ShouldBindJSON(&risk); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	risk.ID = id
	if errs := risk.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, risk.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&risk).Error; err != nil {
		logutils.Log.Error("update risk: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, risk)
}

func DeleteRisk(c *gin.Context) {
	var risk model.Risk
	err := query.DB.WithContext(c.Request.Context()).
		First(&risk, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "risk")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&risk).Error; err != nil {
		logutils.Log.Error("delete risk: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterRisk(g *gin.RouterGroup) {
	g.GET("/risks", ListRisks)
	g.POST("/risks", CreateRisk)
	g.GET("/risks/:id", GetRisk)
	g.PUT("/risks/:id", UpdateRisk)
	g.PATCH("/risks/:id", UpdateRisk)
	g.DELETE("/risks/:id", DeleteRisk)
}
