package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListRfis(c *gin.Context) {
	var rfis []model.Rfi
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("raised_at desc").Find(&rfis).Error; err != nil {
		logutils.Log.Error("list rfis: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, rfis)
}

func GetRfi(c *gin.Context) {
	var rfi model.Rfi
	err := query.DB.WithContext(c.Request.Context()).
		First(&rfi, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "rfi")
		return
	}
	response.Success(c, rfi)
}

func CreateRfi(c *gin.Context) {
	var rfi model.Rfi
	if err := c.ShouldBindJSON(&rfi); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if !checkProjectRef(c, rfi.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&rfi).Error; err != nil {
		logutils.Log.Error("create rfi: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, rfi)
}

func UpdateRfi(c *gin.Context) {
	var rfi model.Rfi
	err := query.DB.WithContext(c.Request.Context()).
		First(&rfi, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "rfi")
		return
	}
	id := rfi.ID
	if err := c.ShouldBindJSON(&rfi); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	rfi.ID = id
	if !checkProjectRef(c, rfi.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&rfi).Error; err != nil {
		logutils.Log.Error("update rfi: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, rfi)
}

func DeleteRfi(c *gin.Context) {
	var rfi model.Rfi
	err := query.DB.WithContext(c.Request.Context()).
		First(&rfi, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "rfi")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&rfi).Error; err != nil {
		logutils.Log.Error("delete rfi: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterRfi(g *gin.RouterGroup) {
	g.GET("/rfis", ListRfis)
	g.POST("/rfis", CreateRfi)
	g.GET("/rfis/:id", GetRfi)
	g.PUT("/rfis/:id", UpdateRfi)
	g.PATCH("/rfis/:id", UpdateRfi)
	g.DELETE("/rfis/:id", DeleteRfi)
}
