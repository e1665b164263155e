package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListMediaItems(c *gin.Context) {
	var items []model.MediaItem
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("captured_at desc").Find(&items).Error; err != nil {
		logutils.Log.Error("list media items: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, items)
}

func GetMediaItem(c *gin.Context) {
	var item model.MediaItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "media item")
		return
	}
	response.Success(c, item)
}

func CreateMediaItem(c *gin.Context) {
	var item model.MediaItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if !checkProjectRef(c, item.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		logutils.Log.Error("create media item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, item)
}

func UpdateMediaItem(c *gin.Context) {
	var item model.MediaItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "media item")
		return
	}
	id := item.ID
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	item.ID = id
	if !checkProjectRef(c, item.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&item).Error; err != nil {
		logutils.Log.Error("update media item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, item)
}

func DeleteMediaItem(c *gin.Context) {
	var item model.MediaItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "media item")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&item).Error; err != nil {
		logutils.Log.Error("delete media item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterMedia(g *gin.RouterGroup) {
	g.GET("/media-items", ListMediaItems)
	g.POST("/media-items", CreateMediaItem)
	g.GET("/media-items/:id", GetMediaItem)
	g.PUT("/media-items/:id", UpdateMediaItem)
	g.PATCH("/media-items/:id", UpdateMediaItem)
	g.DELETE("/media-items/:id", DeleteMediaItem)
}
