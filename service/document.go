package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListDocuments(c *gin.Context) {
	var docs []model.Document
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("uploaded_at desc").Find(&docs).Error; err != nil {
		logutils.Log.Error("list documents: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, docs)
}

func GetDocument(c *gin.Context) {
	var doc model.Document
	err := query.DB.WithContext(c.Request.Context()).
		First(&doc, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "document")
		return
	}
	response.Success(c, doc)
}

func CreateDocument(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if !checkProjectRef(c, doc.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&doc).Error; err != nil {
		logutils.Log.Error("create document: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, doc)
}

func UpdateDocument(c *gin.Context) {
	var doc model.Document
	err := query.DB.WithContext(c.Request.Context()).
		First(&doc, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "document")
		return
	}
	id := doc.ID
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	doc.ID = id
	if !checkProjectRef(c, doc.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&doc).Error; err != nil {
		logutils.Log.Error("update document: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, doc)
}

func DeleteDocument(c *gin.Context) {
	var doc model.Document
	err := query.DB.WithContext(c.Request.Context()).
		First(&doc, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "document")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&doc).Error; err != nil {
		logutils.Log.Error("delete document: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterDocument(g *gin.RouterGroup) {
	g.GET("/documents", ListDocuments)
	g.POST("/documents", CreateDocument)
	g.GET("/documents/:id", GetDocument)
	g.PUT("/documents/:id", UpdateDocument)
	g.PATCH("/documents/:id", UpdateDocument)
	g.DELETE("/documents/:id", DeleteDocument)
}
