package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListProjects(c *gin.Context) {
	var projects []model.Project
	err := query.DB.WithContext(c.Request.Context()).
		Order("name").Find(&projects).Error
	if err != nil {
		logutils.Log.Error("list projects: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, projects)
}

func GetProject(c *gin.Context) {
	var project model.Project
	err := query.DB.WithContext(c.Request.Context()).
		First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "project")
		return
	}
	response.Success(c, project)
}

func CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		logutils.Log.Error("create project: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, project)
}

func UpdateProject(c *gin.Context) {
	var project model.Project
	err := query.DB.WithContext(c.Request.Context()).
		First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "project")
		return
	}
	id := project.ID
	if err := c.ShouldBindJSON(&project); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	project.ID = id
	if err := query.DB.WithContext(c.Request.Context()).Save(&project).Error; err != nil {
		logutils.Log.Error("update project: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, project)
}

// DeleteProject removes the project row; the store cascades the delete to
// every owned child record.
func DeleteProject(c *gin.Context) {
	var project model.Project
	err := query.DB.WithContext(c.Request.Context()).
		First(&project, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "project")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&project).Error; err != nil {
		logutils.Log.Error("delete project: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterProject(g *gin.RouterGroup) {
	g.GET("/projects", ListProjects)
	g.POST("/projects", CreateProject)
	g.GET("/projects/:id", GetProject)
	g.PUT("/projects/:id", UpdateProject)
	g.PATCH("/projects/:id", UpdateProject)
	g.DELETE("/projects/:id", DeleteProject)
}
