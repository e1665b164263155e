package service

import (
	"github.com/gin-gonic/gin"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListBudgetItems(c *gin.Context) {
	var items []model.BudgetItem
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("category").Find(&items).Error; err != nil {
		logutils.Log.Error("list budget items: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, items)
}

func GetBudgetItem(c *gin.Context) {
	var item model.BudgetItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "budget item")
		return
	}
	response.Success(c, item)
}

func CreateBudgetItem(c *gin.Context) {
	var item model.BudgetItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if errs := item.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, item.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		logutils.Log.Error("create budget item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, item)
}

func UpdateBudgetItem(c *gin.Context) {
	var item model.BudgetItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "budget item")
		return
	}
	id := item.ID
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	item.ID = id
	if errs := item.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}
	if !checkProjectRef(c, item.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&item).Error; err != nil {
		logutils.Log.Error("update budget item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, item)
}

func DeleteBudgetItem(c *gin.Context) {
	var item model.BudgetItem
	err := query.DB.WithContext(c.Request.Context()).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "budget item")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&item).Error; err != nil {
		logutils.Log.Error("delete budget item: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

func RegisterBudget(g *gin.RouterGroup) {
	g.GET("/budgets", ListBudgetItems)
	g.POST("/budgets", CreateBudgetItem)
	g.GET("/budgets/:id", GetBudgetItem)
	g.PUT("/budgets/:id", UpdateBudgetItem)
	g.PATCH("/budgets/:id", UpdateBudgetItem)
	g.DELETE("/budgets/:id", DeleteBudgetItem)
}
