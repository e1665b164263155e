package service

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
)

func ListApprovals(c *gin.Context) {
	var approvals []model.Approval
	db := scopeByProject(c, query.DB.WithContext(c.Request.Context()))
	if err := db.Order("requested_at desc").Find(&approvals).Error; err != nil {
		logutils.Log.Error("list approvals: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, approvals)
}

func GetApproval(c *gin.Context) {
	var approval model.Approval
	err := query.DB.WithContext(c.Request.Context()).
		First(&approval, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "approval")
		return
	}
	response.Success(c, approval)
}

func CreateApproval(c *gin.Context) {
	var approval model.Approval
	if err := c.ShouldBindJSON(&approval); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if !checkProjectRef(c, approval.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Create(&approval).Error; err != nil {
		logutils.Log.Error("create approval: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Created(c, approval)
}

func UpdateApproval(c *gin.Context) {
	var approval model.Approval
	err := query.DB.WithContext(c.Request.Context()).
		First(&approval, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "approval")
		return
	}
	id := approval.ID
	if err := c.ShouldBindJSON(&approval); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	approval.ID = id
	if !checkProjectRef(c, approval.ProjectID) {
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Save(&approval).Error; err != nil {
		logutils.Log.Error("update approval: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, approval)
}

func DeleteApproval(c *gin.Context) {
	var approval model.Approval
	err := query.DB.WithContext(c.Request.Context()).
		First(&approval, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "approval")
		return
	}
	if err := query.DB.WithContext(c.Request.Context()).Delete(&approval).Error; err != nil {
		logutils.Log.Error("delete approval: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.NoContent(c)
}

type DecisionReq struct {
	DecisionNote string `json:"decision_note"`
}

func SubmitApproval(c *gin.Context) {
	transitionApproval(c, model.ActionSubmit)
}

func ApproveApproval(c *gin.Context) {
	transitionApproval(c, model.ActionApprove)
}

func RejectApproval(c *gin.Context) {
	transitionApproval(c, model.ActionReject)
}

// transitionApproval moves an approval along the submit/approve/reject
// edges. A transition from the wrong status is a validation error naming
// the current status; a successful one mutates the row and appends one
// activity entry, committed as a single transaction.
func transitionApproval(c *gin.Context, action model.ActivityAction) {
	var approval model.Approval
	err := query.DB.WithContext(c.Request.Context()).
		First(&approval, "id = ?", c.Param("id")).Error
	if err != nil {
		respondFetchError(c, err, "approval")
		return
	}

	var note string
	if action == model.ActionApprove || action == model.ActionReject {
		// decision note body is optional
		if c.Request.ContentLength > 0 {
			var req DecisionReq
			if err := c.ShouldBindJSON(&req); err != nil {
				response.BadRequestError(c, err.Error())
				return
			}
			note = req.DecisionNote
		}
	}

	actor := ActingIdentity(c)
	now := time.Now()

	switch action {
	case model.ActionSubmit:
		if approval.Status != model.ApprovalApproved && approval.Status != model.ApprovalRejected {
			response.ValidationError(c, response.FieldErrors{
				"status": fmt.Sprintf("cannot submit approval in status %s", approval.Status),
			})
			return
		}
		approval.Status = model.ApprovalPending
		approval.RequestedBy = actor
		approval.RequestedAt = now
		approval.ReviewedBy = nil
		approval.ReviewedAt = nil
		approval.DecisionNote = ""
	case model.ActionApprove, model.ActionReject:
		if approval.Status != model.ApprovalPending {
			response.ValidationError(c, response.FieldErrors{
				"status": fmt.Sprintf("cannot %s approval in status %s", action, approval.Status),
			})
			return
		}
		if action == model.ActionApprove {
			approval.Status = model.ApprovalApproved
		} else {
			approval.Status = model.ApprovalRejected
		}
		approval.ReviewedBy = &actor
		approval.ReviewedAt = &now
		approval.DecisionNote = note
	default:
		response.BadRequestError(c, "unknown transition")
		return
	}

	metadata := datatypes.JSONMap{
		"approval_id": approval.ID,
		"status":      string(approval.Status),
	}
	if note != "" {
		metadata["note"] = note
	}
	entry := model.ActivityLog{
		ProjectID:  approval.ProjectID,
		Actor:      actor,
		Action:     action,
		EntityType: "approval",
		EntityID:   approval.ID,
		Metadata:   metadata,
	}

	err = query.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&approval).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		logutils.Log.Error(string(action)+" approval: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	response.Success(c, approval)
}

func RegisterApproval(g *gin.RouterGroup) {
	g.GET("/approvals", ListApprovals)
	g.POST("/approvals", CreateApproval)
	g.GET("/approvals/:id", GetApproval)
	g.PUT("/approvals/:id", UpdateApproval)
	g.PATCH("/approvals/:id", UpdateApproval)
	g.DELETE("/approvals/:id", DeleteApproval)
	g.POST("/approvals/:id/submit", SubmitApproval)
	g.POST("/approvals/:id/approve", ApproveApproval)
	g.POST("/approvals/:id/reject", RejectApproval)
}
