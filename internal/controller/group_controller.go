package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// ListGroups godoc
// @Summary List study groups
// @Tags groups
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.StudyGroup}
// @Router /api/groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := c.GroupService.ListGroups(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// GetGroup godoc
// @Summary Group detail with members
// @Tags groups
// @Produce  json
// @Param   id path int true "group id"
// @Success 200 {object} util.Response{data=model.StudyGroup}
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	group, err := c.GroupService.GetGroup(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrGroupNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, group)
}

type GroupRequest struct {
	Title        string `json:"title" binding:"required"`
	InstructorID uint   `json:"instructorId" binding:"required"`
	Image        string `json:"image"`
	Category     string `json:"category" binding:"required,oneof=python web-development sql php"`
}

// CreateGroup godoc
// @Summary Create a study group
// @Tags groups
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body GroupRequest true "group"
// @Success 201 {object} util.Response{data=model.StudyGroup}
// @Failure 400 {object} util.Response
// @Router /api/groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.GroupService.CreateGroup(ctx.Request.Context(), service.GroupInput{
		Title:        req.Title,
		InstructorID: req.InstructorID,
		Image:        req.Image,
		Category:     req.Category,
	})
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, group)
}

type GroupUpdateRequest struct {
	Title        string `json:"title"`
	InstructorID uint   `json:"instructorId"`
	Image        string `json:"image"`
	Category     string `json:"category" binding:"omitempty,oneof=python web-development sql php"`
}

// UpdateGroup godoc
// @Summary Update a study group
// @Tags groups
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "group id"
// @Param   body body GroupUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.StudyGroup}
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	var req GroupUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.GroupService.UpdateGroup(ctx.Request.Context(), uint(id), service.GroupInput{
		Title:        req.Title,
		InstructorID: req.InstructorID,
		Image:        req.Image,
		Category:     req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidRequest):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, group)
}

// DeleteGroup godoc
// @Summary Delete a study group
// @Tags groups
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "group id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	if err := c.GroupService.DeleteGroup(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrGroupNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// JoinGroup godoc
// @Summary Join a study group as a student
// @Tags groups
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "group id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{id}/join [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	if err := c.GroupService.JoinGroup(claims.UserID, uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrGroupNotFound), errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
