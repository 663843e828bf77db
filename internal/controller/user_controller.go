package controller

import (
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type StudentProfileRequest struct {
	ClassName   string `json:"className"`
	SchoolName  string `json:"schoolName"`
	Address     string `json:"address"`
	ParentPhone string `json:"parentPhone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// UpdateStudentProfile godoc
// @Summary Update the student profile of the current user
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StudentProfileRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/profile/student [put]
func (c *UserController) UpdateStudentProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateStudentProfile(claims.UserID, service.StudentProfileUpdate{
		ClassName:   req.ClassName,
		SchoolName:  req.SchoolName,
		Address:     req.Address,
		ParentPhone: req.ParentPhone,
		Email:       req.Email,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

type LeaderProfileRequest struct {
	Qualification  string `json:"qualification"`
	SubjectsTaught string `json:"subjectsTaught"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email" binding:"omitempty,email"`
}

// UpdateLeaderProfile godoc
// @Summary Update the team-leader profile of the current user
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LeaderProfileRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/profile/leader [put]
func (c *UserController) UpdateLeaderProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LeaderProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateLeaderProfile(claims.UserID, service.LeaderProfileUpdate{
		Qualification:  req.Qualification,
		SubjectsTaught: req.SubjectsTaught,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "image file"
// @Success 200 {object} util.Response{data=object}
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.UserService.UploadAvatar(
		ctx.Request.Context(),
		claims.UserID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "page"
// @Param   limit query int false "page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.ListUsers(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

type DisableUserRequest struct {
	Disabled bool `json:"disabled"`
}

// SetUserDisabled godoc
// @Summary Disable or re-enable an account
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Param   body body DisableUserRequest true "disabled flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/disable [patch]
func (c *UserController) SetUserDisabled(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req DisableUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(uint(id), req.Disabled); err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
