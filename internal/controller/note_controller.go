package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// ListNotes godoc
// @Summary List shared notes, newest first
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Note}
// @Router /api/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	notes, err := c.NoteService.ListNotes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// GetNote godoc
// @Summary Note detail
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "note id"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid note id")
		return
	}

	note, err := c.NoteService.GetNote(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// UploadNote godoc
// @Summary Upload a note document
// @Tags notes
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "document"
// @Param   title formData string true "title"
// @Param   description formData string false "description"
// @Param   moduleCode formData string false "module code"
// @Param   pages formData int false "page count"
// @Success 201 {object} util.Response{data=model.Note}
// @Failure 400 {object} util.Response
// @Router /api/notes [post]
func (c *NoteController) UploadNote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}
	pages, _ := strconv.Atoi(ctx.PostForm("pages"))

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	input := service.NoteInput{
		Title:       title,
		Description: ctx.PostForm("description"),
		ModuleCode:  ctx.PostForm("moduleCode"),
		Pages:       pages,
	}

	note, err := c.NoteService.CreateNote(ctx.Request.Context(), claims.UserID, input,
		fileHeader.Filename, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

type NoteUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ModuleCode  string `json:"moduleCode"`
	Pages       int    `json:"pages"`
}

// UpdateNote godoc
// @Summary Update note metadata
// @Tags notes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "note id"
// @Param   body body NoteUpdateRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid note id")
		return
	}

	var req NoteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.UpdateNote(uint(id), service.NoteInput{
		Title:       req.Title,
		Description: req.Description,
		ModuleCode:  req.ModuleCode,
		Pages:       req.Pages,
	})
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// DeleteNote godoc
// @Summary Delete a note and its stored file
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "note id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid note id")
		return
	}

	if err := c.NoteService.DeleteNote(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// DownloadNote godoc
// @Summary Resolve a note download URL and bump its counter
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "note id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id}/download [get]
func (c *NoteController) DownloadNote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid note id")
		return
	}

	url, err := c.NoteService.Download(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

type ReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReportNote godoc
// @Summary Report a note for moderation
// @Tags notes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "note id"
// @Param   body body ReportRequest true "reason"
// @Success 201 {object} util.Response{data=model.NoteReport}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id}/report [post]
func (c *NoteController) ReportNote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid note id")
		return
	}

	var req ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.NoteService.ReportNote(uint(id), claims.UserID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoteNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidRequest):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, report)
}

// ListReports godoc
// @Summary List note reports
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Param   unresolved query bool false "only unresolved reports"
// @Success 200 {object} util.Response{data=[]model.NoteReport}
// @Router /api/admin/reports [get]
func (c *NoteController) ListReports(ctx *gin.Context) {
	unresolvedOnly := ctx.Query("unresolved") == "true"

	reports, err := c.NoteService.ListReports(unresolvedOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reports)
}

// ResolveReport godoc
// @Summary Mark a note report as resolved
// @Tags notes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "report id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/reports/{id}/resolve [post]
func (c *NoteController) ResolveReport(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid report id")
		return
	}

	if err := c.NoteService.ResolveReport(uint(id)); err != nil {
		if errors.Is(err, util.ErrReportNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
