package controller

import (
	"errors"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoutineController struct {
	RoutineService *service.RoutineService
}

func NewRoutineController(routineService *service.RoutineService) *RoutineController {
	return &RoutineController{RoutineService: routineService}
}

// GetTimetable godoc
// @Summary Weekly class timetable
// @Tags routine
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Timetable}
// @Router /api/routine [get]
func (c *RoutineController) GetTimetable(ctx *gin.Context) {
	timetable, err := c.RoutineService.GetTimetable(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, timetable)
}

type RoutineRequest struct {
	Day       string `json:"day" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	GroupCode string `json:"groupCode" binding:"required"`
	GroupName string `json:"groupName"`
}

// UpsertEntry godoc
// @Summary Set the class occupying a timetable cell
// @Tags routine
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body RoutineRequest true "cell assignment"
// @Success 200 {object} util.Response{data=model.Routine}
// @Failure 400 {object} util.Response
// @Router /api/routine [put]
func (c *RoutineController) UpsertEntry(ctx *gin.Context) {
	var req RoutineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.RoutineService.UpsertEntry(ctx.Request.Context(), service.RoutineInput{
		Day:       req.Day,
		TimeSlot:  req.TimeSlot,
		GroupCode: req.GroupCode,
		GroupName: req.GroupName,
	})
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}

// DeleteEntry godoc
// @Summary Clear a timetable cell
// @Tags routine
// @Produce  json
// @Security ApiKeyAuth
// @Param   day query string true "weekday"
// @Param   slot query string true "time slot"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/routine [delete]
func (c *RoutineController) DeleteEntry(ctx *gin.Context) {
	day := ctx.Query("day")
	slot := ctx.Query("slot")

	if err := c.RoutineService.DeleteEntry(ctx.Request.Context(), day, slot); err != nil {
		switch {
		case errors.Is(err, util.ErrRoutineNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidRequest):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
