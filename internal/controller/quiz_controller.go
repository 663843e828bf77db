package controller

import (
	"errors"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type QuizQuestionsRequest struct {
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	Count      int    `json:"count" binding:"required"`
}

// GenerateQuestions godoc
// @Summary Generate multiple choice quiz questions
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizQuestionsRequest true "quiz parameters"
// @Success 200 {object} util.Response{data=[]service.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/quiz/questions [post]
func (c *QuizController) GenerateQuestions(ctx *gin.Context) {
	var req QuizQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QuizService.GenerateQuestions(ctx.Request.Context(), req.Category, req.Difficulty, req.Count)
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

type QuizExplanationRequest struct {
	Question      string `json:"question" binding:"required"`
	UserAnswer    string `json:"userAnswer" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	IsCorrect     bool   `json:"isCorrect"`
}

// GenerateExplanation godoc
// @Summary Explain a quiz answer
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizExplanationRequest true "answered question"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quiz/explanation [post]
func (c *QuizController) GenerateExplanation(ctx *gin.Context) {
	var req QuizExplanationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	explanation, err := c.QuizService.GenerateExplanation(ctx.Request.Context(),
		req.Question, req.UserAnswer, req.CorrectAnswer, req.IsCorrect)
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"explanation": explanation})
}

type QuizAssessmentRequest struct {
	Score     int    `json:"score"`
	Total     int    `json:"total" binding:"required"`
	Category  string `json:"category" binding:"required"`
	TimeTaken *int   `json:"timeTaken"`
}

// GenerateAssessment godoc
// @Summary Assess a finished quiz attempt
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizAssessmentRequest true "quiz result"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/quiz/assessment [post]
func (c *QuizController) GenerateAssessment(ctx *gin.Context) {
	var req QuizAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.QuizService.GenerateAssessment(ctx.Request.Context(),
		req.Score, req.Total, req.Category, req.TimeTaken)
	if err != nil {
		if errors.Is(err, util.ErrInvalidRequest) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"assessment": assessment})
}
