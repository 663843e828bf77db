package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func quizRouter() *gin.Engine {
	c := NewQuizController(service.NewQuizService(nil))
	r := gin.New()
	r.POST("/api/quiz/questions", c.GenerateQuestions)
	r.POST("/api/quiz/explanation", c.GenerateExplanation)
	r.POST("/api/quiz/assessment", c.GenerateAssessment)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuizQuestionsEndpoint(t *testing.T) {
	r := quizRouter()

	t.Run("fallback questions with no providers", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/questions", gin.H{
			"category":   "python",
			"difficulty": "beginner",
			"count":      3,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp util.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		questions, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, questions, 3)
	})

	t.Run("invalid count is a 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/questions", gin.H{
			"category":   "python",
			"difficulty": "beginner",
			"count":      11,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown category is a 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/questions", gin.H{
			"category":   "fortran",
			"difficulty": "beginner",
			"count":      3,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing body fields rejected by binding", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/questions", gin.H{"category": "python"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuizExplanationEndpoint(t *testing.T) {
	r := quizRouter()

	w := postJSON(t, r, "/api/quiz/explanation", gin.H{
		"question":      "Which command queries data?",
		"userAnswer":    "GET",
		"correctAnswer": "SELECT",
		"isCorrect":     false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "The correct answer is 'SELECT'. This is a great learning opportunity!", data["explanation"])
}

func TestQuizAssessmentEndpoint(t *testing.T) {
	r := quizRouter()

	t.Run("mastery bracket", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/assessment", gin.H{
			"score":    4,
			"total":    5,
			"category": "python",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp util.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, data["assessment"], "Outstanding performance")
	})

	t.Run("score above total is a 400", func(t *testing.T) {
		w := postJSON(t, r, "/api/quiz/assessment", gin.H{
			"score":    6,
			"total":    5,
			"category": "python",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
