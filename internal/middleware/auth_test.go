package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
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

func testConfig() *config.Store {
	return config.NewStore(&config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	})
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	token, err := util.GenerateJWT(&model.User{
		BaseModel: model.BaseModel{ID: 7},
		Email:     "user@example.com",
		Role:      role,
	}, "test-secret", time.Hour)
	require.NoError(t, err)
	return token
}

func protectedRouter(cfg *config.Store, roles ...model.UserRole) *gin.Engine {
	r := gin.New()
	grp := r.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		grp.Use(RoleMiddleware(roles...))
	}
	grp.GET("/secret", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	t.Run("missing token", func(t *testing.T) {
		w := get(r, "/secret", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := get(r, "/secret", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid header token", func(t *testing.T) {
		w := get(r, "/secret", tokenFor(t, model.Student))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})

	t.Run("valid query token", func(t *testing.T) {
		w := get(r, "/secret?token="+tokenFor(t, model.Student), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthMiddlewareSecretRotation(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)
	token := tokenFor(t, model.Student)

	w := get(r, "/secret", token)
	require.Equal(t, http.StatusOK, w.Code)

	// Publishing a new secret invalidates tokens signed with the old one
	// without rebuilding the middleware.
	cfg.Set(&config.Config{JWT: config.JWTConfig{
		Secret:     "rotated-secret",
		ExpireTime: time.Hour,
	}})

	w = get(r, "/secret", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	rotated, err := util.GenerateJWT(&model.User{
		BaseModel: model.BaseModel{ID: 7},
		Role:      model.Student,
	}, "rotated-secret", time.Hour)
	require.NoError(t, err)

	w = get(r, "/secret", rotated)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, model.TeamLeader)

	t.Run("student blocked from leader route", func(t *testing.T) {
		w := get(r, "/secret", tokenFor(t, model.Student))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("leader allowed", func(t *testing.T) {
		w := get(r, "/secret", tokenFor(t, model.TeamLeader))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin passes every gate", func(t *testing.T) {
		w := get(r, "/secret", tokenFor(t, model.Admin))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
