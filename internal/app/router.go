package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config))
	{
		a.registerMemberRoutes(authGroup, c)
		a.registerLeaderRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/groups", c.group.ListGroups)
		public.GET("/groups/:id", c.group.GetGroup)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile/student", c.user.UpdateStudentProfile)
	rg.PUT("/profile/leader", c.user.UpdateLeaderProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	rg.POST("/groups/:id/join", c.group.JoinGroup)

	rg.GET("/notes", c.note.ListNotes)
	rg.GET("/notes/:id", c.note.GetNote)
	rg.GET("/notes/:id/download", c.note.DownloadNote)
	rg.POST("/notes/:id/report", c.note.ReportNote)

	rg.GET("/routine", c.routine.GetTimetable)

	quiz := rg.Group("/quiz")
	{
		quiz.POST("/questions", c.quiz.GenerateQuestions)
		quiz.POST("/explanation", c.quiz.GenerateExplanation)
		quiz.POST("/assessment", c.quiz.GenerateAssessment)
	}
}

func (a *App) registerLeaderRoutes(rg *gin.RouterGroup, c *controllers) {
	leader := rg.Group("/")
	leader.Use(middleware.RoleMiddleware(model.TeamLeader))
	{
		leader.POST("/groups", c.group.CreateGroup)
		leader.PUT("/groups/:id", c.group.UpdateGroup)
		leader.DELETE("/groups/:id", c.group.DeleteGroup)

		leader.POST("/notes", c.note.UploadNote)
		leader.PUT("/notes/:id", c.note.UpdateNote)
		leader.DELETE("/notes/:id", c.note.DeleteNote)

		leader.PUT("/routine", c.routine.UpsertEntry)
		leader.DELETE("/routine", c.routine.DeleteEntry)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PATCH("/users/:id/disable", c.user.SetUserDisabled)

		admin.GET("/reports", c.note.ListReports)
		admin.POST("/reports/:id/resolve", c.note.ResolveReport)
	}
}
