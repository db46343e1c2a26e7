package app

import (
	"stepwise_backend/docs"
	"stepwise_backend/internal/middleware"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/monitoring"
	"stepwise_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, resolver middleware.SessionResolver) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.NoRoute(util.NotFound)

	cookieName := a.Config.Auth.CookieName

	// 所有接口先尝试解析会话，游客照常放行
	api := router.Group("/api")
	api.Use(middleware.TryAuthMiddleware(resolver, cookieName))

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(api, c)

	// 2. 需要登录的路由
	authorized := api.Group("")
	authorized.Use(middleware.AuthMiddleware(resolver, cookieName))
	a.registerUserRoutes(authorized, c)

	// 3. 管理员路由
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(resolver, cookieName), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/problems", c.problem.Create)
	}
}

func (a *App) registerPublicRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/health", c.health.HealthCheck)

	api.GET("/auth/me", c.auth.Me)
	api.POST("/auth/logout", c.auth.Logout)

	problems := api.Group("/problems")
	{
		problems.GET("", c.problem.List)
		problems.GET("/:id", c.problem.GetByID)
		problems.POST("/hint", c.problem.Hint)
		problems.POST("/guiding-questions", c.problem.GuidingQuestions)
	}
}

func (a *App) registerUserRoutes(authorized *gin.RouterGroup, c *controllers) {
	// 两张图片加上表单开销
	maxBody := 2*a.Config.Storage.MaxUploadMB<<20 + 1<<20
	authorized.POST("/upload-images", security.BodyLimit(maxBody), c.upload.Upload)

	authorized.POST("/problems/extract-steps", c.problem.ExtractSteps)
	authorized.GET("/progress", c.progress.GetProgress)

	progress := authorized.Group("/problems/:id/progress")
	{
		progress.GET("", c.progress.ProblemProgress)
		progress.POST("/view", c.progress.RecordView)
		progress.POST("/hint", c.progress.RecordHint)
		progress.POST("/condition-click", c.progress.RecordConditionClick)
		progress.POST("/steps-revealed", c.progress.RecordStepsRevealed)
		progress.POST("/solution-view", c.progress.RecordSolutionView)
	}
}
