package app

import (
	"github.com/ogooluwanick/pulse-training-platform-sub001/docs"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/middleware"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/model"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.CompanyScopeMiddleware())
	{
		a.registerEmployeeRoutes(authGroup, c)
		a.registerCompanyRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerEmployeeRoutes(rg *gin.RouterGroup, c *controllers) {
	assignments := rg.Group("/assignments")
	assignments.Use(middleware.RoleMiddleware(model.Employee, model.Company))
	{
		assignments.GET("/mine", c.assignment.ListMyAssignments)
		assignments.PATCH("/:id/lessons/:lessonId", c.assignment.UpdateLessonProgress)
	}
}

func (a *App) registerCompanyRoutes(rg *gin.RouterGroup, c *controllers) {
	company := rg.Group("/company")
	company.Use(middleware.RoleMiddleware(model.Company))
	{
		company.GET("/reports", c.report.GetReport)
		company.GET("/reports/export", c.report.DownloadCSV)
		company.POST("/reports/export", c.report.ArchiveCSV)

		company.POST("/assignments", c.assignment.AssignCourse)
		company.GET("/employees/:employeeId/assignments", c.assignment.ListEmployeeAssignments)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/reports", c.report.GetReport)
		admin.GET("/reports/export", c.report.DownloadCSV)
		admin.POST("/reports/export", c.report.ArchiveCSV)
	}
}
