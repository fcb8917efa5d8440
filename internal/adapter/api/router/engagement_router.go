package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupEngagementRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	engagementHandler := handler.GetEngagementHandler()

	// Customer intake forms
	e.POST("/constructionform", engagementHandler.CreateConstructionProject, authMiddleware.Authenticate)
	e.POST("/architect_form", engagementHandler.CreateArchitectHiring, authMiddleware.Authenticate)
	e.POST("/interiordesign_form", engagementHandler.CreateDesignRequest, authMiddleware.Authenticate)

	// Worker job feed and decisions
	e.GET("/job_status", engagementHandler.ListJobs, authMiddleware.Authenticate)
	e.PATCH("/api/job-status/:id", engagementHandler.UpdateJobStatus, authMiddleware.Authenticate)
	e.POST("/api/job-updates/:id", engagementHandler.PostJobUpdate, authMiddleware.Authenticate)

	// Company side of construction projects
	e.POST("/company/submit-proposal", engagementHandler.SubmitProposal, authMiddleware.Authenticate)

	projects := e.Group("/api/projects")
	projects.Use(authMiddleware.Authenticate)
	projects.PATCH("/:projectId/:status", engagementHandler.UpdateConstructionStatus)
	projects.POST("/:projectId/updates", engagementHandler.PostProjectUpdate)
	projects.POST("/:projectId/complete", engagementHandler.CompleteProject)

	// Generic engagement reads
	engagements := e.Group("/api/engagements")
	engagements.Use(authMiddleware.Authenticate)
	engagements.GET("/mine", engagementHandler.ListMyEngagements)
	engagements.GET("/assigned", engagementHandler.ListAssignedEngagements)
	engagements.GET("/:type/:id", engagementHandler.GetEngagement)
}
