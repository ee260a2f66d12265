package routes

import (
	"internship-management-api/controllers"
	"internship-management-api/middleware"
	"internship-management-api/models"
	"internship-management-api/store"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Applications  *controllers.ApplicationController
	Logs          *controllers.LogController
	Jobs          *controllers.JobController
	Interns       *controllers.InternController
	Journal       *controllers.JournalController
	Dashboard     *controllers.DashboardController
	Notifications *controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, users *store.UserStore, ctrl Controllers) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", ctrl.Auth.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Internship Management API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(users))
		{
			protected.POST("/logout", ctrl.Auth.Logout)
			protected.GET("/profile", ctrl.Auth.GetProfile)

			protected.GET("/notifications", ctrl.Notifications.List)
			protected.PUT("/notifications/:id/read", ctrl.Notifications.MarkRead)

			// Internship applications
			applications := protected.Group("/applications")
			{
				applications.GET("/:id", ctrl.Applications.Get)

				// Students submit and track their own applications
				applications.POST("", middleware.RequireRole(models.RoleStudent), ctrl.Applications.Create)
				applications.GET("/mine", middleware.RequireRole(models.RoleStudent), ctrl.Applications.ListMine)

				// Only the university reviews
				applications.GET("", middleware.RequireRole(models.RoleUniversity), ctrl.Applications.List)
				applications.POST("/:id/approve", middleware.RequireRole(models.RoleUniversity), ctrl.Applications.Approve)
				applications.POST("/:id/reject", middleware.RequireRole(models.RoleUniversity), ctrl.Applications.Reject)
			}

			// Internship journals
			logs := protected.Group("/logs")
			{
				logs.GET("/:id", ctrl.Logs.Get)

				logs.GET("/mine", middleware.RequireRole(models.RoleStudent), ctrl.Logs.ListMine)
				logs.PUT("/:id", middleware.RequireRole(models.RoleStudent), ctrl.Logs.Save)
				logs.DELETE("/:id/entries/:entryID", middleware.RequireRole(models.RoleStudent), ctrl.Logs.RemoveEntry)

				logs.GET("", middleware.RequireRole(models.RoleUniversity), ctrl.Logs.List)
				logs.POST("/:id/approve", middleware.RequireRole(models.RoleUniversity), ctrl.Logs.Approve)
				logs.POST("/:id/reject", middleware.RequireRole(models.RoleUniversity), ctrl.Logs.Reject)
			}

			// Job postings
			jobs := protected.Group("/jobs")
			{
				jobs.GET("", ctrl.Jobs.List)
				jobs.GET("/:id", ctrl.Jobs.Get)

				// Only companies manage postings
				jobs.POST("", middleware.RequireRole(models.RoleCompany), ctrl.Jobs.Create)
				jobs.PUT("/:id", middleware.RequireRole(models.RoleCompany), ctrl.Jobs.Update)
				jobs.DELETE("/:id", middleware.RequireRole(models.RoleCompany), ctrl.Jobs.Delete)

				// Only students apply
				jobs.POST("/:id/apply", middleware.RequireRole(models.RoleStudent), ctrl.Jobs.Apply)
			}

			// Company intern review
			interns := protected.Group("/interns")
			interns.Use(middleware.RequireRole(models.RoleCompany))
			{
				interns.GET("", ctrl.Interns.List)
				interns.GET("/:id", ctrl.Interns.Get)
				interns.PUT("/:id/evaluation", ctrl.Interns.SaveEvaluation)
			}

			// External journal source
			journal := protected.Group("/journal")
			{
				journal.GET("", ctrl.Journal.List)
				journal.POST("", middleware.RequireRole(models.RoleStudent), ctrl.Journal.Add)
				journal.PUT("/:id/status", middleware.RequireRole(models.RoleUniversity), ctrl.Journal.UpdateStatus)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			dashboard.Use(middleware.RequireRole(models.RoleUniversity))
			{
				dashboard.GET("/stats", ctrl.Dashboard.GetStats)
			}
		}
	}
}
