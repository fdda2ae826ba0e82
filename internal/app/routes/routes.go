package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulsport/okulsport-backend/internal/app/controllers"
	"github.com/okulsport/okulsport-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	nationalApplicationController *controllers.NationalApplicationController,
	studentController *controllers.StudentController,
	postController *controllers.PostController,
	referenceController *controllers.ReferenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public form submissions ---
	v1.POST("/applications", applicationController.Submit)
	v1.POST("/national/applications", nationalApplicationController.Submit)
	v1.POST("/students", studentController.Register)

	// --- Public reference data ---
	reference := v1.Group("/reference")
	{
		reference.GET("/branches", referenceController.GetBranches)
		reference.GET("/districts", referenceController.GetDistricts)
		reference.GET("/schools", referenceController.GetDistrictSchools)
		reference.GET("/okullar", referenceController.SearchOkullar)
	}

	// --- Public content ---
	posts := v1.Group("/posts")
	{
		posts.GET("", postController.GetPublished)
		posts.GET("/categories", postController.GetCategories)
		posts.GET("/:slug", postController.GetBySlug)
	}

	// --- Public auth ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Admin panel ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		admin.GET("/profile", authController.GetProfile)

		applications := admin.Group("/applications")
		{
			applications.GET("", applicationController.GetAll)
			applications.GET("/:id", applicationController.GetByID)
			applications.DELETE("/:id", applicationController.Delete)
		}

		nationalApplications := admin.Group("/national-applications")
		{
			nationalApplications.GET("", nationalApplicationController.GetAll)
			nationalApplications.GET("/:id", nationalApplicationController.GetByID)
			nationalApplications.DELETE("/:id", nationalApplicationController.Delete)
		}

		schools := admin.Group("/schools")
		{
			schools.GET("", referenceController.ListSchools)
			schools.GET("/:id", referenceController.GetSchool)
		}

		students := admin.Group("/students")
		{
			students.GET("", studentController.GetAll)
			students.GET("/:id", studentController.GetByID)
			students.PUT("/:id", studentController.Update)
			students.DELETE("/:id", studentController.Delete)
		}

		adminPosts := admin.Group("/posts")
		{
			adminPosts.GET("", postController.GetAll)
			adminPosts.POST("", postController.Create)
			adminPosts.POST("/categories", postController.CreateCategory)
			adminPosts.GET("/:id", postController.GetByID)
			adminPosts.PUT("/:id", postController.Update)
			adminPosts.DELETE("/:id", postController.Delete)
			adminPosts.POST("/:id/publish", postController.Publish)
			adminPosts.POST("/:id/unpublish", postController.Unpublish)
		}
	}
}
