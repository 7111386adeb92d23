package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/controllers"
	"github.com/aaryan/councilhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	teamController *controllers.TeamController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	projectController *controllers.ProjectController,
	achievementController *controllers.AchievementController,
	announcementController *controllers.AnnouncementController,
	collaborationController *controllers.CollaborationController,
	resourceController *controllers.ResourceController,
	registrationController *controllers.RegistrationController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public content reads ---
	v1.GET("/team", teamController.ListPublic)
	v1.GET("/events/upcoming", eventController.ListUpcoming)
	v1.GET("/events/past", eventController.ListPast)
	v1.GET("/gallery", galleryController.ListPublic)
	v1.GET("/projects", projectController.ListPublic)
	v1.GET("/achievements", achievementController.ListPublic)
	v1.GET("/announcements", announcementController.ListPublic)
	v1.GET("/collaborations", collaborationController.ListPublic)
	v1.GET("/resources", resourceController.ListPublic)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/role", authController.GetRole)
		authenticated.GET("/auth/admin", authController.CheckAdmin)

		authenticated.GET("/profile", profileController.GetProfile)
		authenticated.PUT("/profile", profileController.SaveProfile)

		authenticated.POST("/uploads", uploadController.Upload)

		// Projects: any authenticated user may submit and list their own;
		// editing is owner-or-admin, enforced in the service.
		authenticated.POST("/projects", projectController.Submit)
		authenticated.GET("/projects/mine", projectController.ListMine)
		authenticated.PUT("/projects/:id", projectController.Update)

		// Registrations: one per caller, reviewed by admins.
		authenticated.POST("/registrations", registrationController.Submit)
		authenticated.GET("/registrations/me", registrationController.MyRegistration)

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.PUT("/users/:id/role", authController.AssignRole)
			admin.GET("/users/:id/profile", profileController.GetUserProfile)

			admin.GET("/team/:id", teamController.Get)
			admin.POST("/team", teamController.Create)
			admin.PUT("/team/:id", teamController.Update)
			admin.POST("/team/:id/publish", teamController.Publish)
			admin.DELETE("/team/:id", teamController.Delete)

			admin.GET("/events/:id", eventController.Get)
			admin.POST("/events", eventController.Create)
			admin.PUT("/events/:id", eventController.Update)
			admin.POST("/events/:id/publish", eventController.Publish)
			admin.DELETE("/events/:id", eventController.Delete)

			admin.GET("/gallery/:id", galleryController.Get)
			admin.POST("/gallery", galleryController.Upload)
			admin.PUT("/gallery/:id", galleryController.Update)
			admin.POST("/gallery/:id/publish", galleryController.Publish)
			admin.DELETE("/gallery/:id", galleryController.Delete)

			admin.GET("/projects/:id", projectController.Get)
			admin.POST("/projects/:id/publish", projectController.Publish)
			admin.DELETE("/projects/:id", projectController.Delete)

			admin.GET("/achievements/:id", achievementController.Get)
			admin.POST("/achievements", achievementController.Create)
			admin.PUT("/achievements/:id", achievementController.Update)
			admin.POST("/achievements/:id/publish", achievementController.Publish)
			admin.DELETE("/achievements/:id", achievementController.Delete)

			admin.GET("/announcements/:id", announcementController.Get)
			admin.POST("/announcements", announcementController.Post)
			admin.PUT("/announcements/:id", announcementController.Update)
			admin.POST("/announcements/:id/publish", announcementController.Publish)
			admin.DELETE("/announcements/:id", announcementController.Delete)

			admin.GET("/collaborations/:id", collaborationController.Get)
			admin.POST("/collaborations", collaborationController.Create)
			admin.PUT("/collaborations/:id", collaborationController.Update)
			admin.POST("/collaborations/:id/publish", collaborationController.Publish)
			admin.DELETE("/collaborations/:id", collaborationController.Delete)

			admin.GET("/resources/:id", resourceController.Get)
			admin.POST("/resources", resourceController.Create)
			admin.PUT("/resources/:id", resourceController.Update)
			admin.POST("/resources/:id/publish", resourceController.Publish)
			admin.DELETE("/resources/:id", resourceController.Delete)

			admin.GET("/registrations", registrationController.ListAll)
			admin.PUT("/registrations/:id/status", registrationController.UpdateStatus)
			admin.DELETE("/registrations/:id", registrationController.Delete)
		}
	}
}
