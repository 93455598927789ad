package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/omondi/shulehub/internal/app/controllers"
	"github.com/omondi/shulehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	campaignController *controllers.CampaignController,
	resourceController *controllers.ResourceController,
	councilController *controllers.CouncilController,
	subscriberController *controllers.SubscriberController,
	newsController *controllers.NewsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", adminController.Login)
	}

	subscribers := v1.Group("/subscribers")
	{
		subscribers.POST("", subscriberController.Subscribe)
		subscribers.POST("/unsubscribe", subscriberController.Unsubscribe)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth(), authMiddleware.ActiveAccountRequired())
	{
		authenticated.GET("/auth/profile", adminController.GetProfile)

		admins := authenticated.Group("/admins")
		{
			admins.GET("", adminController.ListAdmins)
			admins.POST("", adminController.CreateAdmin)
			admins.PUT("/:id", adminController.UpdateAdmin)
			admins.DELETE("/:id", adminController.DeleteAdmin)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/export", studentController.ExportStudents)
			students.POST("/bulk-delete", studentController.BulkDeleteStudents)
			students.PATCH("", studentController.ApplyLifecycle)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.PATCH("/:id/repeat", studentController.RepeatStudent)
			students.GET("/:id/promotions", studentController.GetPromotionHistory)
		}

		campaigns := authenticated.Group("/campaigns")
		{
			campaigns.GET("", campaignController.ListCampaigns)
			campaigns.POST("", campaignController.CreateCampaign)
			campaigns.POST("/broadcast", campaignController.Broadcast)
			campaigns.GET("/groups", campaignController.ListRecipientGroups)
			campaigns.GET("/groups/:group/recipients", campaignController.PreviewRecipients)
			campaigns.GET("/:id", campaignController.GetCampaignByID)
			campaigns.PUT("/:id", campaignController.UpdateCampaign)
			campaigns.DELETE("/:id", campaignController.DeleteCampaign)
			campaigns.PATCH("/:id/publish", campaignController.PublishCampaign)
		}

		resources := authenticated.Group("/resources")
		{
			resources.GET("", resourceController.ListResources)
			resources.POST("", resourceController.CreateResource)
			resources.GET("/:id", resourceController.GetResourceByID)
			resources.DELETE("/:id", resourceController.DeleteResource)
			resources.POST("/:id/download", resourceController.RecordDownload)
		}

		news := authenticated.Group("/news")
		{
			news.GET("", newsController.ListNewsItems)
			news.POST("", newsController.CreateNewsItem)
			news.GET("/:id", newsController.GetNewsItemByID)
			news.PUT("/:id", newsController.UpdateNewsItem)
			news.DELETE("/:id", newsController.DeleteNewsItem)
		}

		council := authenticated.Group("/council")
		{
			council.GET("", councilController.ListCouncilMembers)
			council.POST("", councilController.CreateCouncilMember)
			council.GET("/positions", councilController.ListPositions)
			council.GET("/:id", councilController.GetCouncilMemberByID)
			council.PUT("/:id", councilController.UpdateCouncilMember)
			council.DELETE("/:id", councilController.DeleteCouncilMember)
		}

		authenticated.GET("/subscribers", subscriberController.ListSubscribers)
	}
}
