package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lamaison-az/restaurant-app/controllers"
	"github.com/lamaison-az/restaurant-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db)
	contactCtrl := controllers.NewContactController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Auth endpoints get the strict limiter.
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// Menu as shown on the site
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu", menuCtrl.GetPublicMenu)

	// Reservation form
	r.GET("/reservations/slots", reservationCtrl.GetSlots)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// Contact form
	r.POST("/contact", contactCtrl.CreateMessage)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/profile", userCtrl.GetProfile)
		admin.GET("/stats", adminCtrl.GetDashboardStats)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:resv_id/status", reservationCtrl.UpdateReservationStatus)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		admin.GET("/menu", menuCtrl.GetAllMenuItems)
		admin.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)
		admin.POST("/menu", menuCtrl.CreateMenuItem)
		admin.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

		admin.GET("/messages", contactCtrl.GetAllMessages)
		admin.PATCH("/messages/:msg_id/read", contactCtrl.MarkMessageRead)
		admin.DELETE("/messages/:msg_id", contactCtrl.DeleteMessage)

		admin.GET("/notifications", notificationCtrl.GetAllNotifications)
		admin.PATCH("/notifications/:notif_id/seen", notificationCtrl.MarkNotificationSeen)
	}

	return r
}
