package routes

import (
	"guesthub/controllers"
	middlewares "guesthub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	orderController := controllers.NewOrderController(db, m)
	fulfilmentController := controllers.NewFulfilmentController(db, m)
	ticketController := controllers.NewServiceRequestController(db, m)
	dataRequestController := controllers.NewDataRequestController(db)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	// Guest portal surface, no auth
	v1.GET("/branding/:id", controllers.GetBranding)
	v1.GET("/services", controllers.GetServices)
	v1.GET("/menu", controllers.GetMenuItems)
	v1.GET("/menu/search", controllers.SearchMenu)
	v1.POST("/cart/quote", controllers.QuoteCart)
	v1.POST("/order", orderController.CreateOrder)
	v1.GET("/order/:id", orderController.GetOrderDetail)
	v1.POST("/tickets", ticketController.CreateTicket)

	// Staff and admin surface
	v1.GET("/order", middlewares.AuthMiddleware(1, 2, 3), orderController.GetOrders)
	v1.PUT("/orderStatus", middlewares.AuthMiddleware(1, 2, 3), orderController.ChangeOrderStatus)
	v1.DELETE("/order/:id", middlewares.AuthMiddleware(1, 2, 3), orderController.CancelOrder)

	v1.GET("/fulfilment/queue", middlewares.AuthMiddleware(1, 2, 3), fulfilmentController.GetQueue)
	v1.PUT("/fulfilment/itemStatus", middlewares.AuthMiddleware(1, 2, 3), fulfilmentController.UpdateItemStatus)

	v1.POST("/checkin", middlewares.AuthMiddleware(1, 2, 3), controllers.CheckIn)
	v1.POST("/checkout", middlewares.AuthMiddleware(1, 2, 3), controllers.CheckOut)
	v1.GET("/bookings", middlewares.AuthMiddleware(1, 2, 3), controllers.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(1, 2, 3), controllers.GetBookingDetail)
	v1.DELETE("/bookings/:id", middlewares.AuthMiddleware(3), controllers.DeleteBooking)

	v1.GET("/rooms", middlewares.AuthMiddleware(1, 2, 3), controllers.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(2, 3), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(2, 3), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(2, 3), controllers.DeleteRoom)

	v1.GET("/folios", middlewares.AuthMiddleware(1, 2, 3), controllers.GetFolios)
	v1.GET("/folios/:id", middlewares.AuthMiddleware(1, 2, 3), controllers.GetFolioDetail)
	v1.PATCH("/folios/:id/adjustment", middlewares.AuthMiddleware(2, 3), controllers.UpsertAdjustment)
	v1.POST("/folios/paid", middlewares.AuthMiddleware(1, 2, 3), controllers.MarkFolioPaid)

	v1.POST("/service", middlewares.AuthMiddleware(2, 3), controllers.CreateService)
	v1.PUT("/serviceUpdate", middlewares.AuthMiddleware(2, 3), controllers.UpdateService)
	v1.DELETE("/service/:id", middlewares.AuthMiddleware(2, 3), controllers.DeleteService)
	v1.POST("/menu", middlewares.AuthMiddleware(2, 3), controllers.CreateMenuItem)
	v1.PUT("/menuUpdate", middlewares.AuthMiddleware(2, 3), controllers.UpdateMenuItem)
	v1.DELETE("/menu/:id", middlewares.AuthMiddleware(2, 3), controllers.DeleteMenuItem)

	v1.GET("/promotion", middlewares.AuthMiddleware(2, 3), controllers.GetPromotions)
	v1.GET("/promotion/:id", middlewares.AuthMiddleware(2, 3), controllers.GetPromotionDetail)
	v1.POST("/promotion", middlewares.AuthMiddleware(2, 3), controllers.CreatePromotion)
	v1.PUT("/promotionUpdate", middlewares.AuthMiddleware(2, 3), controllers.UpdatePromotion)
	v1.PUT("/promotionStatus", middlewares.AuthMiddleware(2, 3), controllers.ChangePromotionStatus)
	v1.DELETE("/promotion/:id", middlewares.AuthMiddleware(2, 3), controllers.DeletePromotion)
	v1.POST("/promotion/override", middlewares.AuthMiddleware(2, 3), controllers.CreateOverride)
	v1.GET("/promotion/:id/overrides", middlewares.AuthMiddleware(2, 3), controllers.GetOverrides)
	v1.DELETE("/promotionOverride/:id", middlewares.AuthMiddleware(2, 3), controllers.DeleteOverride)

	v1.GET("/tickets", middlewares.AuthMiddleware(1, 2, 3), ticketController.GetTickets)
	v1.PUT("/ticketStatus", middlewares.AuthMiddleware(1, 2, 3), ticketController.ChangeTicketStatus)
	v1.PUT("/ticketAssign", middlewares.AuthMiddleware(2, 3), ticketController.AssignTicket)

	v1.POST("/dataRequests", dataRequestController.CreateDataRequest)
	v1.GET("/dataRequests", middlewares.AuthMiddleware(2, 3), dataRequestController.GetDataRequests)
	v1.PATCH("/dataRequests", middlewares.AuthMiddleware(2, 3), dataRequestController.UpdateDataRequest)

	v1.PUT("/branding", middlewares.AuthMiddleware(2, 3), controllers.UpdateBranding)
	v1.POST("/branding/:id/logo", middlewares.AuthMiddleware(2, 3), controllers.UploadLogo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
