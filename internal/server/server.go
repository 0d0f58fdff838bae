package server

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/xendit/xendit-go/v6"
	"gorm.io/gorm"

	"github.com/flourishtalents/backend/config"
	"github.com/flourishtalents/backend/internal/handlers"
	"github.com/flourishtalents/backend/internal/middleware"
	"github.com/flourishtalents/backend/internal/scheduler"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	xenditCfg, err := config.LoadXenditConfig()
	if err != nil {
		return fmt.Errorf("failed to load xendit config: %v", err)
	}
	xenditClient, err := config.InitXenditClient(xenditCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize xendit client: %v", err)
	}

	statusCron := scheduler.Start(db)
	defer statusCron.Stop()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	setupRoutes(r, db, xenditClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, xenditClient *xendit.APIClient) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.XenditMiddleware(xenditClient))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListJoinTabEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
			eventPublic.GET("/:id/calendar.ics", handlers.DownloadEventCalendar)
			eventPublic.GET("/:id/calendar", handlers.EventCalendarLinks)
			eventPublic.GET("/:id/memories", handlers.ListMemories)
			eventPublic.GET("/:id/comments", handlers.ListComments)
		}

		providerPublic := public.Group("/providers")
		{
			providerPublic.GET("", handlers.ListProviders)
			providerPublic.GET("/:id", handlers.GetProvider)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/profile", handlers.GetProfile)
		protected.GET("/my-events", handlers.ListMyEvents)

		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.POST("/:id/publish", handlers.PublishEvent)
			eventProtected.POST("/:id/hide", handlers.HideFromJoinTab)
			eventProtected.POST("/:id/restore", handlers.RestoreToJoinTab)
			eventProtected.DELETE("/:id", handlers.RemoveFromMyEvents)
			eventProtected.POST("/:id/recover", handlers.RestoreToMyEvents)
			eventProtected.POST("/:id/cancel", handlers.CancelEvent)

			eventProtected.POST("/:id/join", handlers.JoinEvent)
			eventProtected.DELETE("/:id/join", handlers.LeaveEvent)

			eventProtected.POST("/:id/memories", handlers.CreateMemory)
			eventProtected.POST("/:id/comments", handlers.CreateComment)
		}

		attendanceProtected := protected.Group("/attendances")
		{
			attendanceProtected.GET("/:id/qr", handlers.GenerateAttendanceQR)
			attendanceProtected.POST("/validate", handlers.CheckInAttendee)
		}

		providerProtected := protected.Group("/providers")
		{
			providerProtected.POST("", handlers.CreateProvider)
			providerProtected.PUT("/:id", handlers.UpdateProvider)
			providerProtected.POST("/:id/ratings", handlers.RateProvider)
		}

		bookingProtected := protected.Group("/bookings")
		{
			bookingProtected.POST("", handlers.CreateBooking)
			bookingProtected.GET("", handlers.ListMyBookings)
			bookingProtected.POST("/:id/confirm", handlers.ConfirmBooking)
			bookingProtected.POST("/:id/cancel", handlers.CancelBooking)
		}

		protected.DELETE("/memories/:id", handlers.DeleteMemory)
		protected.DELETE("/comments/:id", handlers.DeleteComment)
	}
}
