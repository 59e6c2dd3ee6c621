package routes

import (
	"net/http"
	"time"

	"meetplan/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlannerRoutes registers the meeting planner endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.POST("/plan", hb.PlanMeetingHandler)
		api.POST("/voice", hb.VoicePlanHandler)
	}
	r.POST("/api/availability", hb.GetAvailabilityHandler)
}

// RegisterUserRoutes registers participant directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.CreateUserHandler)
		api.GET("", hb.GetAllUsersHandler)
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
		api.PUT("/update/:id", hb.UpdateUserHandler)
		api.DELETE("/delete/:id", hb.DeleteUserHandler)
	}
}

// RegisterEventRoutes registers calendar event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.POST("", hb.CreateEventHandler)
		api.GET("/id/:id", hb.GetEventByIDHandler)
		api.GET("/user/:userId", hb.GetUserEventsHandler)
		api.PUT("/update/:id", hb.UpdateEventHandler)
		api.DELETE("/delete/:id", hb.DeleteEventHandler)
	}

	types := r.Group("/api/event-types")
	{
		types.POST("", hb.CreateEventTypeHandler)
		types.GET("", hb.GetAllEventTypesHandler)
		types.DELETE("/delete/:id", hb.DeleteEventTypeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meetplan"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlannerRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
