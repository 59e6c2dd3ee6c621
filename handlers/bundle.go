package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Planner endpoints.
	PlanMeetingHandler     gin.HandlerFunc
	VoicePlanHandler       gin.HandlerFunc
	GetAvailabilityHandler gin.HandlerFunc

	// User endpoints.
	CreateUserHandler     gin.HandlerFunc
	GetUserByIDHandler    gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc
	GetAllUsersHandler    gin.HandlerFunc
	UpdateUserHandler     gin.HandlerFunc
	DeleteUserHandler     gin.HandlerFunc

	// Event endpoints.
	CreateEventHandler   gin.HandlerFunc
	GetEventByIDHandler  gin.HandlerFunc
	GetUserEventsHandler gin.HandlerFunc
	UpdateEventHandler   gin.HandlerFunc
	DeleteEventHandler   gin.HandlerFunc

	// Event type endpoints.
	CreateEventTypeHandler  gin.HandlerFunc
	GetAllEventTypesHandler gin.HandlerFunc
	DeleteEventTypeHandler  gin.HandlerFunc
}
