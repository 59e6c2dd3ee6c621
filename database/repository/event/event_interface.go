package eventRepo

import (
	"time"

	"meetplan/models"
)

// EventRepository defines persistence operations for calendar events.
type EventRepository interface {
	Create(event *models.CalendarEvent) error
	Update(event *models.CalendarEvent) error
	Delete(id string) error
	GetByID(id string) (*models.CalendarEvent, error)
	GetByUser(userID string) ([]models.CalendarEvent, error)
	GetByType(typeID string) ([]models.CalendarEvent, error)
	// GetOverlapping returns every event of the user whose [start, end)
	// interval overlaps [from, to). Events extending past the range
	// boundaries are included, not clipped.
	GetOverlapping(userID string, from, to time.Time) ([]models.CalendarEvent, error)
}
