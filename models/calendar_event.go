// models/calendar_event.go
package models

import "time"

// CalendarEvent is a committed entry in a participant's calendar.
type CalendarEvent struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	TypeID    string    `bson:"typeId" json:"typeId"`
	Title     string    `bson:"title" json:"title"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	AllDay    bool      `bson:"allDay" json:"allDay"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EventType categorizes calendar events (meeting, holiday, focus time, ...).
type EventType struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}
