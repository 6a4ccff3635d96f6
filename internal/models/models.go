package models

import "time"

// Event statuses. Events are never physically deleted; delete flips the
// status to deleted and metrics only ever read active events.
const (
	EventStatusActive  = "active"
	EventStatusDeleted = "deleted"
)

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event is a timestamped record of a user action or observation. The type
// tag is an open string; the data payload carries per-type keys (e.g.
// {"sleep": 7.5} or {"amount": 200}).
type Event struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Data        map[string]any `json:"data"`
	Source      string         `json:"source"`
	Priority    int            `json:"priority"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description *string        `json:"description"`
	Data        map[string]any `json:"data"`
	Source      string         `json:"source"`
	Priority    int            `json:"priority"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Type        *string        `json:"type"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Data        map[string]any `json:"data"`
	Priority    *int           `json:"priority"`
}

// Entity is a named thing (person, place, project) that events and
// memories can reference.
type Entity struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description *string        `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateEntityRequest represents the request to create an entity
type CreateEntityRequest struct {
	Name        string         `json:"name" binding:"required"`
	Type        string         `json:"type" binding:"required"`
	Description *string        `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// Memory is a free-text memory with an importance weight, optionally
// linked to an entity.
type Memory struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Importance float64   `json:"importance"`
	EntityID   *string   `json:"entity_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateMemoryRequest represents the request to create a memory
type CreateMemoryRequest struct {
	Content    string  `json:"content" binding:"required"`
	Type       string  `json:"type" binding:"omitempty,oneof=episodic semantic working"`
	Importance float64 `json:"importance" binding:"min=0,max=1"`
	EntityID   *string `json:"entity_id"`
}

// QuickNote is a quick-capture inbox item awaiting processing
type QuickNote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
}

// QuickCaptureRequest represents the quick-capture request
type QuickCaptureRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// Pillar is a top-level life domain used to group event types and
// dashboard widgets.
type Pillar struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id,omitempty"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

// Pagination is the list-response envelope metadata
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// EventList is a paginated page of events
type EventList struct {
	Data       []Event    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
