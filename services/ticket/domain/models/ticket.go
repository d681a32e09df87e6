package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is the core aggregate for this bounded context.
type Ticket struct {
	ID          uuid.UUID
	Title       Title
	Description Description
	Status      Status
	CreatedAt   time.Time
}

// NewTicket constructs a Ticket in the To-Do state with a generated ID and current timestamp.
func NewTicket(title Title, description Description) *Ticket {
	return &Ticket{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      StatusToDo,
		CreatedAt:   time.Now().UTC(),
	}
}

// Retitle replaces the ticket title. The Title type guarantees validity.
func (t *Ticket) Retitle(title Title) {
	t.Title = title
}

// SetStatus moves the ticket to status s.
func (t *Ticket) SetStatus(s Status) {
	t.Status = s
}
