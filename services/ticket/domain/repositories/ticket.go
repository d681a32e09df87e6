package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

// TicketRepository is the persistence interface for the Ticket aggregate.
// The domain layer owns this interface; infrastructure implements it.
type TicketRepository interface {
	// Save persists a new Ticket. Returns ErrTicketAlreadyExists if the ID is taken.
	Save(ctx context.Context, ticket *models.Ticket) error

	// GetByID returns ErrTicketNotFound if no ticket has the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error)

	// Update persists changes to an existing Ticket.
	Update(ctx context.Context, ticket *models.Ticket) error

	// Delete removes a ticket by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether a ticket with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
