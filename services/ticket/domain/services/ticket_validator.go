// Package services contains stateless domain services for the ticket bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

// ValidateTicketForCreation performs aggregate-level checks on a Ticket before
// it is persisted. Field-level rules are already guaranteed by the Title and
// Description constructors, so a Ticket assembled from struct literals with
// zero-valued fields is what this guards against.
func ValidateTicketForCreation(ticket *models.Ticket) error {
	if ticket == nil {
		return fmt.Errorf("ticket cannot be nil")
	}

	if ticket.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if ticket.Title.IsZero() {
		return fmt.Errorf("title must be set")
	}

	if ticket.Description.String() == "" {
		return fmt.Errorf("description must be set")
	}

	if !ticket.Status.Valid() {
		return fmt.Errorf("status %v is not a known status", ticket.Status)
	}

	if ticket.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}

// ValidateTransition enforces the ticket workflow: a Done ticket cannot be
// reopened, everything else may move freely.
func ValidateTransition(from, to models.Status) error {
	if !to.Valid() {
		return fmt.Errorf("status %v is not a known status", to)
	}
	if from == models.StatusDone && to != models.StatusDone {
		return fmt.Errorf("cannot move a %s ticket back to %s", from, to)
	}
	return nil
}
