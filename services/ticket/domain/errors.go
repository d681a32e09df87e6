package domain

import "errors"

// Sentinel errors for the ticket domain. Use errors.Is() to check these.
var (
	// ErrTicketNotFound indicates the requested ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrTicketAlreadyExists indicates a ticket with the same ID already exists.
	ErrTicketAlreadyExists = errors.New("ticket already exists")

	// ErrInvalidTicketTitle indicates the title violates domain constraints.
	ErrInvalidTicketTitle = errors.New("invalid ticket title")

	// ErrInvalidTicketDescription indicates the description violates domain constraints.
	ErrInvalidTicketDescription = errors.New("invalid ticket description")

	// ErrInvalidTicketStatus indicates an unknown workflow status.
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
)
