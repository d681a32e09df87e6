package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicTicketCreated is the Watermill topic published when a Ticket is created.
const TopicTicketCreated = "ticket.created"

// TicketCreatedEvent is published after a new Ticket is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicTicketCreated, handler).
type TicketCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	TicketID   uuid.UUID `json:"ticket_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
