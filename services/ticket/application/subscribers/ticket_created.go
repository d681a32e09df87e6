// Package subscribers wires ticket domain event handlers onto the EventBus.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/ticketdesk/pkg/events"
	"github.com/ghuser/ticketdesk/pkg/logger"
	ticketEvents "github.com/ghuser/ticketdesk/services/ticket/domain/events"
)

// Register subscribes all ticket handlers and drains their error channels
// until ctx is cancelled or the bus is closed.
func Register(ctx context.Context, bus *events.EventBus, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, ticketEvents.TopicTicketCreated, HandleTicketCreated(log))
	if err != nil {
		return err
	}

	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error",
				"topic", ticketEvents.TopicTicketCreated,
				"error", err,
			)
		}
	}()

	log.Info("event subscribers registered", "topics", []string{ticketEvents.TopicTicketCreated})
	return nil
}

// HandleTicketCreated returns a handler for ticket.created events.
// A payload that does not decode is an error, so the bus retries and then reports it.
func HandleTicketCreated(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt ticketEvents.TicketCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", ticketEvents.TopicTicketCreated, err)
		}
		log.InfoContext(ctx, "ticket created event",
			"event_id", evt.EventID,
			"ticket_id", evt.TicketID,
			"title", evt.Title,
			"status", evt.Status,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
