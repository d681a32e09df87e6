// Package redis stores Ticket aggregates as Redis hashes keyed "ticket:{id}".
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/ticketdesk/pkg/cache"
	"github.com/ghuser/ticketdesk/pkg/events"
	"github.com/ghuser/ticketdesk/pkg/logger"
	ticketdomain "github.com/ghuser/ticketdesk/services/ticket/domain"
	domainevents "github.com/ghuser/ticketdesk/services/ticket/domain/events"
	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

const ticketKeyPrefix = "ticket"

// TicketRepository implements repositories.TicketRepository against Redis.
type TicketRepository struct {
	client *cache.RedisClient
	bus    *events.EventBus
	log    logger.Logger
}

// NewTicketRepository returns a TicketRepository backed by the given client
// and event bus. The bus is used to publish TicketCreatedEvents after a
// successful save; pass nil to disable publishing.
func NewTicketRepository(client *cache.RedisClient, bus *events.EventBus, log logger.Logger) *TicketRepository {
	return &TicketRepository{client: client, bus: bus, log: log}
}

// Save persists a new Ticket and publishes a TicketCreatedEvent.
// Returns ErrTicketAlreadyExists if the key is already present.
// The write is committed before publishing, so a failed publish is logged and
// does not fail the save. There is no outbox: such an event is lost.
func (r *TicketRepository) Save(ctx context.Context, ticket *models.Ticket) error {
	key := ticketKey(ticket.ID)
	err := r.client.Client().Watch(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("check ticket: %w", err)
		}
		if n > 0 {
			return ticketdomain.ErrTicketAlreadyExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, toHash(ticket))
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ticketdomain.ErrTicketAlreadyExists) {
			return err
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	r.announceCreated(ctx, ticket)
	return nil
}

// announceCreated publishes TicketCreatedEvent for a stored ticket, logging failures.
func (r *TicketRepository) announceCreated(ctx context.Context, ticket *models.Ticket) {
	if r.bus == nil {
		return
	}
	if err := r.publishCreated(ctx, ticket); err != nil {
		r.log.ErrorContext(ctx, "ticket stored but ticket.created was not published",
			"ticket_id", ticket.ID,
			"error", err,
		)
	}
}

// GetByID retrieves a Ticket by ID. Returns ErrTicketNotFound if not found.
func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	vals, err := r.client.Client().HGetAll(ctx, ticketKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("query ticket: %w", err)
	}
	if len(vals) == 0 {
		return nil, ticketdomain.ErrTicketNotFound
	}
	ticket, err := fromHash(vals)
	if err != nil {
		return nil, fmt.Errorf("decode ticket %s: %w", id, err)
	}
	return ticket, nil
}

// Update overwrites an existing Ticket. Returns ErrTicketNotFound if it was deleted meanwhile.
func (r *TicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	key := ticketKey(ticket.ID)
	err := r.client.Client().Watch(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("check ticket: %w", err)
		}
		if n == 0 {
			return ticketdomain.ErrTicketNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, toHash(ticket))
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ticketdomain.ErrTicketNotFound) {
			return err
		}
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// Delete removes a ticket by ID.
func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Client().Del(ctx, ticketKey(id)).Err(); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// Exists reports whether a ticket with the given ID exists.
func (r *TicketRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Client().Exists(ctx, ticketKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("check ticket exists: %w", err)
	}
	return n > 0, nil
}

func (r *TicketRepository) publishCreated(ctx context.Context, ticket *models.Ticket) error {
	event := domainevents.TicketCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		TicketID:   ticket.ID,
		Title:      ticket.Title.String(),
		Status:     ticket.Status.String(),
		OccurredAt: ticket.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	return r.bus.Publish(ctx, domainevents.TopicTicketCreated, msg)
}

// ticketKey builds the Redis key: "ticket:{id}"
func ticketKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", ticketKeyPrefix, id)
}

// toHash flattens a Ticket into Redis hash fields.
func toHash(t *models.Ticket) map[string]any {
	return map[string]any{
		"id":          t.ID.String(),
		"title":       t.Title.String(),
		"description": t.Description.String(),
		"status":      t.Status.String(),
		"created_at":  t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromHash rebuilds a Ticket, re-running every value-object constructor so
// corrupted or hand-edited entries surface as errors instead of invalid tickets.
func fromHash(vals map[string]string) (*models.Ticket, error) {
	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	title, err := models.NewTitle(vals["title"])
	if err != nil {
		return nil, fmt.Errorf("parse title: %w", err)
	}
	desc, err := models.NewDescription(vals["description"])
	if err != nil {
		return nil, fmt.Errorf("parse description: %w", err)
	}
	status, err := models.ParseStatus(vals["status"])
	if err != nil {
		return nil, fmt.Errorf("parse status: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &models.Ticket{
		ID:          id,
		Title:       title,
		Description: desc,
		Status:      status,
		CreatedAt:   createdAt,
	}, nil
}
