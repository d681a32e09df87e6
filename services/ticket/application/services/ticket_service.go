package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/ticketdesk/pkg/logger"
	ticketdomain "github.com/ghuser/ticketdesk/services/ticket/domain"
	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
	"github.com/ghuser/ticketdesk/services/ticket/domain/repositories"
	domainsvcs "github.com/ghuser/ticketdesk/services/ticket/domain/services"
)

const instrumentationName = "github.com/ghuser/ticketdesk/services/ticket"

// TicketService orchestrates creation, retrieval and updates of Tickets.
// Event publishing is handled by the repository layer.
type TicketService struct {
	repo       repositories.TicketRepository
	log        logger.Logger
	tracer     trace.Tracer
	rejections metric.Int64Counter
}

// NewTicketService returns a TicketService wired with the given repository.
// Spans and the rejection counter use the global OTel providers.
func NewTicketService(repo repositories.TicketRepository, log logger.Logger) *TicketService {
	rejections, err := otel.Meter(instrumentationName).Int64Counter(
		"ticket.input.rejections",
		metric.WithDescription("Ticket inputs rejected by value-object constructors"),
	)
	if err != nil {
		log.Warn("ticket rejection counter unavailable", "error", err)
	}
	return &TicketService{
		repo:       repo,
		log:        log,
		tracer:     otel.Tracer(instrumentationName),
		rejections: rejections,
	}
}

// CheckTitle runs the title constructor without persisting anything.
// Errors wrap ErrInvalidTicketTitle around the *models.TitleError.
func (s *TicketService) CheckTitle(ctx context.Context, raw string) (models.Title, error) {
	title, err := models.NewTitle(raw)
	if err != nil {
		s.reject(ctx, "title")
		return models.Title{}, fmt.Errorf("%w: %w", ticketdomain.ErrInvalidTicketTitle, err)
	}
	return title, nil
}

// Create validates and persists a Ticket. The repository publishes TicketCreatedEvent.
func (s *TicketService) Create(ctx context.Context, rawTitle, rawDescription string) (*models.Ticket, error) {
	ctx, span := s.tracer.Start(ctx, "TicketService.Create")
	defer span.End()

	title, err := s.CheckTitle(ctx, rawTitle)
	if err != nil {
		return nil, s.fail(span, err)
	}

	desc, err := models.NewDescription(rawDescription)
	if err != nil {
		s.reject(ctx, "description")
		return nil, s.fail(span, fmt.Errorf("%w: %w", ticketdomain.ErrInvalidTicketDescription, err))
	}

	ticket := models.NewTicket(title, desc)
	span.SetAttributes(attribute.String("ticket.id", ticket.ID.String()))

	if err := domainsvcs.ValidateTicketForCreation(ticket); err != nil {
		return nil, s.fail(span, fmt.Errorf("create ticket: %w", err))
	}

	if err := s.repo.Save(ctx, ticket); err != nil {
		return nil, s.fail(span, fmt.Errorf("save ticket: %w", err))
	}

	s.log.InfoContext(ctx, "ticket created", "ticket_id", ticket.ID)
	return ticket, nil
}

// GetByID retrieves a Ticket. Returns ErrTicketNotFound if it does not exist.
func (s *TicketService) GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	ctx, span := s.tracer.Start(ctx, "TicketService.GetByID",
		trace.WithAttributes(attribute.String("ticket.id", id.String())))
	defer span.End()

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ticketdomain.ErrTicketNotFound) {
			return nil, err
		}
		return nil, s.fail(span, fmt.Errorf("get ticket: %w", err))
	}
	return ticket, nil
}

// UpdateInput lists the optional fields of a ticket update. Nil means unchanged.
type UpdateInput struct {
	Title  *string
	Status *string
}

// Update applies in to the ticket with the given id. Both fields are
// validated before anything is written, so a bad status never lands a new title.
func (s *TicketService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*models.Ticket, error) {
	ctx, span := s.tracer.Start(ctx, "TicketService.Update",
		trace.WithAttributes(attribute.String("ticket.id", id.String())))
	defer span.End()

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ticketdomain.ErrTicketNotFound) {
			return nil, err
		}
		return nil, s.fail(span, fmt.Errorf("get ticket: %w", err))
	}

	if in.Title != nil {
		title, err := s.CheckTitle(ctx, *in.Title)
		if err != nil {
			return nil, s.fail(span, err)
		}
		ticket.Retitle(title)
	}

	if in.Status != nil {
		status, err := models.ParseStatus(*in.Status)
		if err != nil {
			s.reject(ctx, "status")
			return nil, s.fail(span, fmt.Errorf("%w: %w", ticketdomain.ErrInvalidTicketStatus, err))
		}
		if err := domainsvcs.ValidateTransition(ticket.Status, status); err != nil {
			return nil, s.fail(span, fmt.Errorf("%w: %w", ticketdomain.ErrInvalidTicketStatus, err))
		}
		ticket.SetStatus(status)
	}

	if err := s.repo.Update(ctx, ticket); err != nil {
		if errors.Is(err, ticketdomain.ErrTicketNotFound) {
			return nil, err
		}
		return nil, s.fail(span, fmt.Errorf("update ticket: %w", err))
	}
	return ticket, nil
}

// Delete removes a ticket by ID.
// Returns ErrTicketNotFound if no matching ticket exists.
func (s *TicketService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check ticket: %w", err)
	}
	if !exists {
		return ticketdomain.ErrTicketNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	s.log.InfoContext(ctx, "ticket deleted", "ticket_id", id)
	return nil
}

func (s *TicketService) reject(ctx context.Context, field string) {
	if s.rejections == nil {
		return
	}
	s.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("field", field)))
}

// fail records err on span and returns it unchanged.
func (s *TicketService) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
