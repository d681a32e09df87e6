package services

import (
	"github.com/ghuser/ticketdesk/pkg/app"
	"github.com/ghuser/ticketdesk/services/ticket/infrastructure/persistence/redis"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Ticket *TicketService
}

// New wires all ticket application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := redis.NewTicketRepository(a.Redis, a.EventBus, a.Logger)
	return &Services{
		Ticket: NewTicketService(repo, a.Logger),
	}
}
