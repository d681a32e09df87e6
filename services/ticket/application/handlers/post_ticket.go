package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/ticketdesk/pkg/errhttp"
	"github.com/ghuser/ticketdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/ticketdesk/pkg/validator"
	appsvcs "github.com/ghuser/ticketdesk/services/ticket/application/services"
	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

// CreateTicketRequest is the request body for POST /ticket.
// Emptiness and length are enforced by the domain constructors, not by tags,
// so the client sees the domain's own messages.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TicketResponse is the JSON representation of a ticket.
type TicketResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		Title:       t.Title.String(),
		Description: t.Description.String(),
		Status:      t.Status.String(),
		CreatedAt:   t.CreatedAt,
	}
}

// PostTicketHandler handles POST /ticket requests.
type PostTicketHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostTicketHandler returns a PostTicketHandler backed by the given services.
func NewPostTicketHandler(svc *appsvcs.Services, isProduction bool) *PostTicketHandler {
	return &PostTicketHandler{svc: svc, isProduction: isProduction}
}

// Execute creates a new ticket.
func (h *PostTicketHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateTicketRequest](w, r)
	if !ok {
		return
	}

	ticket, err := h.svc.Ticket.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(ticket))
}
