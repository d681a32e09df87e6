package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/ticketdesk/pkg/errhttp"
	"github.com/ghuser/ticketdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/ticketdesk/pkg/validator"
	appsvcs "github.com/ghuser/ticketdesk/services/ticket/application/services"
)

// UpdateTicketRequest is the request body for PATCH /ticket/{id}.
type UpdateTicketRequest struct {
	Title  *string `json:"title"  validate:"required_without=Status"`
	Status *string `json:"status" validate:"required_without=Title"`
}

// TicketByIDHandler serves GET, PATCH and DELETE on /ticket/{id}.
type TicketByIDHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewTicketByIDHandler returns a TicketByIDHandler backed by the given services.
func NewTicketByIDHandler(svc *appsvcs.Services, isProduction bool) *TicketByIDHandler {
	return &TicketByIDHandler{svc: svc, isProduction: isProduction}
}

// ticketID parses the {id} path parameter, writing a 400 on failure.
func ticketID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "ticket id must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// Get returns a single ticket.
func (h *TicketByIDHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := ticketID(w, r)
	if !ok {
		return
	}
	ticket, err := h.svc.Ticket.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(ticket))
}

// Patch retitles a ticket and/or moves it to a new status.
func (h *TicketByIDHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := ticketID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateTicketRequest](w, r)
	if !ok {
		return
	}
	ticket, err := h.svc.Ticket.Update(r.Context(), id, appsvcs.UpdateInput{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(ticket))
}

// Delete removes a ticket.
func (h *TicketByIDHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ticketID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Ticket.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
