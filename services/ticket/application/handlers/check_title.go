package handlers

import (
	"errors"
	"net/http"

	"github.com/ghuser/ticketdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/ticketdesk/pkg/validator"
	appsvcs "github.com/ghuser/ticketdesk/services/ticket/application/services"
	"github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

// CheckTitleRequest is the request body for POST /ticket/title/check.
// An empty title is a valid question, so the field is not required.
type CheckTitleRequest struct {
	Title string `json:"title"`
}

// CheckTitleResponse reports whether a candidate title would be accepted.
type CheckTitleResponse struct {
	Valid bool   `json:"valid"`
	Title string `json:"title,omitempty"`
	Error string `json:"error,omitempty"`
}

// CheckTitleHandler answers whether a title passes construction without creating a ticket.
type CheckTitleHandler struct {
	svc *appsvcs.Services
}

// NewCheckTitleHandler returns a CheckTitleHandler backed by the given services.
func NewCheckTitleHandler(svc *appsvcs.Services) *CheckTitleHandler {
	return &CheckTitleHandler{svc: svc}
}

// Execute always answers 200; the verdict is in the body.
func (h *CheckTitleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CheckTitleRequest](w, r)
	if !ok {
		return
	}

	title, err := h.svc.Ticket.CheckTitle(r.Context(), req.Title)
	if err != nil {
		resp := CheckTitleResponse{Valid: false, Error: err.Error()}
		var te *models.TitleError
		if errors.As(err, &te) {
			resp.Error = te.Error()
		}
		httpx.JSON(w, http.StatusOK, resp)
		return
	}
	httpx.JSON(w, http.StatusOK, CheckTitleResponse{Valid: true, Title: title.String()})
}
