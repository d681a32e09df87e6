// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/ticketdesk/pkg/httpx"
	shapemodels "github.com/ghuser/ticketdesk/services/shape/domain/models"
	ticketdomain "github.com/ghuser/ticketdesk/services/ticket/domain"
	ticketmodels "github.com/ghuser/ticketdesk/services/ticket/domain/models"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; when
// isProduction is set the 500 body carries only the status text.
// Value-object construction errors are written with their own message, unwrapped.
func WriteError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(constructionError(err), status, isProduction))
}

// constructionError returns the innermost title or description error in err's
// chain, or err itself when there is none.
func constructionError(err error) error {
	var te *ticketmodels.TitleError
	if errors.As(err, &te) {
		return te
	}
	var de *ticketmodels.DescriptionError
	if errors.As(err, &de) {
		return de
	}
	return err
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ticketdomain.ErrTicketNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, ticketdomain.ErrTicketAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, ticketdomain.ErrInvalidTicketTitle),
		errors.Is(err, ticketdomain.ErrInvalidTicketDescription),
		errors.Is(err, ticketdomain.ErrInvalidTicketStatus),
		errors.Is(err, shapemodels.ErrNotACircle):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
