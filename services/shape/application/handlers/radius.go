package handlers

import (
	"fmt"
	"net/http"

	"github.com/ghuser/ticketdesk/pkg/errhttp"
	"github.com/ghuser/ticketdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/ticketdesk/pkg/validator"
	"github.com/ghuser/ticketdesk/services/shape/domain/models"
)

// RadiusRequest describes a shape. Only the dimensions of the named kind are read.
type RadiusRequest struct {
	Kind   string  `json:"kind" validate:"required,oneof=circle square rectangle"`
	Radius float64 `json:"radius"`
	Border float64 `json:"border"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RadiusResponse carries the radius of a circle.
type RadiusResponse struct {
	Radius float64 `json:"radius"`
}

// RadiusHandler handles POST /shape/radius.
type RadiusHandler struct {
	isProduction bool
}

// NewRadiusHandler returns a RadiusHandler.
func NewRadiusHandler(isProduction bool) *RadiusHandler {
	return &RadiusHandler{isProduction: isProduction}
}

// Execute answers with the radius of a circle and 422 for any other shape.
func (h *RadiusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RadiusRequest](w, r)
	if !ok {
		return
	}

	shape, err := models.New(req.Kind, req.Radius, req.Border, req.Width, req.Height)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	radius, ok := models.CircleRadius(shape)
	if !ok {
		errhttp.WriteError(w, fmt.Errorf("%w: got %s", models.ErrNotACircle, models.Kind(shape)), h.isProduction)
		return
	}
	httpx.JSON(w, http.StatusOK, RadiusResponse{Radius: radius})
}
