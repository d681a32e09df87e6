package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ticketdesk/pkg/app"
	"github.com/ghuser/ticketdesk/services/shape/application/handlers"
)

// ShapeRoutes registers shape endpoints on the provided chi router.
func ShapeRoutes(r chi.Router, a *app.Application) {
	r.Route("/shape", func(r chi.Router) {
		r.Post("/radius", handlers.NewRadiusHandler(a.IsProduction).Execute)
	})
}
