package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/ticketdesk/pkg/app"
	"github.com/ghuser/ticketdesk/services/ticket/application/handlers"
	appsvcs "github.com/ghuser/ticketdesk/services/ticket/application/services"
)

// TicketRoutes registers ticket endpoints on the provided chi router.
func TicketRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a.IsProduction)
}

// Mount registers ticket endpoints backed by svcs. Split from TicketRoutes so
// tests can supply services over an in-memory repository.
func Mount(r chi.Router, svcs *appsvcs.Services, isProduction bool) {
	byID := handlers.NewTicketByIDHandler(svcs, isProduction)
	r.Route("/ticket", func(r chi.Router) {
		r.Post("/", handlers.NewPostTicketHandler(svcs, isProduction).Execute)
		r.Post("/title/check", handlers.NewCheckTitleHandler(svcs).Execute)
		r.Get("/{id}", byID.Get)
		r.Patch("/{id}", byID.Patch)
		r.Delete("/{id}", byID.Delete)
	})
}
