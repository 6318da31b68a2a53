package router

import (
	"net/http"

	"gift-fulfillment/internal/handler"
	"gift-fulfillment/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	fulfillmentHandler *handler.FulfillmentHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/{id}", catalogHandler.GetProduct)
		r.Get("/reps", catalogHandler.ListReps)
		r.Get("/reps/{id}", catalogHandler.GetRep)

		r.Get("/orders", orderHandler.List)
		r.Post("/orders", orderHandler.Create)
		r.Get("/orders/{id}", orderHandler.GetByID)
		r.Post("/orders/{id}/fulfillments", orderHandler.AddFulfillment)

		r.Get("/fulfillments/{id}", fulfillmentHandler.GetByID)
		r.Patch("/fulfillments/{id}/status", fulfillmentHandler.UpdateStatus)
	})

	return r
}
