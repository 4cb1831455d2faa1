package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/stocktrack/inventory-api/internal/http/handlers"
)

// NewRouter builds the full route tree. The item endpoints live under
// /api/items so that the browser frontend can keep its existing base path.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(Recovery)
	r.Use(RequestLogger)
	r.Use(CORS)

	r.Route("/api", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.CreateItemHandler)
			r.Get("/", handlers.GetItemsHandler)
			r.Get("/search", handlers.SearchItemsHandler)
			r.Get("/{id}", handlers.GetItemByIDHandler)
			r.Put("/{id}", handlers.UpdateItemHandler)
			r.Delete("/{id}", handlers.DeleteItemHandler)
		})
		r.Get("/dashboard", handlers.GetDashboardHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}
