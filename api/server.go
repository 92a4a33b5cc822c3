/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend
  5. Auth:       Optional JWT bearer check (disabled without a secret)

ROUTE GROUPS:
  /api/quotes/*       Quote lifecycle, shifts, extras, totals
  /api/customers/*    Customer directory and rate locking
  /api/rates/*        Global default rates
  /api/technicians    Technician directory
  /api/backup/*       Export/import
  /api/auth/*         Token issuance (when auth enabled)

SEE ALSO:
  - handlers.go: Handler implementations
  - auth.go: JWT middleware
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, auth *Auth) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Token issuance stays outside the auth gate.
		r.Post("/auth/token", auth.TokenHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			// Quote routes
			r.Route("/quotes", func(r chi.Router) {
				r.Get("/", h.ListQuotes)
				r.Post("/", h.CreateQuote)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetQuote)
					r.Delete("/", h.DeleteQuote)
					r.Get("/totals", h.GetTotals)
					r.Post("/status", h.ChangeStatus)
					r.Put("/details", h.UpdateDetails)
					r.Put("/rates", h.UpdateRates)

					r.Post("/shifts", h.AddShift)
					r.Put("/shifts/{sid}", h.UpdateShift)
					r.Delete("/shifts/{sid}", h.RemoveShift)

					r.Post("/extras", h.AddExtra)
					r.Delete("/extras/{xid}", h.RemoveExtra)

					r.Post("/expenses", h.AddExpense)
					r.Delete("/expenses/{eid}", h.RemoveExpense)
				})
			})

			// Customer routes
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.ListCustomers)
				r.Post("/", h.CreateCustomer)
				r.Get("/{id}", h.GetCustomer)
				r.Put("/{id}", h.UpdateCustomer)
				r.Delete("/{id}", h.DeleteCustomer)
				r.Post("/{id}/lock", h.LockCustomer)
			})

			// Settings routes
			r.Get("/rates/defaults", h.GetDefaultRates)
			r.Put("/rates/defaults", h.SaveDefaultRates)
			r.Get("/technicians", h.GetTechnicians)
			r.Put("/technicians", h.SaveTechnicians)

			// Backup routes
			r.Get("/backup/export", h.ExportBackup)
			r.Post("/backup/import", h.ImportBackup)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
