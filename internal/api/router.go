package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phamdv/gamestore/internal/services/commerce"
)

// NewRouter constructs the HTTP router with all endpoints registered.
func NewRouter(svc *commerce.Service, allowedOrigins []string) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-Id", "X-User-Admin"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(RequireIdentity)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCartHandler)
			r.Post("/add", h.AddToCartHandler)
			r.Delete("/remove/{gameID}", h.RemoveFromCartHandler)
			r.Post("/checkout", h.CheckoutHandler)
		})

		r.Route("/library", func(r chi.Router) {
			r.Get("/", h.GetLibraryHandler)
			r.Get("/owns/{gameID}", h.OwnsHandler)
			r.Post("/refund/{gameID}", h.RefundHandler)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.GetWalletHandler)
			r.Post("/deposit", h.DepositHandler)
		})

		r.Get("/transactions", h.GetTransactionsHandler)
		r.Get("/admin/statistics", h.GetStatisticsHandler)
	})

	return r
}
