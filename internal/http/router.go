package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mywallet/mywallet/internal/http/assistant"
	"github.com/mywallet/mywallet/internal/http/balance"
	"github.com/mywallet/mywallet/internal/http/category"
	"github.com/mywallet/mywallet/internal/http/exchange"
	"github.com/mywallet/mywallet/internal/http/export"
	"github.com/mywallet/mywallet/internal/http/importcsv"
	"github.com/mywallet/mywallet/internal/http/stats"
	"github.com/mywallet/mywallet/internal/http/transaction"
)

type Options struct {
	AuthSecret     string
	AllowedOrigins []string
}

func New(
	transactionsV1 *transaction.Handler,
	balanceV1 *balance.Handler,
	statsV1 *stats.Handler,
	exchangeV1 *exchange.Handler,
	categoriesV1 *category.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
	assistantV1 *assistant.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(RequireAuth(opts.AuthSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/balance", balanceV1.Routes)
		r.Route("/stats", statsV1.Routes)

		r.Route("/exchange", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exchangeV1.Routes(r)
		})

		r.Route("/categories", categoriesV1.Routes)
		r.Route("/export", exportV1.Routes)
		r.Route("/import", importV1.Routes)

		if assistantV1 != nil {
			r.Route("/assistant", assistantV1.Routes)
		}
	})

	return router
}
