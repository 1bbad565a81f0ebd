package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gsf/tournament-tracker/handlers"
)

// SetupRoutes wires the read-only reporting API onto the router.
func SetupRoutes(
	router *chi.Mux,
	healthHandler *handlers.HealthHandler,
	memberHandler *handlers.MemberHandler,
	tournamentHandler *handlers.TournamentHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", healthHandler.LivenessHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/members", memberHandler.ListHandler)
		r.Get("/members/{memberID}", memberHandler.GetByIDHandler)
		r.Get("/rankings", memberHandler.RankingsHandler)
		r.Get("/history/{memberID}", memberHandler.HistoryHandler)

		r.Get("/tournaments", tournamentHandler.ListHandler)
		r.Get("/tournaments/{tournamentID}", tournamentHandler.GetByIDHandler)
		r.Get("/tournaments/{tournamentID}/results", tournamentHandler.ResultsHandler)
	})
}
