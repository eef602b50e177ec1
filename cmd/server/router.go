package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/worldhappiness/api/internal/api"
	apiMiddleware "github.com/worldhappiness/api/internal/api/middleware"
)

// setupRouter creates and configures the application router, wiring the
// gate chain for each route. Gates run in declaration order; the first
// failure short-circuits to the condition translator.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(apiMiddleware.Trace)

	gates := api.NewGates(app.tokenService, app.userStore, app.passwordVerifier)
	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.passwordHasher, app.tokenLifetime)
	profileHandler := api.NewProfileHandler(app.profileStore)
	rankingsHandler := api.NewRankingsHandler(app.rankingStore)
	docsHandler := api.NewDocsHandler()

	// Unmatched routes go through the same translator as every other
	// failure.
	r.NotFound(api.NotFoundHandler())

	// Data endpoints
	r.Get("/factors/{year}", api.Handle(rankingsHandler.Factors,
		gates.Authorize,
		api.QueryFormat,
		api.AllowParams(api.KindFactorsParams, "country", "limit")))
	r.Get("/rankings", api.Handle(rankingsHandler.Rankings,
		api.QueryFormat,
		api.AllowParams(api.KindRankingsParams, "year", "country")))
	r.Get("/countries", api.Handle(rankingsHandler.Countries,
		api.AllowParams(api.KindCountriesParams)))

	// Account endpoints. The lookup gate defers the found-or-not
	// judgment so the same chain prefix serves register and login.
	r.Route("/user", func(r chi.Router) {
		r.Post("/register", api.Handle(authHandler.Register,
			gates.RequireCredentials,
			gates.LookupUser,
			api.RequireUserAbsent))
		r.Post("/login", api.Handle(authHandler.Login,
			gates.RequireCredentials,
			gates.LookupUser,
			gates.VerifyPassword))

		r.Route("/{email}", func(r chi.Router) {
			// A profile read downgrades to the public subset instead
			// of failing when the caller is absent or someone else.
			r.Get("/profile", api.Handle(profileHandler.Get,
				gates.LookupUser,
				api.RequireUserExists,
				api.Recover(gates.Authorize, api.PublicView,
					api.KindForbidden, api.KindAuthHeaderMissing)))
			r.Put("/profile", api.Handle(profileHandler.Put,
				gates.LookupUser,
				api.RequireUserExists,
				gates.Authorize,
				api.ProfileBody))
		})
	})

	// API documentation
	r.Get("/docs", docsHandler.Page)
	r.Get("/docs/openapi.json", docsHandler.Document)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
