package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/worldhappiness/api/internal/config"
	"github.com/worldhappiness/api/internal/platform/postgres"
	"github.com/worldhappiness/api/internal/service/auth"
	"github.com/worldhappiness/api/internal/store"
)

// application holds the long-lived dependencies shared by every
// request: configuration, the database pool, the stores and the auth
// services. Everything here is initialized once before serving begins
// and read-only thereafter.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	profileStore store.ProfileStore
	rankingStore store.RankingStore

	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	tokenLifetime time.Duration
}

// newApplication connects to the database, brings the schema up to
// date and constructs the service graph.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewUserStore(db),
		profileStore:     postgres.NewProfileStore(db),
		rankingStore:     postgres.NewRankingStore(db),
		tokenService:     tokenService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
		tokenLifetime:    time.Duration(cfg.Auth.TokenLifetimeMinutes) * time.Minute,
	}, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
