package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/ai"
	httpapi "github.com/aussiebroadwan/cookify/internal/cookify/http"
	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/postgres"
	"github.com/aussiebroadwan/cookify/internal/cookify/store/drivers/sqlite"
	"github.com/aussiebroadwan/cookify/pkg/cryptox"
	"github.com/aussiebroadwan/cookify/pkg/jwtx"
	"github.com/aussiebroadwan/cookify/pkg/mealdb"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the cookify API and owns its lifecycle.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	hasher *cryptox.Hasher
	tokens *jwtx.HS256Issuer

	gate               *service.Gate
	accountService     *service.AccountService
	pantryService      *service.PantryService
	savedRecipeService *service.SavedRecipeService
	recipeService      *service.RecipeService
	aiRecipeService    *service.AIRecipeService
	statsService       *service.StatsService

	server *http.Server
	router *httpapi.Router
}

// New builds an Application from cfg. It opens and migrates the database
// but does not start listening.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "cookify",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initSecurity(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the server and blocks until a signal or server error.
func (app *Application) Run() error {
	app.logger.Info("cookify starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests for up to the grace period and closes
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down cookify...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("cookify stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initSecurity() error {
	hasher, err := cryptox.NewHasher(cryptox.HasherConfig{
		Scheme:     app.cfg.PasswordHashScheme,
		BcryptCost: app.cfg.BcryptCost,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	app.hasher = hasher

	secret := app.cfg.JWTSecret
	if secret == "" {
		// Validate only lets this through in dev. Tokens die with the process.
		secret, err = cryptox.RandomSecret(cryptox.SecretBytes)
		if err != nil {
			return fmt.Errorf("failed to generate development secret: %w", err)
		}
		app.logger.Warn("JWT_SECRET not set, using a random development secret")
	}

	tokens, err := jwtx.NewHS256Issuer([]byte(secret), app.cfg.JWTExpires)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = tokens

	return nil
}

func (app *Application) initServices(ctx context.Context) error {
	app.gate = &service.Gate{Store: app.db, Verifier: app.tokens}
	app.accountService = &service.AccountService{
		Store:    app.db,
		Hasher:   app.hasher,
		Tokens:   app.tokens,
		TokenTTL: app.cfg.JWTExpires,
	}
	app.pantryService = &service.PantryService{Store: app.db}
	app.savedRecipeService = &service.SavedRecipeService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db}

	meals := mealdb.NewClient(app.cfg.MealDBBaseURL)
	if app.cfg.UpstreamTimeout > 0 {
		meals.HTTPClient.Timeout = app.cfg.UpstreamTimeout
	}
	app.recipeService = &service.RecipeService{
		Source:      meals,
		Concurrency: service.DefaultLookupConcurrency,
	}

	app.aiRecipeService = &service.AIRecipeService{}
	gemini, err := ai.NewGemini(ctx, ai.GeminiConfig{
		APIKey: app.cfg.GeminiAPIKey,
		Model:  app.cfg.GeminiModel,
	})
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		app.logger.Warn("GEMINI_API_KEY not set, AI recipes disabled")
	case err != nil:
		return err
	default:
		app.aiRecipeService.Generator = gemini
		app.logger.Info("AI recipes enabled", "model", gemini.Model())
	}

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger, app.cfg.CORS())

	router.Gate = app.gate
	router.AccountService = app.accountService
	router.PantryService = app.pantryService
	router.SavedRecipeService = app.savedRecipeService
	router.RecipeService = app.recipeService
	router.AIRecipeService = app.aiRecipeService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
