package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"

	_ "github.com/aussiebroadwan/cookify/api/cookify" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Gate               *service.Gate
	AccountService     *service.AccountService
	PantryService      *service.PantryService
	SavedRecipeService *service.SavedRecipeService
	RecipeService      *service.RecipeService
	AIRecipeService    *service.AIRecipeService
	StatsService       *service.StatsService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	cors httpx.CORSConfig,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Logging wraps CORS so rejected preflights are still logged.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPantry()
	r.registerRecipes()
	r.registerSavedRecipes()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Cookify API
//	@version		0.1.0
//	@description	Recipe backend: accounts, pantry, saved recipes, TheMealDB search and AI generated recipes.
//	@description
//	@description				Access tokens are HS256 signed JWTs returned by /auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/cookify
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured runs h behind the authentication gate.
func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, AuthnMiddleware(r.Gate))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /auth/login", h.HandleLogin)
	r.Mux.Handle("GET /auth/me", r.secured(h.HandleMe))
}

func (r *Router) registerPantry() {
	h := &PantryHandler{PantryService: r.PantryService}

	r.Mux.Handle("GET /users/me/pantry", r.secured(h.HandleList))
	r.Mux.Handle("POST /users/me/pantry", r.secured(h.HandleUpsert))
	r.Mux.Handle("DELETE /users/me/pantry/{name}", r.secured(h.HandleDelete))
}

func (r *Router) registerRecipes() {
	h := &RecipesHandler{
		RecipeService:   r.RecipeService,
		AIRecipeService: r.AIRecipeService,
	}

	// Search and generation are public.
	r.Mux.HandleFunc("POST /recipes/search", h.HandleSearch)
	r.Mux.HandleFunc("POST /recipes/ai", h.HandleAI)
}

func (r *Router) registerSavedRecipes() {
	h := &SavedRecipesHandler{SavedRecipeService: r.SavedRecipeService}

	r.Mux.Handle("POST /recipes/{id}/save", r.secured(h.HandleSave))
	r.Mux.Handle("GET /users/me/saved", r.secured(h.HandleList))
	r.Mux.Handle("DELETE /users/me/saved/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	aiConfigured := r.AIRecipeService != nil && r.AIRecipeService.Generator != nil

	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /health", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, aiConfigured))
	r.Mux.Handle("GET /stats", StatsHandler(r.StatsService))
}
