// Package http provides the HTTP delivery layer of the UTM link generator.
// It contains the handlers, request and response schemas, and the
// middleware guarding the session-only routes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vadimbarashkov/utmka/internal/utm"
)

// UseCases groups the application services served by the router.
type UseCases struct {
	Links       linkUseCase
	Templates   templateUseCase
	Preferences preferenceUseCase
	Sessions    sessionManager
}

// RouterConfig tunes the router.
type RouterConfig struct {
	Catalog    utm.Catalog
	RateLimit  float64 // RateLimit is the number of link generations allowed per second and client IP.
	RateBurst  int
	SwaggerDoc string // SwaggerDoc is the path of the OpenAPI document served at /docs/swagger.yml.
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the UTM API.
func NewRouter(logger *httplog.Logger, uc UseCases, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Authorization", idempotencyKeyHeader},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer(logger.Logger))

	swaggerDoc := cfg.SwaggerDoc
	if swaggerDoc == "" {
		swaggerDoc = "./docs/swagger.yml"
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerDoc)
	})

	validate := newValidator()
	limiter := newIPRateLimiter(logger.Logger, cfg.RateLimit, cfg.RateBurst)

	links := newLinkHandler(uc.Links, validate)
	templates := newTemplateHandler(uc.Templates, cfg.Catalog, validate)
	prefs := newPreferenceHandler(uc.Preferences, validate)
	auth := newAuthHandler(uc.Sessions, validate)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Get("/presets", func(w http.ResponseWriter, r *http.Request) {
			render.Status(r, http.StatusOK)
			render.JSON(w, r, toPresetsResponse(cfg.Catalog))
		})

		r.Route("/links", func(r chi.Router) {
			r.With(limiter.middleware).Post("/", links.generateLink)
			r.Get("/", links.listLinks)
			r.Delete("/{id}", links.removeLink)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", prefs.getPreferences)
			r.Put("/", prefs.updatePreferences)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.login)
			r.With(auth.requireSession).Post("/logout", auth.logout)
			r.Get("/session", auth.currentSession)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.requireSession)

			r.Route("/templates", func(r chi.Router) {
				r.Post("/", templates.createTemplate)
				r.Get("/", templates.listTemplates)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", templates.findTemplate)
					r.Get("/form", templates.loadTemplate)
					r.Put("/", templates.updateTemplate)
					r.Delete("/", templates.removeTemplate)
				})
			})

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", templates.createGroup)
				r.Get("/", templates.listGroups)
				r.Delete("/{id}", templates.removeGroup)
			})
		})
	})

	return r
}
