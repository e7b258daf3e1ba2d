package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/vadimbarashkov/utmka/internal/adapter/cache"
	"github.com/vadimbarashkov/utmka/internal/config"
	"github.com/vadimbarashkov/utmka/internal/session"
	"github.com/vadimbarashkov/utmka/internal/usecase"
	"github.com/vadimbarashkov/utmka/internal/utm"

	delivery "github.com/vadimbarashkov/utmka/internal/adapter/delivery/http"
)

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg.Log, os.Stdout)

	repos, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer repos.close()

	submissions, err := cache.NewSubmissionCache(cfg.Generator.CacheSize, cfg.Generator.IdempotencyTTL)
	if err != nil {
		return fmt.Errorf("%s: failed to create submission cache: %w", op, err)
	}
	defer submissions.Close()

	linkUC := usecase.NewLinkUseCase(logger.Logger, repos.history, repos.preferences, submissions)
	templateUC := usecase.NewTemplateUseCase(logger.Logger, repos.templates)
	prefUC := usecase.NewPreferenceUseCase(logger.Logger, repos.preferences)

	sessions := session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	unsubscribe := sessions.Subscribe(sessionRecorder(ctx, logger.Logger, prefUC))
	defer unsubscribe()

	router := delivery.NewRouter(logger, delivery.UseCases{
		Links:       linkUC,
		Templates:   templateUC,
		Preferences: prefUC,
		Sessions:    sessions,
	}, delivery.RouterConfig{
		Catalog:    catalog(cfg.Presets),
		RateLimit:  cfg.Generator.RateLimit,
		RateBurst:  cfg.Generator.RateBurst,
		SwaggerDoc: cfg.HTTPServer.SwaggerDoc,
	})

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        router,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		logger.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("env", cfg.Env),
			slog.String("storage", cfg.Storage.Driver),
		)

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}

type loggedInRecorder interface {
	SetLoggedIn(ctx context.Context, loggedIn bool) error
}

// sessionRecorder persists the logged-in flag on every session transition.
func sessionRecorder(ctx context.Context, logger *slog.Logger, prefs loggedInRecorder) func(session.Event) {
	return func(e session.Event) {
		logger.Info("session changed",
			slog.String("event", e.Kind.String()),
			slog.String("email", e.Session.Email),
		)

		if err := prefs.SetLoggedIn(context.WithoutCancel(ctx), e.Kind == session.LoggedIn); err != nil {
			logger.Error("failed to record session state", slog.Any("err", err))
		}
	}
}

// catalog returns the configured presets, falling back to the built-in ones
// for each empty list.
func catalog(p config.Presets) utm.Catalog {
	c := utm.DefaultCatalog()

	if len(p.Sources) > 0 {
		c.Sources = toPresets(p.Sources)
	}
	if len(p.Mediums) > 0 {
		c.Mediums = toPresets(p.Mediums)
	}

	return c
}

func toPresets(in []config.Preset) []utm.Preset {
	out := make([]utm.Preset, 0, len(in))
	for _, p := range in {
		out = append(out, utm.Preset{Label: p.Label, Value: p.Value})
	}
	return out
}
