package app

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/utmka/internal/config"
	"github.com/vadimbarashkov/utmka/internal/usecase"
	"github.com/vadimbarashkov/utmka/migrations"
	"github.com/vadimbarashkov/utmka/pkg/postgres"
	"github.com/vadimbarashkov/utmka/pkg/sqlite"

	localrepo "github.com/vadimbarashkov/utmka/internal/adapter/repository/local"
	pgrepo "github.com/vadimbarashkov/utmka/internal/adapter/repository/postgres"
)

type repositories struct {
	history     usecase.HistoryRepository
	templates   usecase.TemplateRepository
	preferences usecase.PreferenceRepository
	close       func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (*repositories, error) {
	const op = "app.openStorage"

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dsn := cfg.Postgres.DSN()

		db, err := postgres.New(
			ctx,
			dsn,
			postgres.WithConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime),
			postgres.WithConnMaxLifetime(cfg.Postgres.ConnMaxLifetime),
			postgres.WithMaxIdleConns(cfg.Postgres.MaxIdleConns),
			postgres.WithMaxOpenConns(cfg.Postgres.MaxOpenConns),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
		}

		if err := postgres.RunMigrations(migrations.FS, dsn); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: failed to run migrations: %w", op, err)
		}

		return &repositories{
			history:     pgrepo.NewHistoryRepository(db),
			templates:   pgrepo.NewTemplateRepository(db),
			preferences: pgrepo.NewPreferenceRepository(db),
			close:       db.Close,
		}, nil

	case config.StorageSQLite:
		db, err := sqlite.New(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
		}

		store := localrepo.NewStore(db)

		return &repositories{
			history:     localrepo.NewHistoryRepository(store),
			templates:   localrepo.NewTemplateRepository(store),
			preferences: localrepo.NewPreferenceRepository(store),
			close:       db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %w: %q", op, config.ErrUnknownStorage, cfg.Storage.Driver)
	}
}
