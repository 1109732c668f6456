package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/repository"
)

// OpenOptions qaysi store ochilishi
type OpenOptions struct {
	Source      string
	Path        string
	PostgresDSN string
	SQLitePath  string
	Log         zerolog.Logger
}

// Open CATALOG_SOURCE bo'yicha CatalogStore; an empty postgres DSN falls back to POSTGRES_* variables
func Open(ctx context.Context, opts OpenOptions) (repository.CatalogStore, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Source)) {
	case "", constants.CatalogSourceFile:
		return NewFileCatalogRepository(opts.Path), nil
	case constants.CatalogSourceSQLite:
		repo, err := NewSQLiteCatalogRepository(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case constants.CatalogSourcePostgres:
		dsn := opts.PostgresDSN
		if strings.TrimSpace(dsn) == "" {
			dsn = BuildPostgresDSNFromEnv()
		}
		repo, err := NewPostgresCatalogRepository(ctx, dsn,
			WithConnectRetry(constants.PostgresConnectAttempts, constants.PostgresConnectDelay),
			WithPostgresLogger(opts.Log),
		)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", opts.Source)
	}
}
