package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/usecase"
)

var postgresDialect = sqlDialect{
	name:     "postgres",
	idColumn: "BIGSERIAL PRIMARY KEY",
	bind:     func(n int) string { return fmt.Sprintf("$%d", n) },
}

// PostgresCatalogRepository parts jadvali Postgres da
type PostgresCatalogRepository struct {
	*sqlCatalog
}

// PostgresOption connect sozlamalari
type PostgresOption func(*connectOptions)

// WithConnectRetry urinishlar soni va oraliq
func WithConnectRetry(attempts int, delay time.Duration) PostgresOption {
	return func(o *connectOptions) {
		o.attempts = attempts
		o.delay = delay
	}
}

// WithPostgresLogger retry logs
func WithPostgresLogger(l zerolog.Logger) PostgresOption {
	return func(o *connectOptions) { o.log = l }
}

// NewPostgresCatalogRepository ulanish (retry bilan) va jadvalni yaratish
func NewPostgresCatalogRepository(ctx context.Context, dsn string, opts ...PostgresOption) (*PostgresCatalogRepository, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, usecase.WrapDataLoading(fmt.Errorf("postgres dsn is empty"), "postgres")
	}
	o := connectOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := openPostgresWithRetry(ctx, dsn, o)
	if err != nil {
		return nil, usecase.WrapDataLoading(err, "postgres")
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	repo := &PostgresCatalogRepository{&sqlCatalog{db: db, dialect: postgresDialect}}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, usecase.WrapDataLoading(err, "postgres")
	}
	return repo, nil
}
