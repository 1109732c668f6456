package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yourusername/pc-configurator/internal/usecase"
)

var sqliteDialect = sqlDialect{
	name:     "sqlite",
	idColumn: "INTEGER PRIMARY KEY AUTOINCREMENT",
	bind:     func(int) string { return "?" },
}

// SQLiteCatalogRepository parts jadvali SQLite faylida
type SQLiteCatalogRepository struct {
	*sqlCatalog
}

// NewSQLiteCatalogRepository faylni ochish va jadvalni yaratish
func NewSQLiteCatalogRepository(ctx context.Context, path string) (*SQLiteCatalogRepository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, usecase.WrapDataLoading(fmt.Errorf("sqlite path is empty"), "sqlite")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, usecase.WrapDataLoading(err, path)
	}
	// sqlite bitta yozuvchi
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, usecase.WrapDataLoading(err, path)
	}

	repo := &SQLiteCatalogRepository{&sqlCatalog{db: db, dialect: sqliteDialect}}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, usecase.WrapDataLoading(err, path)
	}
	return repo, nil
}
