package repository

import (
	"context"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// CatalogRepository parts katalogini o'qish uchun interface
type CatalogRepository interface {
	// Load returns a catalog the caller may keep; implementations never hand out shared state.
	Load(ctx context.Context) (*entity.Catalog, error)
}

// CatalogWriter katalogni to'liq almashtirish
type CatalogWriter interface {
	SaveCatalog(ctx context.Context, catalog *entity.Catalog) error
}

// CatalogStore read/write catalog backend (postgres, sqlite)
type CatalogStore interface {
	CatalogRepository
	CatalogWriter
	Close() error
}

// PartFinder katalog ichida qidirish
type PartFinder interface {
	GetByCategory(ctx context.Context, category string) ([]entity.Part, error)
	Search(ctx context.Context, query string) ([]entity.PartMatch, error)
}
