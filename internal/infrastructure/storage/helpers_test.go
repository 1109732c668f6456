package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

var fixturePath = filepath.Join("..", "..", "usecase", "testdata", "catalog.json")

func loadFixture(t *testing.T) *entity.Catalog {
	t.Helper()
	catalog, err := NewFileCatalogRepository(fixturePath).Load(context.Background())
	require.NoError(t, err)
	return catalog
}
