package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/usecase"
)

// FileCatalogRepository katalog fayli: .json, .js (PARTS_DATA wrapper), .yaml/.yml, .xlsx
type FileCatalogRepository struct {
	path string
}

// NewFileCatalogRepository path kengaytmasi bo'yicha decoder tanlanadi
func NewFileCatalogRepository(path string) *FileCatalogRepository {
	return &FileCatalogRepository{path: path}
}

// Path katalog fayli yo'li
func (r *FileCatalogRepository) Path() string { return r.path }

// Load faylni o'qib katalogga aylantirish
func (r *FileCatalogRepository) Load(ctx context.Context) (*entity.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, usecase.WrapDataLoading(err, r.path)
	}
	catalog, err := DecodeCatalog(r.path, data)
	if err != nil {
		return nil, usecase.WrapDataLoading(err, r.path)
	}
	return catalog, nil
}

// SaveCatalog katalogni fayl formatida yozish
func (r *FileCatalogRepository) SaveCatalog(ctx context.Context, catalog *entity.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeCatalog(r.path, catalog)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", r.path, err)
	}
	return nil
}

// Close no-op
func (r *FileCatalogRepository) Close() error { return nil }

// DecodeCatalog name only selects the format
func DecodeCatalog(name string, data []byte) (*entity.Catalog, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json", ".js":
		return decodeJSONCatalog(data)
	case ".yaml", ".yml":
		var catalog entity.Catalog
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
		return &catalog, nil
	case ".xlsx":
		return decodeXLSXCatalog(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

// EncodeCatalog DecodeCatalog ning teskarisi; .js is written as plain JSON
func EncodeCatalog(name string, catalog *entity.Catalog) ([]byte, error) {
	if catalog == nil {
		return nil, errors.New("nil catalog")
	}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json", ".js":
		return json.MarshalIndent(catalog, "", "  ")
	case ".yaml", ".yml":
		return yaml.Marshal(catalog)
	case ".xlsx":
		return encodeXLSXCatalog(catalog)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

func decodeJSONCatalog(data []byte) (*entity.Catalog, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '{' {
		obj, ok := extractObjectLiteral(trimmed)
		if !ok {
			return nil, errors.New("no catalog object found in script")
		}
		data = obj
	}

	var catalog entity.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode json catalog: %w", err)
	}
	return &catalog, nil
}

// extractObjectLiteral `const PARTS_DATA = {...};` ichidan birinchi to'liq {...} blok.
// Braces inside string literals do not count.
func extractObjectLiteral(src []byte) ([]byte, bool) {
	start := -1
	if i := bytes.Index(src, []byte("PARTS_DATA")); i >= 0 {
		if j := bytes.IndexByte(src[i:], '{'); j >= 0 {
			start = i + j
		}
	}
	if start < 0 {
		start = bytes.IndexByte(src, '{')
	}
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(src); i++ {
		c := src[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[start : i+1], true
			}
		}
	}
	return nil, false
}
