package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/usecase"
)

var errCatalogEmpty = errors.New("parts table is empty")

const metaLastUpdated = "last_updated"

// sqlDialect postgres va sqlite orasidagi farqlar
type sqlDialect struct {
	name     string
	idColumn string
	bind     func(n int) string
}

// sqlCatalog parts jadvali ustidagi umumiy Load/SaveCatalog
type sqlCatalog struct {
	db      *sql.DB
	dialect sqlDialect
}

func (d sqlDialect) schema() []string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS parts (\n")
	b.WriteString("\tid " + d.idColumn + ",\n")
	b.WriteString("\tcategory TEXT NOT NULL,\n")
	b.WriteString("\tname TEXT NOT NULL,\n")
	b.WriteString("\tprice INTEGER NOT NULL")
	for _, f := range partFields {
		b.WriteString(",\n\t" + f.column + " TEXT NOT NULL DEFAULT ''")
	}
	b.WriteString("\n)")

	return []string{
		b.String(),
		`CREATE INDEX IF NOT EXISTS idx_parts_category ON parts (category)`,
		`CREATE TABLE IF NOT EXISTS catalog_meta (
	meta_key TEXT PRIMARY KEY,
	meta_value TEXT NOT NULL
)`,
	}
}

func (s *sqlCatalog) migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s schema: %w", s.dialect.name, err)
		}
	}
	return nil
}

func fieldColumns() []string {
	cols := make([]string, 0, len(partFields))
	for _, f := range partFields {
		cols = append(cols, f.column)
	}
	return cols
}

// Load partlar id tartibida, kategoriya bo'yicha guruhlangan. Rows with an unknown category are skipped.
func (s *sqlCatalog) Load(ctx context.Context) (*entity.Catalog, error) {
	query := "SELECT category, name, price, " + strings.Join(fieldColumns(), ", ") + " FROM parts ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, usecase.WrapDataLoading(err, s.dialect.name)
	}
	defer func() { _ = rows.Close() }()

	catalog := &entity.Catalog{}
	n := 0
	for rows.Next() {
		var (
			category string
			p        entity.Part
		)
		dest := []any{&category, &p.Name, &p.Price}
		for _, f := range partFields {
			dest = append(dest, f.ref(&p))
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, usecase.WrapDataLoading(err, s.dialect.name)
		}
		cat, ok := entity.ParseCategory(category)
		if !ok {
			continue
		}
		catalog.AddPart(cat, p)
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, usecase.WrapDataLoading(err, s.dialect.name)
	}
	if n == 0 {
		return nil, usecase.WrapDataLoading(errCatalogEmpty, s.dialect.name)
	}

	var updated string
	err = s.db.QueryRowContext(ctx, "SELECT meta_value FROM catalog_meta WHERE meta_key = "+s.dialect.bind(1), metaLastUpdated).Scan(&updated)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.WrapDataLoading(err, s.dialect.name)
	}
	catalog.LastUpdated = updated
	return catalog, nil
}

// SaveCatalog jadval mazmunini bitta tranzaksiyada almashtirish
func (s *sqlCatalog) SaveCatalog(ctx context.Context, catalog *entity.Catalog) (err error) {
	if catalog == nil {
		return errors.New("nil catalog")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM parts"); err != nil {
		return fmt.Errorf("clear parts: %w", err)
	}

	cols := append([]string{"category", "name", "price"}, fieldColumns()...)
	binds := make([]string, len(cols))
	for i := range cols {
		binds[i] = s.dialect.bind(i + 1)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO parts ("+strings.Join(cols, ", ")+") VALUES ("+strings.Join(binds, ", ")+")")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, cat := range entity.AllCategories {
		parts := catalog.Parts(cat)
		for i := range parts {
			args := []any{string(cat), parts[i].Name, parts[i].Price}
			for _, f := range partFields {
				args = append(args, *f.ref(&parts[i]))
			}
			if _, err = stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("insert %s %q: %w", cat, parts[i].Name, err)
			}
		}
	}

	upsert := fmt.Sprintf(
		"INSERT INTO catalog_meta (meta_key, meta_value) VALUES (%s, %s) ON CONFLICT (meta_key) DO UPDATE SET meta_value = excluded.meta_value",
		s.dialect.bind(1), s.dialect.bind(2),
	)
	if _, err = tx.ExecContext(ctx, upsert, metaLastUpdated, catalog.LastUpdated); err != nil {
		return fmt.Errorf("save catalog meta: %w", err)
	}

	return tx.Commit()
}

// Close db ulanishini yopish
func (s *sqlCatalog) Close() error {
	return s.db.Close()
}
