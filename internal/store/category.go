// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"localhub/internal/models"
)

// CategoryStore manages per-kind taxonomy categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, kind, name, slug_prefix, sort_order, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Kind, &c.Name, &c.SlugPrefix,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByKind returns all categories of a kind ordered by sort_order, with
// item counts.
func (s *CategoryStore) ListByKind(kind models.Kind) ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.kind, c.name, c.slug_prefix, c.sort_order,
		       c.created_at, c.updated_at,
		       COUNT(ci.id) AS item_count
		FROM categories c
		LEFT JOIN content_items ci ON ci.category_name = c.name AND ci.kind = c.kind
		WHERE c.kind = $1
		GROUP BY c.id
		ORDER BY c.sort_order, c.name
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Kind, &c.Name, &c.SlugPrefix,
			&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
			&c.ItemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindByName retrieves a category by kind and name. Returns nil if not found.
func (s *CategoryStore) FindByName(kind models.Kind, name string) (*models.Category, error) {
	row := s.db.QueryRow(`
		SELECT `+categoryColumns+` FROM categories
		WHERE kind = $1 AND name = $2
	`, kind, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (kind, name, slug_prefix, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		c.Kind, c.Name, c.SlugPrefix, c.SortOrder,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category. The slug prefix is stable once items
// reference it; handlers enforce that with ItemCountByName before calling.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, slug_prefix = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.SlugPrefix, c.SortOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// UpdateWithRename modifies a category whose name changed and retargets
// dependent items' category_name in the same transaction, so item lookups by
// the new name keep working. Slugs are untouched: they embed the prefix, not
// the name.
func (s *CategoryStore) UpdateWithRename(c *models.Category, oldName string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin rename tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE categories SET
			name = $1, slug_prefix = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.SlugPrefix, c.SortOrder, c.ID)
	if err != nil {
		return fmt.Errorf("rename category: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE content_items SET category_name = $1, updated_at = NOW()
		WHERE kind = $2 AND category_name = $3
	`, c.Name, c.Kind, oldName)
	if err != nil {
		return fmt.Errorf("retarget items: %w", err)
	}

	return tx.Commit()
}

// Delete removes a category by ID. Items keep their category_name and resolve
// through the legacy table or the Uncategorized sentinel afterwards.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ItemCountByName returns how many items of a kind reference the category.
// Used to refuse prefix changes that would strand dependent identifiers.
func (s *CategoryStore) ItemCountByName(kind models.Kind, name string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM content_items
		WHERE kind = $1 AND category_name = $2
	`, kind, name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category items: %w", err)
	}
	return count, nil
}
