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

// ItemStore handles all content item database operations. It serves pages,
// vendor listings, forum categories, and store products through the unified
// content_items table.
//
// Update is whole-record replacement, not a partial patch: omitting a field
// is indistinguishable from clearing it, so callers must resend every
// persisted field.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore creates a new ItemStore with the given database connection.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

const itemColumns = `id, kind, title, category_name, slug, body, sort_order, is_hidden, created_at, updated_at`

// scanItem scans a row into a ContentItem, converting a NULL sort_order to nil.
func scanItem(scanner interface{ Scan(...any) error }) (*models.ContentItem, error) {
	var c models.ContentItem
	var sortOrder sql.NullInt64
	err := scanner.Scan(
		&c.ID, &c.Kind, &c.Title, &c.CategoryName, &c.Slug, &c.Body,
		&sortOrder, &c.IsHidden, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sortOrder.Valid {
		v := int(sortOrder.Int64)
		c.SortOrder = &v
	}
	return &c, nil
}

// collectItems drains rows into a slice of items.
func collectItems(rows *sql.Rows) ([]models.ContentItem, error) {
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		c, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListByKind returns all items of the given kind, including hidden ones,
// ordered the way the admin console displays them.
func (s *ItemStore) ListByKind(kind models.Kind) ([]models.ContentItem, error) {
	rows, err := s.db.Query(`
		SELECT `+itemColumns+`
		FROM content_items
		WHERE kind = $1
		ORDER BY category_name, sort_order ASC NULLS LAST, id
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("list items by kind: %w", err)
	}
	return collectItems(rows)
}

// ListByCategory returns the sibling set: all items of a kind sharing one
// category, hidden included, ordered by sort_order with unordered items last.
func (s *ItemStore) ListByCategory(kind models.Kind, categoryName string) ([]models.ContentItem, error) {
	rows, err := s.db.Query(`
		SELECT `+itemColumns+`
		FROM content_items
		WHERE kind = $1 AND category_name = $2
		ORDER BY sort_order ASC NULLS LAST, id
	`, kind, categoryName)
	if err != nil {
		return nil, fmt.Errorf("list items by category: %w", err)
	}
	return collectItems(rows)
}

// ListVisibleByKind returns non-hidden items of a kind for public listings.
func (s *ItemStore) ListVisibleByKind(kind models.Kind) ([]models.ContentItem, error) {
	rows, err := s.db.Query(`
		SELECT `+itemColumns+`
		FROM content_items
		WHERE kind = $1 AND is_hidden = FALSE
		ORDER BY category_name, sort_order ASC NULLS LAST, id
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("list visible items: %w", err)
	}
	return collectItems(rows)
}

// FindByID retrieves an item by its UUID. Returns nil if not found.
func (s *ItemStore) FindByID(id uuid.UUID) (*models.ContentItem, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM content_items WHERE id = $1`, id)
	c, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves an item by its derived identifier. Returns nil if not found.
func (s *ItemStore) FindBySlug(slug string) (*models.ContentItem, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM content_items WHERE slug = $1`, slug)
	c, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new item and returns it with the generated ID. When the
// item carries no order key, it is placed last in its category.
func (s *ItemStore) Create(c *models.ContentItem) (*models.ContentItem, error) {
	if c.SortOrder == nil {
		next, err := s.NextSortOrder(c.Kind, c.CategoryName)
		if err != nil {
			return nil, err
		}
		c.SortOrder = &next
	}

	row := s.db.QueryRow(`
		INSERT INTO content_items (kind, title, category_name, slug, body, sort_order, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+itemColumns,
		c.Kind, c.Title, c.CategoryName, c.Slug, c.Body, c.SortOrder, c.IsHidden,
	)
	result, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return result, nil
}

// Update replaces the whole stored record for the item.
func (s *ItemStore) Update(c *models.ContentItem) error {
	_, err := s.db.Exec(`
		UPDATE content_items SET
			title = $1, category_name = $2, slug = $3, body = $4,
			sort_order = $5, is_hidden = $6, updated_at = NOW()
		WHERE id = $7
	`, c.Title, c.CategoryName, c.Slug, c.Body, c.SortOrder, c.IsHidden, c.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SwapOrders persists both sides of a reorder swap in a single transaction.
// A move must never land half-applied: without the transaction, a failure on
// the second write would leave one item moved and its neighbor not, silently
// corrupting the category's sequence.
func (s *ItemStore) SwapOrders(a, b models.ContentItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin swap tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE content_items SET
			title = $1, category_name = $2, slug = $3, body = $4,
			sort_order = $5, is_hidden = $6, updated_at = NOW()
		WHERE id = $7`)
	if err != nil {
		return fmt.Errorf("prepare swap: %w", err)
	}
	defer stmt.Close()

	for _, c := range []models.ContentItem{a, b} {
		if _, err := stmt.Exec(c.Title, c.CategoryName, c.Slug, c.Body, c.SortOrder, c.IsHidden, c.ID); err != nil {
			return fmt.Errorf("swap item %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// Delete removes an item by ID. Surviving siblings keep their order keys;
// gaps are harmless to the comparator.
func (s *ItemStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// CountByKind returns the number of items of the given kind.
func (s *ItemStore) CountByKind(kind models.Kind) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM content_items WHERE kind = $1`, kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// NextSortOrder returns the order key placing a new item last in its category.
func (s *ItemStore) NextSortOrder(kind models.Kind, categoryName string) (int, error) {
	var maxOrder sql.NullInt64
	err := s.db.QueryRow(`
		SELECT MAX(sort_order) FROM content_items
		WHERE kind = $1 AND category_name = $2
	`, kind, categoryName).Scan(&maxOrder)
	if err != nil {
		return 0, fmt.Errorf("next sort order: %w", err)
	}
	if maxOrder.Valid {
		return int(maxOrder.Int64) + 1, nil
	}
	return 0, nil
}
