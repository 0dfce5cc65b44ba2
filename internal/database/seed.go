package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// seedCategory is one row of initial taxonomy data.
type seedCategory struct {
	kind       string
	name       string
	slugPrefix string
	sortOrder  int
}

// defaultCategories is the starting taxonomy for a fresh development
// database. Several prefixes are compound on purpose so the identifier
// parsing paths are exercised from day one.
var defaultCategories = []seedCategory{
	{"page", "About", "about", 0},
	{"page", "Community", "community-info", 1},

	{"vendor", "Home Services", "home-services", 0},
	{"vendor", "Food & Dining", "food-dining", 1},
	{"vendor", "Professional Services", "professional-services", 2},
	{"vendor", "Landscaping", "landscaping", 3},

	{"forum", "Announcements", "announcements", 0},
	{"forum", "General Discussion", "general-discussion", 1},
	{"forum", "Marketplace", "marketplace", 2},

	{"product", "Apparel", "apparel", 0},
	{"product", "Arts & Culture", "arts-culture", 1},
}

// Seed populates the database with the initial taxonomy for development.
// It is a no-op when categories already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, c := range defaultCategories {
		_, err := db.Exec(`
			INSERT INTO categories (kind, name, slug_prefix, sort_order)
			VALUES ($1, $2, $3, $4)
		`, c.kind, c.name, c.slugPrefix, c.sortOrder)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.name, err)
		}
	}

	slog.Info("database seeded with default taxonomy",
		"categories", len(defaultCategories),
	)

	return nil
}
