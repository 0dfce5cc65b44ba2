// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category describes one taxonomy entry for a content kind. Items reference
// categories by name, and the category's slug prefix becomes part of every
// dependent item identifier. The prefix is stable once items reference it;
// changing it requires migrating all dependent slugs.
type Category struct {
	ID         uuid.UUID `json:"id"`
	Kind       Kind      `json:"kind"`
	Name       string    `json:"name"`
	SlugPrefix string    `json:"slug_prefix"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Virtual field populated by store methods.
	ItemCount int `json:"item_count"`
}

// IsCompound reports whether the slug prefix spans more than one segment
// (e.g. "home-services"). Compound prefixes need whole-prefix matching when
// identifiers are parsed back into categories.
func (c *Category) IsCompound() bool {
	return strings.Contains(c.SlugPrefix, "-")
}

// PrefixSegments returns the individual hyphen-separated segments of the
// slug prefix.
func (c *Category) PrefixSegments() []string {
	return strings.Split(c.SlugPrefix, "-")
}
