// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the content surfaces managed by the console. All kinds
// share the unified content_items table, differentiated by this field.
type Kind string

const (
	KindPage    Kind = "page"
	KindVendor  Kind = "vendor"
	KindForum   Kind = "forum"
	KindProduct Kind = "product"
)

// Kinds lists every managed content kind in display order.
var Kinds = []Kind{KindPage, KindVendor, KindForum, KindProduct}

// Valid reports whether k names a known content kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPage, KindVendor, KindForum, KindProduct:
		return true
	}
	return false
}

// ContentItem represents one administrable item: a community page, a vendor
// listing, a forum category, or a store product.
//
// Slug is always derived from (CategoryName, Title) on save and is not
// independently editable. SortOrder positions the item among siblings sharing
// the same category; nil means "never explicitly ordered" and such items sort
// after all ordered siblings. IsHidden excludes the item from public listings
// without removing it from the admin console.
type ContentItem struct {
	ID           uuid.UUID `json:"id"`
	Kind         Kind      `json:"kind"`
	Title        string    `json:"title"`
	CategoryName string    `json:"category_name"`
	Slug         string    `json:"slug"`
	Body         string    `json:"body"`
	SortOrder    *int      `json:"sort_order"`
	IsHidden     bool      `json:"is_hidden"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasOrder reports whether the item carries an explicit order key.
func (c *ContentItem) HasOrder() bool {
	return c.SortOrder != nil
}
