// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"localhub/internal/cache"
	"localhub/internal/models"
	"localhub/internal/ordering"
	"localhub/internal/store"
	"localhub/internal/taxonomy"
)

// Public serves the end-user-facing listings: visible items grouped by
// category. Responses are cached whole in Valkey since category resolution
// runs for every item on every render.
type Public struct {
	items      *store.ItemStore
	categories *store.CategoryStore
	listings   *cache.ListingCache
}

// NewPublic creates a new Public handler group with the given dependencies.
func NewPublic(items *store.ItemStore, categories *store.CategoryStore, listings *cache.ListingCache) *Public {
	return &Public{
		items:      items,
		categories: categories,
		listings:   listings,
	}
}

// listingGroup is one category bucket in a public listing response.
type listingGroup struct {
	Category string               `json:"category"`
	Prefix   string               `json:"prefix"`
	Items    []models.ContentItem `json:"items"`
}

// Listing returns a kind's visible items grouped by resolved category.
// Hidden items were already filtered at the store; categories appear in
// taxonomy order, with legacy and unresolvable groups after them.
func (p *Public) Listing(kind models.Kind) http.HandlerFunc {
	ns := taxonomy.NamespaceFor(kind)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if body, ok := p.listings.Get(ctx, kind); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		cats, err := p.categories.ListByKind(kind)
		if err != nil {
			slog.Error("list categories failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load listing.")
			return
		}
		items, err := p.items.ListVisibleByKind(kind)
		if err != nil {
			slog.Error("list visible items failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load listing.")
			return
		}

		// Bucket every item under its resolved category. Resolution is pure
		// and works off the taxonomy snapshot loaded above.
		buckets := make(map[string][]models.ContentItem)
		resolved := make(map[string]models.Category)
		for _, item := range items {
			cat := taxonomy.ResolveCategory(ns, item.Slug, cats)
			buckets[cat.SlugPrefix] = append(buckets[cat.SlugPrefix], item)
			resolved[cat.SlugPrefix] = cat
		}

		// Known categories first, in taxonomy order.
		groups := make([]listingGroup, 0, len(buckets))
		for _, cat := range cats {
			members, ok := buckets[cat.SlugPrefix]
			if !ok {
				continue
			}
			ordering.SortSiblings(members)
			groups = append(groups, listingGroup{Category: cat.Name, Prefix: cat.SlugPrefix, Items: members})
			delete(buckets, cat.SlugPrefix)
		}
		// Then whatever resolved through the legacy table or the sentinel,
		// in stable prefix order.
		rest := make([]string, 0, len(buckets))
		for prefix := range buckets {
			rest = append(rest, prefix)
		}
		sort.Strings(rest)
		for _, prefix := range rest {
			members := buckets[prefix]
			ordering.SortSiblings(members)
			groups = append(groups, listingGroup{Category: resolved[prefix].Name, Prefix: prefix, Items: members})
		}

		body, err := json.Marshal(map[string]any{"groups": groups})
		if err != nil {
			slog.Error("marshal listing failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to build listing.")
			return
		}

		p.listings.Set(ctx, kind, body)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// Item returns a single visible item by its derived identifier. Hidden items
// and items of another kind 404, so a leaked admin URL reveals nothing.
func (p *Public) Item(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := p.items.FindBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			slog.Error("find item by slug failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load item.")
			return
		}
		if item == nil || item.Kind != kind || item.IsHidden {
			respondError(w, http.StatusNotFound, "Item not found.")
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}
