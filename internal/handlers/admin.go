// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the LocalHub console.
// Handlers are grouped by concern (admin, public) and receive their
// dependencies through the handler struct. Admin item handlers are
// parameterized by content kind: pages, vendor listings, forum categories,
// and store products all share the same management surface.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"localhub/internal/cache"
	"localhub/internal/models"
	"localhub/internal/ordering"
	"localhub/internal/store"
	"localhub/internal/taxonomy"
)

// Admin groups all admin API handlers and their dependencies.
type Admin struct {
	items      *store.ItemStore
	categories *store.CategoryStore
	listings   *cache.ListingCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(items *store.ItemStore, categories *store.CategoryStore, listings *cache.ListingCache) *Admin {
	return &Admin{
		items:      items,
		categories: categories,
		listings:   listings,
	}
}

// Stats returns per-kind item counts for the console overview.
func (a *Admin) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := make(map[string]int, len(models.Kinds))
		for _, kind := range models.Kinds {
			n, err := a.items.CountByKind(kind)
			if err != nil {
				slog.Error("count items failed", "kind", kind, "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to count items.")
				return
			}
			counts[string(kind)] = n
		}
		respondJSON(w, http.StatusOK, map[string]any{"counts": counts})
	}
}

// itemRequest is the JSON payload for creating or updating an item. Slug and
// sort order never appear here: the slug is always derived server-side from
// (category, title), and order keys change only through move operations.
type itemRequest struct {
	Title        string `json:"title"`
	CategoryName string `json:"category_name"`
	Body         string `json:"body"`
	IsHidden     bool   `json:"is_hidden"`
}

// visibilityRequest is the JSON payload for the show/hide toggle.
type visibilityRequest struct {
	IsHidden bool `json:"is_hidden"`
}

// ItemsList returns all items of a kind, hidden ones included, in display order.
func (a *Admin) ItemsList(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := a.items.ListByKind(kind)
		if err != nil {
			slog.Error("list items failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to list items.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// ItemShow returns a single item by ID.
func (a *Admin) ItemShow(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := a.findItem(w, r, kind)
		if item == nil {
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// ItemCreate creates a new item. The identifier is derived from the category
// and title, and the item is placed last in its category.
func (a *Admin) ItemCreate(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		if msg := validateItem(req.Title, req.CategoryName, req.Body); msg != "" {
			respondError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		cat, err := a.categories.FindByName(kind, req.CategoryName)
		if err != nil {
			slog.Error("find category failed", "kind", kind, "name", req.CategoryName, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to look up category.")
			return
		}
		if cat == nil {
			respondError(w, http.StatusUnprocessableEntity, "Unknown category.")
			return
		}

		item := &models.ContentItem{
			Kind:         kind,
			Title:        req.Title,
			CategoryName: cat.Name,
			Slug:         taxonomy.Derive(taxonomy.NamespaceFor(kind), *cat, req.Title, ""),
			Body:         req.Body,
			IsHidden:     req.IsHidden,
		}

		created, err := a.items.Create(item)
		if err != nil {
			slog.Error("create item failed", "kind", kind, "error", err)
			respondError(w, http.StatusConflict, "Failed to create. The slug may already exist.")
			return
		}

		a.listings.Invalidate(r.Context(), kind)
		respondJSON(w, http.StatusCreated, created)
	}
}

// ItemUpdate edits an item's title, category, or body. The identifier is
// re-derived on every edit; the existing slug is passed along so a
// human-meaningful suffix survives when the new title normalizes to nothing.
// Order key and visibility are carried over unchanged — they have their own
// operations.
func (a *Admin) ItemUpdate(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing := a.findItem(w, r, kind)
		if existing == nil {
			return
		}

		var req itemRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		if msg := validateItem(req.Title, req.CategoryName, req.Body); msg != "" {
			respondError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		cat, err := a.categories.FindByName(kind, req.CategoryName)
		if err != nil {
			slog.Error("find category failed", "kind", kind, "name", req.CategoryName, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to look up category.")
			return
		}
		if cat == nil {
			respondError(w, http.StatusUnprocessableEntity, "Unknown category.")
			return
		}

		updated := *existing
		updated.Title = req.Title
		updated.CategoryName = cat.Name
		updated.Body = req.Body
		updated.Slug = taxonomy.Derive(taxonomy.NamespaceFor(kind), *cat, req.Title, existing.Slug)

		if err := a.items.Update(&updated); err != nil {
			slog.Error("update item failed", "kind", kind, "id", updated.ID, "error", err)
			respondError(w, http.StatusConflict, "Failed to update. The slug may already exist.")
			return
		}

		a.listings.Invalidate(r.Context(), kind)
		respondJSON(w, http.StatusOK, updated)
	}
}

// ItemDelete removes an item. Surviving siblings are not renumbered; the
// comparator tolerates the gap.
func (a *Admin) ItemDelete(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := a.findItem(w, r, kind)
		if item == nil {
			return
		}

		if err := a.items.Delete(item.ID); err != nil {
			slog.Error("delete item failed", "kind", kind, "id", item.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete item.")
			return
		}

		a.listings.Invalidate(r.Context(), kind)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ItemMoveUp swaps an item with its prior sibling in the category sequence.
// Moving the first item is a no-op that still returns the current sequence.
func (a *Admin) ItemMoveUp(kind models.Kind) http.HandlerFunc {
	return a.moveItem(kind, ordering.MoveUp)
}

// ItemMoveDown swaps an item with its next sibling in the category sequence.
// Moving the last item is a no-op that still returns the current sequence.
func (a *Admin) ItemMoveDown(kind models.Kind) http.HandlerFunc {
	return a.moveItem(kind, ordering.MoveDown)
}

// moveItem loads the item's sibling set, applies the move, and persists both
// sides of the swap in one transaction. Responds with the re-read sequence.
func (a *Admin) moveItem(kind models.Kind, move func([]models.ContentItem, int) (ordering.Swap, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := a.findItem(w, r, kind)
		if item == nil {
			return
		}

		siblings, err := a.items.ListByCategory(kind, item.CategoryName)
		if err != nil {
			slog.Error("list siblings failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to load siblings.")
			return
		}
		ordering.SortSiblings(siblings)

		index := -1
		for i := range siblings {
			if siblings[i].ID == item.ID {
				index = i
				break
			}
		}
		if index == -1 {
			respondError(w, http.StatusNotFound, "Item not found in its category.")
			return
		}

		if swap, ok := move(siblings, index); ok {
			if err := a.items.SwapOrders(swap.Moved, swap.Displaced); err != nil {
				slog.Error("swap orders failed", "kind", kind, "id", item.ID, "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to reorder.")
				return
			}
			a.listings.Invalidate(r.Context(), kind)

			siblings, err = a.items.ListByCategory(kind, item.CategoryName)
			if err != nil {
				slog.Error("reload siblings failed", "kind", kind, "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to reload siblings.")
				return
			}
			ordering.SortSiblings(siblings)
		}

		respondJSON(w, http.StatusOK, map[string]any{"items": siblings})
	}
}

// ItemVisibility sets the hidden flag. A pure field flip persisted through
// the same whole-record update path as everything else; order and slug are
// untouched.
func (a *Admin) ItemVisibility(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item := a.findItem(w, r, kind)
		if item == nil {
			return
		}

		var req visibilityRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}

		item.IsHidden = req.IsHidden
		if err := a.items.Update(item); err != nil {
			slog.Error("update visibility failed", "kind", kind, "id", item.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to update visibility.")
			return
		}

		a.listings.Invalidate(r.Context(), kind)
		respondJSON(w, http.StatusOK, item)
	}
}

// findItem parses the {id} URL parameter and loads the item, writing the
// error response itself when the ID is malformed, missing, or of another
// kind. Returns nil when the response has already been written.
func (a *Admin) findItem(w http.ResponseWriter, r *http.Request, kind models.Kind) *models.ContentItem {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item ID.")
		return nil
	}

	item, err := a.items.FindByID(id)
	if err != nil {
		slog.Error("find item failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load item.")
		return nil
	}
	if item == nil || item.Kind != kind {
		respondError(w, http.StatusNotFound, "Item not found.")
		return nil
	}
	return item
}
