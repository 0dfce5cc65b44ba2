// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"localhub/internal/models"
	"localhub/internal/taxonomy"
)

// categoryRequest is the JSON payload for creating or updating a category.
// When SlugPrefix is empty on create, it is derived from the name.
type categoryRequest struct {
	Name       string `json:"name"`
	SlugPrefix string `json:"slug_prefix"`
	SortOrder  int    `json:"sort_order"`
}

// CategoriesList returns a kind's taxonomy with per-category item counts.
func (a *Admin) CategoriesList(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := a.categories.ListByKind(kind)
		if err != nil {
			slog.Error("list categories failed", "kind", kind, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to list categories.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"categories": cats})
	}
}

// CategoryCreate adds a taxonomy entry for a kind.
func (a *Admin) CategoryCreate(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		if msg := validateCategory(req.Name, req.SlugPrefix); msg != "" {
			respondError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		prefix := req.SlugPrefix
		if prefix == "" {
			prefix = taxonomy.Normalize(req.Name)
		}
		if prefix == "" {
			respondError(w, http.StatusUnprocessableEntity, "Category name yields no usable slug prefix.")
			return
		}

		created, err := a.categories.Create(&models.Category{
			Kind:       kind,
			Name:       req.Name,
			SlugPrefix: prefix,
			SortOrder:  req.SortOrder,
		})
		if err != nil {
			slog.Error("create category failed", "kind", kind, "error", err)
			respondError(w, http.StatusConflict, "Failed to create. The name or prefix may already exist.")
			return
		}

		a.listings.InvalidateAll(r.Context())
		respondJSON(w, http.StatusCreated, created)
	}
}

// CategoryUpdate edits a taxonomy entry. Changing the slug prefix is refused
// while items still reference the category: every dependent identifier embeds
// the prefix, so it must stay stable until those slugs are migrated. Renames
// are safe and carry dependent items' category_name along.
func (a *Admin) CategoryUpdate(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing := a.findCategory(w, r, kind)
		if existing == nil {
			return
		}

		var req categoryRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		if msg := validateCategory(req.Name, req.SlugPrefix); msg != "" {
			respondError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		prefix := req.SlugPrefix
		if prefix == "" {
			prefix = existing.SlugPrefix
		}
		if prefix != existing.SlugPrefix {
			count, err := a.categories.ItemCountByName(kind, existing.Name)
			if err != nil {
				slog.Error("count category items failed", "kind", kind, "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to check category usage.")
				return
			}
			if count > 0 {
				respondError(w, http.StatusConflict,
					"Slug prefix is referenced by existing items; migrate their identifiers first.")
				return
			}
		}

		updated := *existing
		updated.Name = req.Name
		updated.SlugPrefix = prefix
		updated.SortOrder = req.SortOrder

		var err error
		if updated.Name != existing.Name {
			err = a.categories.UpdateWithRename(&updated, existing.Name)
		} else {
			err = a.categories.Update(&updated)
		}
		if err != nil {
			slog.Error("update category failed", "kind", kind, "id", updated.ID, "error", err)
			respondError(w, http.StatusConflict, "Failed to update. The name or prefix may already exist.")
			return
		}

		a.listings.InvalidateAll(r.Context())
		respondJSON(w, http.StatusOK, updated)
	}
}

// CategoryDelete removes a taxonomy entry. Items keep their category name and
// fall back to legacy or Uncategorized resolution in public listings.
func (a *Admin) CategoryDelete(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := a.findCategory(w, r, kind)
		if cat == nil {
			return
		}

		if err := a.categories.Delete(cat.ID); err != nil {
			slog.Error("delete category failed", "kind", kind, "id", cat.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete category.")
			return
		}

		a.listings.InvalidateAll(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

// findCategory parses the {categoryID} URL parameter and loads the category,
// writing the error response itself on failure.
func (a *Admin) findCategory(w http.ResponseWriter, r *http.Request, kind models.Kind) *models.Category {
	id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID.")
		return nil
	}

	cat, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load category.")
		return nil
	}
	if cat == nil || cat.Kind != kind {
		respondError(w, http.StatusNotFound, "Category not found.")
		return nil
	}
	return cat
}
