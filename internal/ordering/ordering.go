// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ordering maintains the manual sequence of sibling items within a
// category. Moves swap integer order keys between adjacent items, so each
// reorder touches exactly two records regardless of category size. Order keys
// are allowed to be sparse or duplicated at rest; the comparator has a
// deterministic tie-break for any pair never explicitly reordered.
package ordering

import (
	"sort"

	"localhub/internal/models"
)

// Swap holds the two updated records produced by a move. Both must be
// persisted as whole-record updates: the store's update contract is full
// replacement, so every other field is carried along unchanged.
type Swap struct {
	Moved     models.ContentItem
	Displaced models.ContentItem
}

// SortSiblings orders items ascending by order key. Items without an order
// key sink to the end rather than the start, so newly imported, never
// reordered items do not jump ahead of curated ones. Exact ties break by ID
// ascending for determinism.
func SortSiblings(items []models.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}

// Less is the sibling comparator used by SortSiblings.
func Less(a, b models.ContentItem) bool {
	switch {
	case a.SortOrder == nil && b.SortOrder == nil:
		return a.ID.String() < b.ID.String()
	case a.SortOrder == nil:
		return false
	case b.SortOrder == nil:
		return true
	case *a.SortOrder != *b.SortOrder:
		return *a.SortOrder < *b.SortOrder
	default:
		return a.ID.String() < b.ID.String()
	}
}

// MoveUp swaps the item at index with its prior sibling and returns the two
// records to persist. Returns ok=false (no-op) when index is 0 or out of
// range.
//
// Missing order keys resolve to the item's own position in the list. When the
// prior item's resolved key is not strictly below the current one — duplicates
// left behind by earlier writes, or a nil key defaulting below an explicit
// sparse neighbor — the prior item's contribution is forced one below the
// current value so the swap changes relative order instead of being absorbed.
func MoveUp(siblings []models.ContentItem, index int) (Swap, bool) {
	if index <= 0 || index >= len(siblings) {
		return Swap{}, false
	}

	current := siblings[index]
	prior := siblings[index-1]

	curOrder := resolveOrder(current, index)
	priorOrder := resolveOrder(prior, index-1)
	if priorOrder >= curOrder {
		priorOrder = curOrder - 1
	}

	current.SortOrder = &priorOrder
	prior.SortOrder = &curOrder
	return Swap{Moved: current, Displaced: prior}, true
}

// MoveDown is the mirror of MoveUp against the next sibling. The tie-break
// goes the opposite direction: a next key not strictly above the current one
// is forced one above it. Returns ok=false when the item is already last.
func MoveDown(siblings []models.ContentItem, index int) (Swap, bool) {
	if index < 0 || index >= len(siblings)-1 {
		return Swap{}, false
	}

	current := siblings[index]
	next := siblings[index+1]

	curOrder := resolveOrder(current, index)
	nextOrder := resolveOrder(next, index+1)
	if nextOrder <= curOrder {
		nextOrder = curOrder + 1
	}

	current.SortOrder = &nextOrder
	next.SortOrder = &curOrder
	return Swap{Moved: current, Displaced: next}, true
}

// resolveOrder returns the item's order key, defaulting to its position in
// the sibling list when unset.
func resolveOrder(item models.ContentItem, index int) int {
	if item.HasOrder() {
		return *item.SortOrder
	}
	return index
}
