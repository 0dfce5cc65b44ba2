package models

import "testing"

// TestKindValid verifies that Valid accepts exactly the managed kinds.
func TestKindValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "page", kind: KindPage, want: true},
		{name: "vendor", kind: KindVendor, want: true},
		{name: "forum", kind: KindForum, want: true},
		{name: "product", kind: KindProduct, want: true},
		{name: "empty kind", kind: Kind(""), want: false},
		{name: "unknown kind", kind: Kind("event"), want: false},
		{name: "uppercase PAGE", kind: Kind("PAGE"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Valid(); got != tt.want {
				t.Errorf("Kind(%q).Valid() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

// TestKindsCoversAllConstants verifies the display-order list stays in sync
// with the declared constants.
func TestKindsCoversAllConstants(t *testing.T) {
	if len(Kinds) != 4 {
		t.Fatalf("Kinds has %d entries, want 4", len(Kinds))
	}
	for _, k := range Kinds {
		if !k.Valid() {
			t.Errorf("Kinds contains invalid kind %q", k)
		}
	}
}

func TestContentItemHasOrder(t *testing.T) {
	order := 3
	with := &ContentItem{SortOrder: &order}
	without := &ContentItem{}

	if !with.HasOrder() {
		t.Error("item with SortOrder should have an order")
	}
	if without.HasOrder() {
		t.Error("item without SortOrder should not have an order")
	}
}
