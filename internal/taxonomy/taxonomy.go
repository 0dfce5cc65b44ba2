// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package taxonomy derives URL-safe item identifiers from titles and
// categories, and maps identifiers back to their categories. Every function
// is pure: the category snapshot is passed in explicitly, and resolution
// never touches the network or the database, since it runs on every render
// of a grouped listing.
package taxonomy

import (
	"regexp"
	"strings"

	"localhub/internal/models"
)

// Namespace tags identifiers by content kind so slugs stay partitioned even
// when categories are reused across kinds.
type Namespace string

const (
	NamespacePages   Namespace = "pages"
	NamespaceVendors Namespace = "vendors"
	NamespaceForum   Namespace = "forum"
	NamespaceStore   Namespace = "store"
)

// NamespaceFor returns the identifier namespace for a content kind.
func NamespaceFor(kind models.Kind) Namespace {
	switch kind {
	case models.KindVendor:
		return NamespaceVendors
	case models.KindForum:
		return NamespaceForum
	case models.KindProduct:
		return NamespaceStore
	default:
		return NamespacePages
	}
}

// PlaceholderToken substitutes for a suffix that normalized to nothing
// (punctuation-only title, or a title entirely consumed by prefix
// de-duplication). The system always produces some valid identifier rather
// than rejecting input.
const PlaceholderToken = "untitled"

// Uncategorized is the sentinel category returned when an identifier matches
// no known prefix. Resolution is a best-effort display aid, not a validated
// parse, so unknown identifiers land here instead of raising an error.
var Uncategorized = models.Category{
	Name:       "Uncategorized",
	SlugPrefix: "uncategorized",
}

// CompoundPrefixes is the fixed set of known multi-segment category prefixes.
// Naive single-segment splitting of a hyphenated identifier cannot tell
// "home-services-plumber" (category home-services, item plumber) from
// "home-plumber-services" (category home, item plumber-services); this table
// disambiguates suffix extraction when the owning category is not known.
var CompoundPrefixes = []string{
	"arts-culture",
	"food-dining",
	"health-wellness",
	"home-services",
	"professional-services",
}

// legacyPrefixes maps identifier prefixes created before the current taxonomy
// existed to their display categories. Checked longest-first after the live
// category set fails to match.
var legacyPrefixes = []struct {
	Prefix string
	Name   string
}{
	{"local-business", "Local Businesses"},
	{"community", "Community"},
	{"general", "General"},
	{"misc", "Miscellaneous"},
}

var (
	// nonSlugChars matches anything that isn't a lowercase letter, digit,
	// space, or hyphen.
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Normalize converts free text into a lowercase, hyphen-separated token
// sequence. Example: "Joe's Mowing & Sons!" → "joes-mowing-sons"
func Normalize(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonSlugChars.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Derive computes the canonical identifier for an item as
// <namespace>-<category prefix>-<suffix>.
//
// The suffix comes from the normalized title, with any leading segments that
// duplicate a segment of the category prefix stripped, so editing a
// "Home Services" item titled "Home Plumbing" never yields
// home-services-home-plumbing. When the title yields nothing (punctuation
// only, or entirely consumed by de-duplication), the suffix of existingSlug
// is reused so minor edits keep a human-meaningful identifier; failing that,
// the placeholder token is used. The result is always re-derivable and never
// empty or category-only.
func Derive(ns Namespace, cat models.Category, title, existingSlug string) string {
	suffix := stripPrefixSegments(Normalize(title), cat)
	if suffix == "" && existingSlug != "" {
		suffix = stripPrefixSegments(extractSuffix(ns, cat, existingSlug), cat)
	}
	if suffix == "" {
		suffix = PlaceholderToken
	}
	return string(ns) + "-" + cat.SlugPrefix + "-" + suffix
}

// ResolveCategory maps an identifier back to its category using the supplied
// taxonomy snapshot. Matching is greedy longest-prefix so a short prefix
// ("home") never shadows a longer compound one ("home-services"), and stays
// stable as new compound categories are added. Falls back to the legacy
// prefix table, then to the Uncategorized sentinel. Deterministic and
// side-effect-free.
func ResolveCategory(ns Namespace, slug string, cats []models.Category) models.Category {
	rest := strings.TrimPrefix(slug, string(ns)+"-")

	var best *models.Category
	bestLen := -1
	for i := range cats {
		p := cats[i].SlugPrefix
		if p == "" {
			continue
		}
		if prefixMatches(rest, p) && len(p) > bestLen {
			best = &cats[i]
			bestLen = len(p)
		}
	}
	if best != nil {
		return *best
	}

	for _, legacy := range legacyPrefixes {
		if prefixMatches(rest, legacy.Prefix) {
			return models.Category{Name: legacy.Name, SlugPrefix: legacy.Prefix}
		}
	}

	return Uncategorized
}

// prefixMatches reports whether s is exactly prefix or starts with
// prefix followed by a hyphen. Plain HasPrefix would let "home" match
// "homework-help".
func prefixMatches(s, prefix string) bool {
	return s == prefix || strings.HasPrefix(s, prefix+"-")
}

// stripPrefixSegments drops leading suffix segments that duplicate any
// segment of the category's prefix. The whole prefix segment set is checked,
// not just the first segment, so "Services Home Cleaning" under
// "home-services" reduces to "cleaning".
func stripPrefixSegments(s string, cat models.Category) string {
	if s == "" {
		return ""
	}
	prefixSet := make(map[string]bool)
	for _, seg := range cat.PrefixSegments() {
		prefixSet[seg] = true
	}
	segs := strings.Split(s, "-")
	i := 0
	for i < len(segs) && prefixSet[segs[i]] {
		i++
	}
	return strings.Join(segs[i:], "-")
}

// extractSuffix recovers the suffix of an existing identifier: the portion
// after the namespace tag and the category prefix. When the identifier does
// not carry the given category's prefix (the item changed category), the
// compound prefix table and then single-segment splitting are tried. Returns
// "" when nothing can be parsed.
func extractSuffix(ns Namespace, cat models.Category, slug string) string {
	rest := strings.TrimPrefix(slug, string(ns)+"-")

	if prefixMatches(rest, cat.SlugPrefix) {
		return strings.TrimPrefix(strings.TrimPrefix(rest, cat.SlugPrefix), "-")
	}
	for _, p := range CompoundPrefixes {
		if prefixMatches(rest, p) {
			return strings.TrimPrefix(strings.TrimPrefix(rest, p), "-")
		}
	}
	if _, after, found := strings.Cut(rest, "-"); found {
		return after
	}
	return ""
}
