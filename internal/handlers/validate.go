package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for item and category fields.
const (
	maxTitleLen        = 300
	maxBodyLen         = 100_000
	maxCategoryNameLen = 120
	maxSlugPrefixLen   = 80
)

// slugPrefixPattern is the canonical shape of a category slug prefix:
// lowercase alphanumeric segments joined by single hyphens.
var slugPrefixPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// validateItem checks item form inputs and returns the first error found.
func validateItem(title, categoryName, body string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(categoryName) == "" {
		return "Category is required."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}

// validateCategory checks category form inputs and returns the first error found.
func validateCategory(name, slugPrefix string) string {
	if strings.TrimSpace(name) == "" {
		return "Category name is required."
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return "Category name is too long (max 120 characters)."
	}
	if slugPrefix != "" {
		if len(slugPrefix) > maxSlugPrefixLen {
			return "Slug prefix is too long (max 80 characters)."
		}
		if !slugPrefixPattern.MatchString(slugPrefix) {
			return "Slug prefix must be lowercase alphanumeric segments joined by hyphens."
		}
	}
	return ""
}
