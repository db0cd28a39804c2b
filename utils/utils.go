package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Categories a post can be filed under
var Categories = []string{
	"Electronics", "Clothing", "Jewelry", "Keys", "Documents",
	"Bags", "Books", "Pets", "Vehicles", "Sports Equipment", "Other",
}

// GenerateItemID returns a short shareable item id (8 hex chars of a uuid)
func GenerateItemID() string {
	return uuid.NewString()[:8]
}

// IsValidCategory reports whether the category is one of the known ones
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
