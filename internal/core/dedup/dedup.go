// Package dedup drops repeated recipe submissions by content identity.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"vantala-vaani/internal/core/textnorm"
	"vantala-vaani/internal/pkg/common"
)

// ContentHash is the identity digest for a recipe: sha256 over the
// cleaned and lowercased name and ingredients. Steps and timestamps are
// not part of identity, so resubmissions with edited steps still
// collapse to one record.
func ContentHash(recipeName, ingredients string) string {
	normalizedName := strings.ToLower(textnorm.Clean(recipeName))
	normalizedIngredients := strings.ToLower(textnorm.Clean(ingredients))

	sum := sha256.Sum256([]byte(normalizedName + normalizedIngredients))
	return hex.EncodeToString(sum[:])
}

// RecipeID derives the short stable id used for processed recipes and
// their Q&A pairs.
func RecipeID(recipeName, ingredients string) string {
	return ContentHash(recipeName, ingredients)[:12]
}

// Deduplicate returns the subsequence of records whose content hash has
// not been seen before, preserving input order, plus the number of
// duplicates dropped. First occurrence wins. Records with both fields
// empty all hash alike and collapse to one.
func Deduplicate(records []common.RawRecipeRecord) ([]common.RawRecipeRecord, int) {
	seen := make(map[string]struct{}, len(records))
	unique := make([]common.RawRecipeRecord, 0, len(records))
	duplicates := 0

	for _, record := range records {
		hash := ContentHash(record.RecipeNameTelugu, record.IngredientsTelugu)
		if _, exists := seen[hash]; exists {
			duplicates++
			continue
		}
		seen[hash] = struct{}{}
		unique = append(unique, record)
	}

	return unique, duplicates
}
