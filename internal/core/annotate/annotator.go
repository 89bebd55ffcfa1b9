// Package annotate attaches category, difficulty, and cooking-time
// labels to processed recipes using keyword heuristics.
package annotate

import (
	"strings"

	"vantala-vaani/internal/pkg/common"
)

// Difficulty labels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Cooking-time labels.
const (
	CookingTimeShort  = "short"
	CookingTimeMedium = "medium"
	CookingTimeLong   = "long"
)

// Categorize maps a recipe name to a category label. Matching is
// case-insensitive substring search over the ordered category table;
// the first matching category wins. Unmatched names fall through to
// miscellaneous.
func Categorize(recipeName string) string {
	name := strings.ToLower(recipeName)

	for _, entry := range categoryTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(name, keyword) {
				return entry.Label
			}
		}
	}

	return CategoryMiscellaneous
}

// EstimateDifficulty scores recipe complexity from ingredient count,
// step count, and technique keywords. Score >=5 is hard, >=3 medium,
// else easy.
func EstimateDifficulty(recipe *common.ProcessedRecipe) string {
	score := 0

	ingredientCount := countItems(recipe.IngredientsTelugu)
	switch {
	case ingredientCount > 10:
		score += 2
	case ingredientCount > 5:
		score++
	}

	stepCount := countSentences(recipe.StepsTelugu)
	switch {
	case stepCount > 8:
		score += 2
	case stepCount > 4:
		score++
	}

	steps := strings.ToLower(recipe.StepsTelugu)
	for _, technique := range complexTechniques {
		if strings.Contains(steps, technique) {
			score++
		}
	}

	switch {
	case score >= 5:
		return DifficultyHard
	case score >= 3:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}

// EstimateCookingTime scans the steps text for duration keywords. Hour
// indicators take priority over minute indicators; with neither the
// recipe is assumed quick.
func EstimateCookingTime(recipe *common.ProcessedRecipe) string {
	steps := strings.ToLower(recipe.StepsTelugu)

	for _, keyword := range hourKeywords {
		if strings.Contains(steps, keyword) {
			return CookingTimeLong
		}
	}
	for _, keyword := range minuteKeywords {
		if strings.Contains(steps, keyword) {
			return CookingTimeMedium
		}
	}
	return CookingTimeShort
}

// countItems counts ingredient entries. Submissions arrive with either
// newline-separated lines or, after the store collapses newlines,
// comma-separated lists; both separators are honored.
func countItems(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	items := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})
	count := 0
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			count++
		}
	}
	return count
}

// countSentences counts non-empty segments split on sentence
// terminators.
func countSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}
