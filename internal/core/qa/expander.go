// Package qa fans each processed recipe out into multiple question
// phrasings sharing one composed answer, the unit consumed by model
// fine-tuning.
package qa

import (
	"fmt"
	"strings"

	"vantala-vaani/internal/core/annotate"
	"vantala-vaani/internal/core/language"
	"vantala-vaani/internal/pkg/common"
)

// Expander generates Q&A pairs from processed recipes.
type Expander struct {
	templates []string
}

// NewExpander creates an expander with the default template list.
func NewExpander() *Expander {
	return &Expander{templates: questionTemplates}
}

// NewExpanderWithTemplates creates an expander with a custom template
// list; templates use one %s placeholder for the recipe name.
func NewExpanderWithTemplates(templates []string) *Expander {
	return &Expander{templates: templates}
}

// TemplateCount reports the number of configured question templates.
func (e *Expander) TemplateCount() int {
	return len(e.templates)
}

// Expand emits one QAPair per configured template for the recipe. A
// recipe without a resolvable Telugu name cannot be questioned about and
// yields no pairs. All pairs share the recipe id and the same composed
// answer; sequence numbers are 0-based in emission order.
func (e *Expander) Expand(recipe *common.ProcessedRecipe) []common.QAPair {
	if recipe.RecipeNameTelugu == "" {
		return nil
	}

	answer := composeAnswer(recipe)
	category := annotate.Categorize(recipe.RecipeNameTelugu)
	difficulty := annotate.EstimateDifficulty(recipe)
	cookingTime := annotate.EstimateCookingTime(recipe)

	pairs := make([]common.QAPair, 0, len(e.templates))
	for _, template := range e.templates {
		question := fmt.Sprintf(template, recipe.RecipeNameTelugu)

		pairs = append(pairs, common.QAPair{
			ID:          fmt.Sprintf("%s_%d", recipe.ID, len(pairs)),
			RecipeID:    recipe.ID,
			Question:    question,
			Answer:      answer,
			RecipeName:  recipe.RecipeNameTelugu,
			Language:    questionLanguage(question),
			Category:    category,
			Difficulty:  difficulty,
			CookingTime: cookingTime,
			Metadata: common.QAMetadata{
				OriginalLanguage: recipe.OriginalLanguage,
				WordCount:        recipe.WordCount,
				HasMeasurements:  recipe.HasMeasurements,
				Timestamp:        recipe.Timestamp,
			},
		})
	}

	return pairs
}

// composeAnswer builds the shared answer body: ingredients section,
// steps section, and a measurements tip, in that order, joined by blank
// lines. Sections with no content are omitted entirely.
func composeAnswer(recipe *common.ProcessedRecipe) string {
	var parts []string

	if recipe.IngredientsTelugu != "" {
		parts = append(parts, ingredientsHeader+"\n"+recipe.IngredientsTelugu)
	}
	if recipe.StepsTelugu != "" {
		parts = append(parts, stepsHeader+"\n"+recipe.StepsTelugu)
	}
	if recipe.HasMeasurements {
		parts = append(parts, measurementsTip)
	}

	return strings.Join(parts, "\n\n")
}

// questionLanguage sniffs the rendered question for Telugu script. The
// rule is literal: an English template holding a Telugu recipe name is
// tagged telugu. Tagging templates at authoring time would diverge from
// the shipped datasets.
func questionLanguage(question string) string {
	if language.ContainsTelugu(question) {
		return language.LangTelugu
	}
	return language.LangEnglish
}
