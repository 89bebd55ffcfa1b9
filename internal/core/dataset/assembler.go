// Package dataset orchestrates the preprocessing pipeline: load, dedup,
// clean, translate, annotate, expand, aggregate, export.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"vantala-vaani/internal/core/dedup"
	"vantala-vaani/internal/core/language"
	"vantala-vaani/internal/core/qa"
	"vantala-vaani/internal/core/textnorm"
	"vantala-vaani/internal/pkg/common"
	"vantala-vaani/internal/storage/csvstore"

	"go.uber.org/zap"
)

// measurementPattern recognizes quantity-plus-unit fragments in either
// language, the signal behind has_measurements.
var measurementPattern = regexp.MustCompile(`(?i)\d+\s*(కప్పు|టీస్పూన్|గ్రాము|కిలో|లీటర్|cup|tsp|gram|kg|liter)`)

// Result is the output of one pipeline run.
type Result struct {
	Recipes        []common.ProcessedRecipe
	QAPairs        []common.QAPair
	DuplicateCount int
	SourcePath     string
}

// Assembler runs the preprocessing pipeline over a recipe store.
type Assembler struct {
	store      *csvstore.Store
	classifier *language.Classifier
	expander   *qa.Expander
}

// NewAssembler wires the pipeline stages together.
func NewAssembler(store *csvstore.Store, classifier *language.Classifier, expander *qa.Expander) *Assembler {
	return &Assembler{
		store:      store,
		classifier: classifier,
		expander:   expander,
	}
}

// Run executes the full pipeline. A record that fails processing is
// logged and skipped; the batch always continues. A missing input store
// is the only error returned.
func (a *Assembler) Run(ctx context.Context) (*Result, error) {
	common.LogInfo("starting recipe preprocessing pipeline",
		zap.String("input", a.store.Path()),
	)

	records, err := a.store.LoadAll()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", common.ErrInputNotFound, err)
		}
		return nil, err
	}

	unique, duplicates := dedup.Deduplicate(records)
	common.LogInfo("deduplication complete",
		zap.Int("input_records", len(records)),
		zap.Int("unique_records", len(unique)),
		zap.Int("duplicates_removed", duplicates),
	)

	result := &Result{
		Recipes:        make([]common.ProcessedRecipe, 0, len(unique)),
		QAPairs:        make([]common.QAPair, 0, len(unique)*a.expander.TemplateCount()),
		DuplicateCount: duplicates,
		SourcePath:     a.store.Path(),
	}

	for i, record := range unique {
		recipe, err := a.processRecord(ctx, record)
		if err != nil {
			common.LogError("failed to process recipe, skipping",
				zap.Int("index", i),
				zap.String("timestamp", record.Timestamp),
				zap.Error(err),
			)
			continue
		}

		result.Recipes = append(result.Recipes, *recipe)
		result.QAPairs = append(result.QAPairs, a.expander.Expand(recipe)...)

		if (i+1)%10 == 0 {
			common.LogInfo("processing progress",
				zap.Int("processed", i+1),
				zap.Int("total", len(unique)),
			)
		}
	}

	common.LogInfo("processing complete",
		zap.Int("recipes", len(result.Recipes)),
		zap.Int("qa_pairs", len(result.QAPairs)),
		zap.Int("duplicates_removed", result.DuplicateCount),
	)

	return result, nil
}

// processRecord cleans one raw record, fills missing Telugu fields via
// translation, and derives the processed recipe. A panic anywhere in
// the stages is converted to an error so one bad row cannot abort the
// batch.
func (a *Assembler) processRecord(ctx context.Context, record common.RawRecipeRecord) (recipe *common.ProcessedRecipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			recipe = nil
			err = fmt.Errorf("panic while processing record: %v", r)
		}
	}()

	nameTe := textnorm.Clean(record.RecipeNameTelugu)
	ingredientsTe := textnorm.Clean(record.IngredientsTelugu)
	stepsTe := textnorm.Clean(record.StepsTelugu)
	originalName := textnorm.Clean(record.OriginalName)
	originalIngredients := textnorm.Clean(record.OriginalIngredients)
	originalSteps := textnorm.Clean(record.OriginalSteps)

	// resolve missing Telugu fields from the original-language side
	if nameTe == "" && originalName != "" {
		nameTe = a.classifier.TranslateToTelugu(ctx, originalName)
	}
	if ingredientsTe == "" && originalIngredients != "" {
		ingredientsTe = a.classifier.TranslateToTelugu(ctx, originalIngredients)
	}
	if stepsTe == "" && originalSteps != "" {
		stepsTe = a.classifier.TranslateToTelugu(ctx, originalSteps)
	}

	wordCount := len(strings.Fields(nameTe + " " + ingredientsTe + " " + stepsTe))
	hasMeasurements := measurementPattern.MatchString(ingredientsTe + " " + originalIngredients)

	return &common.ProcessedRecipe{
		ID:                  dedup.RecipeID(nameTe, ingredientsTe),
		Timestamp:           record.Timestamp,
		RecipeNameTelugu:    nameTe,
		IngredientsTelugu:   ingredientsTe,
		StepsTelugu:         stepsTe,
		OriginalLanguage:    record.OriginalLanguage,
		OriginalName:        originalName,
		OriginalIngredients: originalIngredients,
		OriginalSteps:       originalSteps,
		WordCount:           wordCount,
		HasMeasurements:     hasMeasurements,
	}, nil
}
