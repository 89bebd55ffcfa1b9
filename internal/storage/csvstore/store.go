// Package csvstore persists recipe submissions in an append-only CSV
// file and reads them back for the preprocessing pipeline.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vantala-vaani/internal/pkg/common"

	"go.uber.org/zap"
)

// Column headers, in storage order.
var headers = []string{
	"Timestamp",
	"Recipe Name (Telugu)",
	"Ingredients (Telugu)",
	"Steps (Telugu)",
	"Original Language",
	"Original Recipe Name",
	"Original Ingredients",
	"Original Steps",
}

// Store is an append-only CSV recipe store.
type Store struct {
	path string
}

// NewStore creates a store over the given CSV path. The file is created
// lazily on first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the underlying file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes one submission row. The header row is emitted when the
// file does not exist yet. Every field is quote-enclosed and in-field
// newlines are collapsed to spaces so downstream line-oriented tooling
// stays usable.
func (s *Store) Append(record common.RawRecipeRecord) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open recipe store: %w", err)
	}
	defer file.Close()

	if writeHeader {
		if err := writeQuotedRow(file, headers); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := recordToRow(record)
	for i, field := range row {
		row[i] = collapseNewlines(field)
	}
	if err := writeQuotedRow(file, row); err != nil {
		return fmt.Errorf("failed to append recipe: %w", err)
	}

	common.LogInfo("recipe appended to store",
		zap.String("path", s.path),
		zap.String("timestamp", record.Timestamp),
	)

	return nil
}

// LoadAll reads every submission row in storage order. Rows written by
// other tooling with embedded newlines inside quoted fields are
// tolerated. A missing file is reported to the caller; it is not fatal
// to the process.
func (s *Store) LoadAll() ([]common.RawRecipeRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("recipe store %s: %w", s.path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to open recipe store: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []common.RawRecipeRecord
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe store: %w", err)
		}

		if first {
			first = false
			if len(row) > 0 && row[0] == headers[0] {
				continue
			}
		}

		records = append(records, rowToRecord(row))
	}

	common.LogInfo("loaded recipes from store",
		zap.String("path", s.path),
		zap.Int("count", len(records)),
	)

	return records, nil
}

// StoreStats summarizes the raw store without running the pipeline.
type StoreStats struct {
	TotalRecipes   int            `json:"total_recipes"`
	TeluguRecipes  int            `json:"telugu_recipes"`
	EnglishRecipes int            `json:"english_recipes"`
	EarliestRecipe string         `json:"earliest_recipe,omitempty"`
	LatestRecipe   string         `json:"latest_recipe,omitempty"`
	LanguageCounts map[string]int `json:"language_counts"`
}

// Stats computes summary counts over the stored submissions.
func (s *Store) Stats() (*StoreStats, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	stats := &StoreStats{
		TotalRecipes:   len(records),
		LanguageCounts: make(map[string]int),
	}

	for _, record := range records {
		stats.LanguageCounts[record.OriginalLanguage]++
		switch record.OriginalLanguage {
		case "తెలుగు (Telugu)", "Telugu":
			stats.TeluguRecipes++
		case "English":
			stats.EnglishRecipes++
		}
		if stats.EarliestRecipe == "" || record.Timestamp < stats.EarliestRecipe {
			stats.EarliestRecipe = record.Timestamp
		}
		if record.Timestamp > stats.LatestRecipe {
			stats.LatestRecipe = record.Timestamp
		}
	}

	return stats, nil
}

// Search returns records whose name or ingredients contain term,
// case-insensitively, in either language.
func (s *Store) Search(term string) ([]common.RawRecipeRecord, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var matches []common.RawRecipeRecord
	for _, record := range records {
		haystacks := []string{
			record.RecipeNameTelugu,
			record.OriginalName,
			record.IngredientsTelugu,
			record.OriginalIngredients,
		}
		for _, haystack := range haystacks {
			if strings.Contains(strings.ToLower(haystack), needle) {
				matches = append(matches, record)
				break
			}
		}
	}

	return matches, nil
}

func recordToRow(record common.RawRecipeRecord) []string {
	return []string{
		record.Timestamp,
		record.RecipeNameTelugu,
		record.IngredientsTelugu,
		record.StepsTelugu,
		record.OriginalLanguage,
		record.OriginalName,
		record.OriginalIngredients,
		record.OriginalSteps,
	}
}

func rowToRecord(row []string) common.RawRecipeRecord {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return common.RawRecipeRecord{
		Timestamp:           get(0),
		RecipeNameTelugu:    get(1),
		IngredientsTelugu:   get(2),
		StepsTelugu:         get(3),
		OriginalLanguage:    get(4),
		OriginalName:        get(5),
		OriginalIngredients: get(6),
		OriginalSteps:       get(7),
	}
}

// writeQuotedRow writes a CSV row with every field quote-enclosed, which
// encoding/csv does not do on its own.
func writeQuotedRow(w io.Writer, row []string) error {
	quoted := make([]string, len(row))
	for i, field := range row {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}

// collapseNewlines replaces in-field line breaks with spaces and
// squeezes the resulting runs.
func collapseNewlines(field string) string {
	field = strings.ReplaceAll(field, "\r", " ")
	field = strings.ReplaceAll(field, "\n", " ")
	return strings.Join(strings.Fields(field), " ")
}
