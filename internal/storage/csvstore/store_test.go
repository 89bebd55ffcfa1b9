package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vantala-vaani/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "recipes.csv"))
}

func sampleRecord() common.RawRecipeRecord {
	return common.RawRecipeRecord{
		Timestamp:         "2026-05-01 09:30:00",
		RecipeNameTelugu:  "పులిహోర",
		IngredientsTelugu: "అన్నం, చింతపండు, నూనె",
		StepsTelugu:       "అన్నం ఉడికించండి. పులుసు కలపండి.",
		OriginalLanguage:  "తెలుగు (Telugu)",
	}
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	require.NoError(t, store.Append(sampleRecord()))
	require.NoError(t, store.Append(sampleRecord()))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Timestamp"`, strings.Split(lines[0], ",")[0])
	assert.Equal(t, 1, strings.Count(string(data), `"Timestamp"`), "header must not repeat")
}

func TestAppendQuotesEveryFieldAndCollapsesNewlines(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	record := sampleRecord()
	record.StepsTelugu = "step one\nstep two\r\nstep three"
	record.OriginalIngredients = `said "two cups", not one`
	require.NoError(t, store.Append(record))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, `"step one step two step three"`)
	assert.Contains(t, content, `"said ""two cups"", not one"`)
	assert.NotContains(t, content, "step one\nstep two")
}

func TestLoadAllRoundTrip(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	first := sampleRecord()
	second := common.RawRecipeRecord{
		Timestamp:           "2026-05-02 10:00:00",
		RecipeNameTelugu:    "",
		IngredientsTelugu:   "",
		StepsTelugu:         "",
		OriginalLanguage:    "English",
		OriginalName:        "Chicken Curry",
		OriginalIngredients: "chicken, oil, salt",
		OriginalSteps:       "Fry the chicken. Serve.",
	}
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.RecipeNameTelugu, records[0].RecipeNameTelugu)
	assert.Equal(t, "Chicken Curry", records[1].OriginalName)
}

func TestLoadAllToleratesEmbeddedNewlines(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	// rows written by other tooling may keep newlines inside quotes
	raw := `"Timestamp","Recipe Name (Telugu)","Ingredients (Telugu)","Steps (Telugu)","Original Language","Original Recipe Name","Original Ingredients","Original Steps"
"t1","Dosa","rice batter
oil","spread and fry","English","Dosa","rice batter, oil","spread and fry"
`
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0644))

	records, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].IngredientsTelugu, "rice batter")
	assert.Contains(t, records[0].IngredientsTelugu, "\n")
}

func TestLoadAllMissingFile(t *testing.T) {
	t.Parallel()
	store := NewStore(filepath.Join(t.TempDir(), "missing.csv"))

	_, err := store.LoadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStats(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	require.NoError(t, store.Append(sampleRecord()))
	english := sampleRecord()
	english.Timestamp = "2026-05-03 08:00:00"
	english.OriginalLanguage = "English"
	require.NoError(t, store.Append(english))

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRecipes)
	assert.Equal(t, 1, stats.TeluguRecipes)
	assert.Equal(t, 1, stats.EnglishRecipes)
	assert.Equal(t, "2026-05-01 09:30:00", stats.EarliestRecipe)
	assert.Equal(t, "2026-05-03 08:00:00", stats.LatestRecipe)
}

func TestSearch(t *testing.T) {
	t.Parallel()
	store := tempStore(t)

	require.NoError(t, store.Append(sampleRecord()))
	other := common.RawRecipeRecord{
		Timestamp:           "2026-05-02 10:00:00",
		OriginalLanguage:    "English",
		OriginalName:        "Chicken Curry",
		OriginalIngredients: "chicken, oil, salt",
	}
	require.NoError(t, store.Append(other))

	matches, err := store.Search("CHICKEN")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Chicken Curry", matches[0].OriginalName)

	matches, err = store.Search("పులిహోర")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = store.Search("nothing-here")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
