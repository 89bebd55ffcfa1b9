package dedup

import (
	"testing"

	"vantala-vaani/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHashIgnoresStepsAndTimestamp(t *testing.T) {
	t.Parallel()
	a := ContentHash("Chicken Curry", "chicken, oil, salt")
	b := ContentHash("Chicken Curry", "chicken, oil, salt")
	assert.Equal(t, a, b)

	// normalization folds case and stray whitespace
	c := ContentHash("  chicken   curry ", "CHICKEN, oil,  salt")
	assert.Equal(t, a, c)

	d := ContentHash("Dosa", "rice batter, oil")
	assert.NotEqual(t, a, d)
}

func TestRecipeIDShortAndStable(t *testing.T) {
	t.Parallel()
	id := RecipeID("Dosa", "rice batter, oil")
	assert.Len(t, id, 12)
	assert.Equal(t, id, RecipeID("dosa", "Rice Batter, Oil"))
}

func TestDeduplicateFirstOccurrenceWins(t *testing.T) {
	t.Parallel()
	records := []common.RawRecipeRecord{
		{Timestamp: "2026-01-01 10:00:00", RecipeNameTelugu: "Chicken Curry", IngredientsTelugu: "chicken, oil, salt", StepsTelugu: "Fry the chicken."},
		{Timestamp: "2026-01-02 11:00:00", RecipeNameTelugu: "Chicken Curry", IngredientsTelugu: "chicken, oil, salt", StepsTelugu: "Different steps entirely."},
		{Timestamp: "2026-01-03 12:00:00", RecipeNameTelugu: "Dosa", IngredientsTelugu: "rice batter, oil"},
	}

	unique, dropped := Deduplicate(records)
	require.Len(t, unique, 2)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "2026-01-01 10:00:00", unique[0].Timestamp, "the first occurrence must survive")
	assert.Equal(t, "Dosa", unique[1].RecipeNameTelugu)
}

func TestDeduplicateAllEmptyRecordsCollapse(t *testing.T) {
	t.Parallel()
	records := []common.RawRecipeRecord{
		{Timestamp: "t1"},
		{Timestamp: "t2"},
		{Timestamp: "t3"},
	}

	unique, dropped := Deduplicate(records)
	assert.Len(t, unique, 1)
	assert.Equal(t, 2, dropped)
}

func TestDeduplicateEmptyInput(t *testing.T) {
	t.Parallel()
	unique, dropped := Deduplicate(nil)
	assert.Empty(t, unique)
	assert.Zero(t, dropped)
}
