package dataset

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vantala-vaani/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		Recipes: []common.ProcessedRecipe{
			{ID: "abc123def456", RecipeNameTelugu: "చికెన్ కర్రీ", OriginalLanguage: "english"},
		},
		QAPairs: []common.QAPair{
			{
				ID:         "abc123def456_0",
				RecipeID:   "abc123def456",
				Question:   "How do I make Chicken Curry?",
				Answer:     "📝 కావలసిన వస్తువులు:\nchicken, oil, salt",
				RecipeName: "Chicken Curry",
				Language:   "english",
				Category:   "curry",
				Difficulty: "easy",
			},
			{
				ID:         "abc123def456_1",
				RecipeID:   "abc123def456",
				Question:   "చికెన్ కర్రీ ఎలా చేయాలి?",
				Answer:     "📝 కావలసిన వస్తువులు:\nchicken, oil, salt",
				RecipeName: "Chicken Curry",
				Language:   "telugu",
				Category:   "curry",
				Difficulty: "easy",
			},
		},
		DuplicateCount: 1,
		SourcePath:     "data/recipes.csv",
	}
}

func TestExportStandard(t *testing.T) {
	t.Parallel()
	e := NewExporter(t.TempDir())

	files, err := e.Export(sampleResult(), FormatStandard)
	require.NoError(t, err)
	require.Len(t, files, 4)

	for _, kind := range []string{"recipes", "qa_pairs", "training_dataset", "report"} {
		path, ok := files[kind]
		require.True(t, ok, "missing artifact %q", kind)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	var dataset TrainingDataset
	raw, err := os.ReadFile(files["training_dataset"])
	require.NoError(t, err)
	require.NoError(t, common.ParseJSON(string(raw), &dataset))

	assert.Equal(t, "Telugu Recipe Q&A Dataset", dataset.DatasetInfo.Name)
	assert.Equal(t, 1, dataset.DatasetInfo.TotalRecipes)
	assert.Equal(t, 2, dataset.DatasetInfo.TotalQAPairs)
	assert.Equal(t, 1, dataset.DatasetInfo.DuplicatesRemoved)
	require.NotNil(t, dataset.Statistics)
	assert.Equal(t, 2, dataset.Statistics.CategoryDistribution["curry"])
}

func TestExportEmptyFormatDefaultsToStandard(t *testing.T) {
	t.Parallel()
	e := NewExporter(t.TempDir())

	files, err := e.Export(sampleResult(), "")
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestExportInstruction(t *testing.T) {
	t.Parallel()
	e := NewExporter(t.TempDir())

	files, err := e.Export(sampleResult(), FormatInstruction)
	require.NoError(t, err)
	require.Contains(t, files, "instruction_dataset")
	assert.True(t, strings.HasSuffix(files["instruction_dataset"], ".jsonl"))

	lines := readLines(t, files["instruction_dataset"])
	require.Len(t, lines, 2)

	var record instructionRecord
	require.NoError(t, common.ParseJSON(lines[0], &record))
	assert.Equal(t, "Answer the cooking question in Telugu", record.Instruction)
	assert.Equal(t, "How do I make Chicken Curry?", record.Input)
	assert.Equal(t, "curry", record.Category)
}

func TestExportConversational(t *testing.T) {
	t.Parallel()
	e := NewExporter(t.TempDir())

	files, err := e.Export(sampleResult(), FormatConversational)
	require.NoError(t, err)
	require.Contains(t, files, "conversational_dataset")

	lines := readLines(t, files["conversational_dataset"])
	require.Len(t, lines, 2)

	var record chatRecord
	require.NoError(t, common.ParseJSON(lines[1], &record))
	require.Len(t, record.Messages, 2)
	assert.Equal(t, "user", record.Messages[0].Role)
	assert.Equal(t, "చికెన్ కర్రీ ఎలా చేయాలి?", record.Messages[0].Content)
	assert.Equal(t, "assistant", record.Messages[1].Role)
}

func TestExportUnknownFormat(t *testing.T) {
	t.Parallel()
	e := NewExporter(t.TempDir())

	_, err := e.Export(sampleResult(), "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestExportUnwritableOutputDir(t *testing.T) {
	t.Parallel()

	// parent is a regular file, so the output dir cannot be created
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	e := NewExporter(filepath.Join(blocker, "out"))

	_, err := e.Export(sampleResult(), FormatStandard)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExportFailed)
}

func TestGenerateStatistics(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GenerateStatistics(nil))
	assert.Nil(t, GenerateStatistics([]common.QAPair{}))

	stats := GenerateStatistics(sampleResult().QAPairs)
	require.NotNil(t, stats)
	assert.Equal(t, map[string]int{"curry": 2}, stats.CategoryDistribution)
	assert.Equal(t, map[string]int{"easy": 2}, stats.DifficultyDistribution)
	assert.Equal(t, 1, stats.LanguageDistribution["telugu"])
	assert.Equal(t, 1, stats.LanguageDistribution["english"])
	assert.InDelta(t, 5.0, stats.AvgQuestionLength, 0.01)
	assert.Greater(t, stats.AvgAnswerLength, 0.0)
}

func TestRenderReport(t *testing.T) {
	t.Parallel()

	report := RenderReport(sampleResult())
	assert.Contains(t, report, "# Recipe Data Preprocessing Report")
	assert.Contains(t, report, "- **Curry**: 2 pairs")
	assert.Contains(t, report, "- **Duplicates Removed**: 1")
	assert.Contains(t, report, "- **Source File**: data/recipes.csv")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			lines = append(lines, scanner.Text())
		}
	}
	require.NoError(t, scanner.Err())
	return lines
}
