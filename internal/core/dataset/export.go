package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vantala-vaani/internal/pkg/common"

	"go.uber.org/zap"
)

// Export formats.
const (
	FormatStandard       = "standard"
	FormatInstruction    = "instruction"
	FormatConversational = "conversational"
)

// DatasetInfo describes one exported training dataset.
type DatasetInfo struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	Created           string   `json:"created"`
	TotalRecipes      int      `json:"total_recipes"`
	TotalQAPairs      int      `json:"total_qa_pairs"`
	DuplicatesRemoved int      `json:"duplicates_removed"`
	Languages         []string `json:"languages"`
}

// TrainingDataset is the combined standard-format export artifact.
type TrainingDataset struct {
	DatasetInfo DatasetInfo               `json:"dataset_info"`
	Recipes     []common.ProcessedRecipe  `json:"recipes"`
	QAPairs     []common.QAPair           `json:"qa_pairs"`
	Statistics  *common.DatasetStatistics `json:"statistics"`
}

// instructionRecord is the flat per-pair JSONL shape for generic
// instruction tuning.
type instructionRecord struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Language    string `json:"language"`
}

// chatMessage and chatRecord form the two-turn conversational JSONL
// shape.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRecord struct {
	Messages []chatMessage `json:"messages"`
}

// Exporter writes pipeline results as timestamped artifacts.
type Exporter struct {
	OutputDir string
}

// NewExporter creates an exporter targeting dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{OutputDir: dir}
}

// Export writes the artifacts for the chosen format and returns a map
// of artifact kind to file path. Partial artifacts already written stay
// on disk when a later write fails; there is no rollback across files.
func (e *Exporter) Export(result *Result, format string) (map[string]string, error) {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output directory: %w", common.ErrExportFailed, err)
	}

	timestamp := time.Now().Format("20060102_150405")

	var files map[string]string
	var err error
	switch format {
	case FormatInstruction:
		files, err = e.exportInstruction(result, timestamp)
	case FormatConversational:
		files, err = e.exportConversational(result, timestamp)
	case FormatStandard, "":
		files, err = e.exportStandard(result, timestamp)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	common.LogInfo("export complete",
		zap.String("format", format),
		zap.String("output_dir", e.OutputDir),
		zap.Int("artifacts", len(files)),
	)

	return files, nil
}

// exportStandard writes the four standard artifacts: recipes JSON, Q&A
// pairs JSON, the combined training dataset, and the markdown report.
func (e *Exporter) exportStandard(result *Result, timestamp string) (map[string]string, error) {
	files := make(map[string]string)

	recipesFile := filepath.Join(e.OutputDir, fmt.Sprintf("processed_recipes_%s.json", timestamp))
	if err := e.writeJSON(recipesFile, result.Recipes); err != nil {
		return nil, err
	}
	files["recipes"] = recipesFile

	qaFile := filepath.Join(e.OutputDir, fmt.Sprintf("recipe_qa_pairs_%s.json", timestamp))
	if err := e.writeJSON(qaFile, result.QAPairs); err != nil {
		return nil, err
	}
	files["qa_pairs"] = qaFile

	dataset := TrainingDataset{
		DatasetInfo: DatasetInfo{
			Name:              "Telugu Recipe Q&A Dataset",
			Version:           "1.0",
			Created:           time.Now().Format(time.RFC3339),
			TotalRecipes:      len(result.Recipes),
			TotalQAPairs:      len(result.QAPairs),
			DuplicatesRemoved: result.DuplicateCount,
			Languages:         []string{"telugu", "english"},
		},
		Recipes:    result.Recipes,
		QAPairs:    result.QAPairs,
		Statistics: GenerateStatistics(result.QAPairs),
	}
	trainingFile := filepath.Join(e.OutputDir, fmt.Sprintf("training_dataset_%s.json", timestamp))
	if err := e.writeJSON(trainingFile, dataset); err != nil {
		return nil, err
	}
	files["training_dataset"] = trainingFile

	reportFile := filepath.Join(e.OutputDir, fmt.Sprintf("processing_report_%s.md", timestamp))
	if err := os.WriteFile(reportFile, []byte(RenderReport(result)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	files["report"] = reportFile

	return files, nil
}

// exportInstruction writes one instruction/output record per Q&A pair
// as line-delimited JSON.
func (e *Exporter) exportInstruction(result *Result, timestamp string) (map[string]string, error) {
	path := filepath.Join(e.OutputDir, fmt.Sprintf("recipe_dataset_instruct_%s.jsonl", timestamp))

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruction export: %w", err)
	}
	defer file.Close()

	for _, pair := range result.QAPairs {
		record := instructionRecord{
			Instruction: "Answer the cooking question in Telugu",
			Input:       pair.Question,
			Output:      pair.Answer,
			Category:    pair.Category,
			Difficulty:  pair.Difficulty,
			Language:    pair.Language,
		}
		if err := common.EncodeJSONLine(file, record); err != nil {
			return nil, fmt.Errorf("failed to write instruction record: %w", err)
		}
	}

	return map[string]string{"instruction_dataset": path}, nil
}

// exportConversational writes one two-turn message exchange per Q&A
// pair as line-delimited JSON.
func (e *Exporter) exportConversational(result *Result, timestamp string) (map[string]string, error) {
	path := filepath.Join(e.OutputDir, fmt.Sprintf("recipe_dataset_chat_%s.jsonl", timestamp))

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversational export: %w", err)
	}
	defer file.Close()

	for _, pair := range result.QAPairs {
		record := chatRecord{
			Messages: []chatMessage{
				{Role: "user", Content: pair.Question},
				{Role: "assistant", Content: pair.Answer},
			},
		}
		if err := common.EncodeJSONLine(file, record); err != nil {
			return nil, fmt.Errorf("failed to write conversational record: %w", err)
		}
	}

	return map[string]string{"conversational_dataset": path}, nil
}

func (e *Exporter) writeJSON(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if err := common.EncodeJSONIndent(file, v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}
