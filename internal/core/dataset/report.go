package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"vantala-vaani/internal/pkg/common"
)

// RenderReport builds the human-readable processing report. Histogram
// rows are sorted by label so two runs over the same data produce the
// same document.
func RenderReport(result *Result) string {
	stats := GenerateStatistics(result.QAPairs)

	var b strings.Builder

	fmt.Fprintf(&b, "# Recipe Data Preprocessing Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Total Recipes Processed**: %d\n", len(result.Recipes))
	fmt.Fprintf(&b, "- **Total Q&A Pairs Generated**: %d\n", len(result.QAPairs))
	fmt.Fprintf(&b, "- **Duplicates Removed**: %d\n", result.DuplicateCount)
	fmt.Fprintf(&b, "- **Source File**: %s\n", result.SourcePath)

	b.WriteString("\n## Dataset Statistics\n")

	b.WriteString("\n### Recipe Categories\n")
	writeHistogram(&b, statsCategory(stats))

	b.WriteString("\n### Difficulty Distribution\n")
	writeHistogram(&b, statsDifficulty(stats))

	b.WriteString("\n### Language Distribution\n")
	writeHistogram(&b, statsLanguage(stats))

	if stats != nil {
		b.WriteString("\n### Content Statistics\n")
		fmt.Fprintf(&b, "- **Average Question Length**: %.1f words\n", stats.AvgQuestionLength)
		fmt.Fprintf(&b, "- **Average Answer Length**: %.1f words\n", stats.AvgAnswerLength)
	}

	b.WriteString(`
## Data Quality Notes
- English content has been translated to Telugu where possible
- Duplicate recipes have been removed based on content identity
- Text has been cleaned and normalized
- Measurements and cooking techniques have been preserved
- Category classification applied automatically

## Usage
This dataset is ready for training Telugu recipe chatbot models. The Q&A pairs follow a consistent format suitable for fine-tuning language models.
`)

	return b.String()
}

func statsCategory(stats *common.DatasetStatistics) map[string]int {
	if stats == nil {
		return nil
	}
	return stats.CategoryDistribution
}

func statsDifficulty(stats *common.DatasetStatistics) map[string]int {
	if stats == nil {
		return nil
	}
	return stats.DifficultyDistribution
}

func statsLanguage(stats *common.DatasetStatistics) map[string]int {
	if stats == nil {
		return nil
	}
	return stats.LanguageDistribution
}

func writeHistogram(b *strings.Builder, histogram map[string]int) {
	if len(histogram) == 0 {
		b.WriteString("- none\n")
		return
	}

	labels := make([]string, 0, len(histogram))
	for label := range histogram {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(b, "- **%s**: %d pairs\n", titleCase(label), histogram[label])
	}
}

// titleCase uppercases the first letter of an ASCII label; Telugu
// labels pass through unchanged.
func titleCase(label string) string {
	if label == "" {
		return label
	}
	first := label[0]
	if first >= 'a' && first <= 'z' {
		return string(first-'a'+'A') + label[1:]
	}
	return label
}
