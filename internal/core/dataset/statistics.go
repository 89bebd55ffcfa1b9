package dataset

import (
	"strings"

	"vantala-vaani/internal/pkg/common"
)

// GenerateStatistics aggregates histograms and average lengths over a
// batch of Q&A pairs. An empty batch yields nil rather than a zeroed
// object: averages over nothing are undefined, not zero.
func GenerateStatistics(pairs []common.QAPair) *common.DatasetStatistics {
	if len(pairs) == 0 {
		return nil
	}

	stats := &common.DatasetStatistics{
		CategoryDistribution:   make(map[string]int),
		DifficultyDistribution: make(map[string]int),
		LanguageDistribution:   make(map[string]int),
	}

	questionWords := 0
	answerWords := 0
	for _, pair := range pairs {
		stats.CategoryDistribution[pair.Category]++
		stats.DifficultyDistribution[pair.Difficulty]++
		stats.LanguageDistribution[pair.Language]++
		questionWords += len(strings.Fields(pair.Question))
		answerWords += len(strings.Fields(pair.Answer))
	}

	stats.AvgQuestionLength = float64(questionWords) / float64(len(pairs))
	stats.AvgAnswerLength = float64(answerWords) / float64(len(pairs))

	return stats
}
