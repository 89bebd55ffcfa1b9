package common

// RawRecipeRecord is one submission row as stored in the recipe CSV.
// Telugu fields may be empty when the submission was translated on the
// collection side; original_* fields may be empty when the source was
// already Telugu.
type RawRecipeRecord struct {
	Timestamp           string `json:"timestamp"`
	RecipeNameTelugu    string `json:"recipe_name_telugu"`
	IngredientsTelugu   string `json:"ingredients_telugu"`
	StepsTelugu         string `json:"steps_telugu"`
	OriginalLanguage    string `json:"original_language"`
	OriginalName        string `json:"original_name"`
	OriginalIngredients string `json:"original_ingredients"`
	OriginalSteps       string `json:"original_steps"`
}

// ProcessedRecipe is a cleaned, deduplicated, annotated recipe produced
// by one pipeline run. ID is stable for identical name+ingredients
// content after normalization.
type ProcessedRecipe struct {
	ID                  string `json:"id"`
	Timestamp           string `json:"timestamp"`
	RecipeNameTelugu    string `json:"recipe_name_telugu"`
	IngredientsTelugu   string `json:"ingredients_telugu"`
	StepsTelugu         string `json:"steps_telugu"`
	OriginalLanguage    string `json:"original_language"`
	OriginalName        string `json:"original_name"`
	OriginalIngredients string `json:"original_ingredients"`
	OriginalSteps       string `json:"original_steps"`
	WordCount           int    `json:"word_count"`
	HasMeasurements     bool   `json:"has_measurements"`
}

// QAMetadata is the per-pair metadata block carried into the training set.
type QAMetadata struct {
	OriginalLanguage string `json:"original_language"`
	WordCount        int    `json:"word_count"`
	HasMeasurements  bool   `json:"has_measurements"`
	Timestamp        string `json:"timestamp"`
}

// QAPair is one (question phrasing, answer) tuple generated from a
// recipe. All pairs of a recipe share the same answer and recipe_id.
type QAPair struct {
	ID          string     `json:"id"`
	RecipeID    string     `json:"recipe_id"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer"`
	RecipeName  string     `json:"recipe_name"`
	Language    string     `json:"language"`
	Category    string     `json:"category"`
	Difficulty  string     `json:"difficulty"`
	CookingTime string     `json:"cooking_time"`
	Metadata    QAMetadata `json:"metadata"`
}

// DatasetStatistics aggregates a batch of Q&A pairs.
type DatasetStatistics struct {
	CategoryDistribution   map[string]int `json:"category_distribution"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	LanguageDistribution   map[string]int `json:"language_distribution"`
	AvgQuestionLength      float64        `json:"avg_question_length"`
	AvgAnswerLength        float64        `json:"avg_answer_length"`
}
