package recipe

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"vantala-vaani/internal/core/dedup"
	"vantala-vaani/internal/core/language"
	"vantala-vaani/internal/pkg/common"
	"vantala-vaani/internal/storage/csvstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Submission length floors, in runes.
const (
	minNameLength        = 2
	minIngredientsLength = 10
	minStepsLength       = 20
)

// Language labels recorded in the store.
const (
	labelTelugu  = "తెలుగు (Telugu)"
	labelEnglish = "English"
)

// SubmissionRequest is one recipe submission.
type SubmissionRequest struct {
	RecipeName  string `json:"recipe_name"`
	Ingredients string `json:"ingredients"`
	Steps       string `json:"steps"`
	Language    string `json:"language"`
}

// SubmissionResponse acknowledges a stored submission.
type SubmissionResponse struct {
	SubmissionID string `json:"submission_id"`
	RecipeID     string `json:"recipe_id"`
	Timestamp    string `json:"timestamp"`
	Language     string `json:"language"`
}

// Handler serves the recipe collection endpoints.
type Handler struct {
	store      *csvstore.Store
	classifier *language.Classifier
}

// NewHandler creates a collection handler.
func NewHandler(store *csvstore.Store, classifier *language.Classifier) *Handler {
	return &Handler{
		store:      store,
		classifier: classifier,
	}
}

// HandleSubmit validates a submission, resolves its Telugu fields, and
// appends it to the store.
func (h *Handler) HandleSubmit(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("Invalid submission body",
			zap.Error(err),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		)
		c.JSON(common.ErrInvalidRequest.Status, common.ErrInvalidRequest.Response("request body must be valid JSON"))
		return
	}

	if err := validateSubmission(&req); err != nil {
		c.JSON(common.ErrInvalidRequest.Status, common.ErrInvalidRequest.Response(err.Error()))
		return
	}

	record := h.buildRecord(c, &req)

	if err := h.store.Append(record); err != nil {
		common.LogError("Failed to append submission",
			zap.Error(err),
			zap.String("recipe_name", req.RecipeName),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		)
		c.JSON(common.ErrStoreWriteFailed.Status, common.ErrStoreWriteFailed.Response(""))
		return
	}

	response := SubmissionResponse{
		SubmissionID: common.GenerateUUID(),
		RecipeID:     dedup.RecipeID(record.RecipeNameTelugu, record.IngredientsTelugu),
		Timestamp:    record.Timestamp,
		Language:     record.OriginalLanguage,
	}

	common.LogInfo("Submission stored",
		zap.String("submission_id", response.SubmissionID),
		zap.String("recipe_id", response.RecipeID),
		zap.String("language", response.Language),
	)

	c.JSON(http.StatusCreated, response)
}

// HandleStats reports store counts and the language split.
func (h *Handler) HandleStats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusOK, &csvstore.StoreStats{
				LanguageCounts: map[string]int{},
			})
			return
		}
		common.LogError("Failed to read store stats", zap.Error(err))
		c.JSON(common.ErrInternalError.Status, common.ErrInternalError.Response("failed to read store"))
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleSearch returns submissions matching the q parameter.
func (h *Handler) HandleSearch(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(common.ErrInvalidRequest.Status, common.ErrInvalidRequest.Response("query parameter q is required"))
		return
	}

	matches, err := h.store.Search(term)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusOK, gin.H{
				"query":   term,
				"count":   0,
				"results": []common.RawRecipeRecord{},
			})
			return
		}
		common.LogError("Search failed", zap.Error(err), zap.String("query", term))
		c.JSON(common.ErrInternalError.Status, common.ErrInternalError.Response("failed to search store"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   term,
		"count":   len(matches),
		"results": matches,
	})
}

// validateSubmission applies the submission length floors. The returned
// ValidationError lists every problem found, not just the first.
func validateSubmission(req *SubmissionRequest) error {
	var problems []string

	if utf8.RuneCountInString(strings.TrimSpace(req.RecipeName)) < minNameLength {
		problems = append(problems, "recipe_name must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Ingredients)) < minIngredientsLength {
		problems = append(problems, "ingredients must be at least 10 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Steps)) < minStepsLength {
		problems = append(problems, "steps must be at least 20 characters")
	}

	switch strings.ToLower(strings.TrimSpace(req.Language)) {
	case "", "telugu", "english":
	default:
		problems = append(problems, "language must be telugu or english")
	}

	if len(problems) == 0 {
		return nil
	}
	return common.NewValidationError(strings.Join(problems, "; "))
}

// buildRecord maps a submission onto a store row. English submissions
// keep the original text and get Telugu fields from the classifier;
// Telugu submissions are stored as-is.
func (h *Handler) buildRecord(c *gin.Context, req *SubmissionRequest) common.RawRecipeRecord {
	record := common.RawRecipeRecord{
		Timestamp: common.SubmissionTimestamp(time.Now()),
	}

	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if lang == "" {
		if language.ContainsTelugu(req.RecipeName + req.Ingredients + req.Steps) {
			lang = "telugu"
		} else {
			lang = "english"
		}
	}

	if lang == "telugu" {
		record.OriginalLanguage = labelTelugu
		record.RecipeNameTelugu = req.RecipeName
		record.IngredientsTelugu = req.Ingredients
		record.StepsTelugu = req.Steps
		return record
	}

	ctx := c.Request.Context()
	record.OriginalLanguage = labelEnglish
	record.OriginalName = req.RecipeName
	record.OriginalIngredients = req.Ingredients
	record.OriginalSteps = req.Steps
	record.RecipeNameTelugu = h.classifier.TranslateToTelugu(ctx, req.RecipeName)
	record.IngredientsTelugu = h.classifier.TranslateToTelugu(ctx, req.Ingredients)
	record.StepsTelugu = h.classifier.TranslateToTelugu(ctx, req.Steps)

	return record
}
