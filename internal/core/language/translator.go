package language

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Translator converts text from a source to a target language. Machine
// implementations are best-effort; callers must be prepared for failure.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// HTTPTranslator calls a LibreTranslate-shaped translation endpoint.
type HTTPTranslator struct {
	config *config.Config
	client *resty.Client
}

// NewHTTPTranslator creates a translator against the configured endpoint.
func NewHTTPTranslator(cfg *config.Config) *HTTPTranslator {
	client := resty.New().
		SetBaseURL(cfg.Translator.Endpoint).
		SetTimeout(cfg.Translator.Timeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPTranslator{
		config: cfg,
		client: client,
	}
}

// Translate sends one translation request. A non-200 response or an
// empty result is reported as an error so the caller can fall back.
func (t *HTTPTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	body := map[string]string{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	}
	if t.config.Translator.APIKey != "" {
		body["api_key"] = t.config.Translator.APIKey
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrTranslationFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", common.ErrTranslationFailed, resp.StatusCode(), resp.String())
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("%w: empty translation in response", common.ErrTranslationFailed)
	}

	return result.TranslatedText, nil
}

// cookingTerm is one entry of the fallback dictionary. Entries are kept
// as an ordered slice so substitution order is deterministic.
type cookingTerm struct {
	English string
	Telugu  string
}

// basicTranslations maps common English cooking vocabulary to Telugu.
var basicTranslations = []cookingTerm{
	{"rice", "అన్నం"},
	{"oil", "నూనె"},
	{"salt", "ఉప్పు"},
	{"water", "నీరు"},
	{"onion", "ఉల్లిపాయ"},
	{"garlic", "వెల్లుల్లి"},
	{"ginger", "అల్లం"},
	{"tomato", "టొమాటో"},
	{"green chili", "పచ్చిమిరపకాయ"},
	{"red chili", "ఎర్రమిరపకాయ"},
	{"turmeric", "పసుపు"},
	{"coriander", "ధనియాలు"},
	{"cumin", "జీలకర్ర"},
	{"mustard seeds", "ఆవాలు"},
	{"curry leaves", "కరివేపాకు"},
	{"coconut", "కొబ్బరి"},
	{"dal", "పప్పు"},
	{"lentils", "పప్పు"},
	{"chicken", "కోడిమాంసం"},
	{"fish", "చేప"},
	{"mutton", "మటన్"},
	{"vegetables", "కూరగాయలు"},
	{"potato", "బంగాళాదుంప"},
	{"carrot", "కేరట్"},
	{"beans", "బీన్స్"},
	{"cabbage", "కాబేజీ"},
}

// DictionaryTranslate substitutes known English cooking terms with their
// Telugu equivalents. The input is lowercased for matching; if no term
// fires the original text is returned unchanged. This is deliberately
// partial: unknown vocabulary keeps its original script.
func DictionaryTranslate(text string) (string, bool) {
	if text == "" {
		return text, false
	}

	lowered := strings.ToLower(text)
	translated := lowered
	for _, term := range basicTranslations {
		translated = strings.ReplaceAll(translated, term.English, term.Telugu)
	}

	if translated != lowered {
		return translated, true
	}
	return text, false
}
