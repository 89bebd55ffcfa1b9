// Package language provides script-based language detection and
// best-effort English-to-Telugu translation with a dictionary fallback.
package language

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"

	"go.uber.org/zap"
)

// Detection labels.
const (
	LangTelugu  = "telugu"
	LangEnglish = "english"
	LangUnknown = "unknown"
)

// Detect classifies text by script: Telugu if any codepoint falls in the
// Telugu Unicode block (U+0C00-U+0C7F), else English if any Latin letter
// is present, else unknown.
func Detect(text string) string {
	if ContainsTelugu(text) {
		return LangTelugu
	}
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return LangEnglish
		}
	}
	return LangUnknown
}

// ContainsTelugu reports whether text has any Telugu-block codepoint.
func ContainsTelugu(text string) bool {
	for _, r := range text {
		if r >= 0x0C00 && r <= 0x0C7F {
			return true
		}
	}
	return false
}

// Classifier resolves Telugu text for recipe fields, translating English
// input through a machine translator when one is available and falling
// back to dictionary substitution otherwise. The first machine failure
// disables the translator for the rest of the run and a single warning
// is logged; the unavailability notice is scoped to this instance, not
// the process.
type Classifier struct {
	config     *config.Config
	translator Translator
	cache      *TranslationCache

	mu          sync.Mutex
	unavailable bool
	noticeShown bool
}

// NewClassifier builds a classifier. The machine translator is wired in
// only when translation is enabled in config; cache may be nil.
func NewClassifier(cfg *config.Config, cache *TranslationCache) *Classifier {
	c := &Classifier{
		config: cfg,
		cache:  cache,
	}
	if cfg.Translator.Enabled {
		c.translator = NewHTTPTranslator(cfg)
	}
	return c
}

// NewClassifierWithTranslator builds a classifier around an explicit
// translator implementation.
func NewClassifierWithTranslator(cfg *config.Config, t Translator, cache *TranslationCache) *Classifier {
	return &Classifier{
		config:     cfg,
		translator: t,
		cache:      cache,
	}
}

// TranslateToTelugu returns Telugu text for the input. Already-Telugu
// input is returned unchanged, so the operation is idempotent. Machine
// translation faults are absorbed; the result is best-effort and may
// still contain untranslated vocabulary.
func (c *Classifier) TranslateToTelugu(ctx context.Context, text string) string {
	if text == "" || strings.TrimSpace(text) == "" {
		return text
	}

	if Detect(text) == LangTelugu {
		return text
	}

	if translated, ok := c.machineTranslate(ctx, text); ok {
		return translated
	}

	if Detect(text) == LangEnglish {
		if translated, ok := DictionaryTranslate(text); ok {
			return translated
		}
	}

	return text
}

func (c *Classifier) machineTranslate(ctx context.Context, text string) (string, bool) {
	c.mu.Lock()
	unavailable := c.unavailable || c.translator == nil
	c.mu.Unlock()
	if unavailable {
		return "", false
	}

	if cached, err := c.cache.Get(ctx, text); err == nil {
		return cached, true
	}

	callCtx := ctx
	if c.config != nil && c.config.Translator.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.config.Translator.Timeout)
		defer cancel()
	}

	start := time.Now()
	translated, err := c.translator.Translate(callCtx, text, "en", "te")
	common.LogTranslation(text, time.Since(start), err)
	if err != nil {
		c.markUnavailable(err)
		return "", false
	}

	if err := c.cache.Set(ctx, text, translated); err != nil && !errors.Is(err, common.ErrCacheDisabled) {
		common.LogWarn("failed to cache translation", zap.Error(err))
	}
	return translated, true
}

// markUnavailable commits to the fallback path for the rest of the run.
// The warning is surfaced once, not per occurrence.
func (c *Classifier) markUnavailable(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unavailable = true
	if !c.noticeShown {
		c.noticeShown = true
		common.LogWarn("machine translation unavailable, using dictionary fallback",
			zap.Error(err),
		)
	}
}
