package language

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vantala-vaani/internal/infrastructure/config"
	"vantala-vaani/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubTranslator struct {
	result string
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Translator: config.TranslatorConfig{
			Enabled: true,
			Timeout: time.Second,
		},
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"telugu text", "ఇది తెలుగు వచనం", LangTelugu},
		{"english text", "Chicken Curry", LangEnglish},
		{"empty", "", LangUnknown},
		{"whitespace only", "   \t", LangUnknown},
		{"digits and punctuation", "123 - 456!", LangUnknown},
		{"mixed script prefers telugu", "dosa దోసె", LangTelugu},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Detect(tt.in))
		})
	}
}

func TestDictionaryTranslate(t *testing.T) {
	t.Parallel()

	out, ok := DictionaryTranslate("Rice with Oil and Salt")
	require.True(t, ok)
	assert.Contains(t, out, "అన్నం")
	assert.Contains(t, out, "నూనె")
	assert.Contains(t, out, "ఉప్పు")

	// no known terms: original text back, not the lowercased copy
	out, ok = DictionaryTranslate("Exotic Quinoa Bowl")
	assert.False(t, ok)
	assert.Equal(t, "Exotic Quinoa Bowl", out)

	out, ok = DictionaryTranslate("")
	assert.False(t, ok)
	assert.Equal(t, "", out)
}

func TestTranslateToTeluguShortCircuits(t *testing.T) {
	t.Parallel()
	stub := &stubTranslator{result: "should not be used"}
	c := NewClassifierWithTranslator(testConfig(), stub, nil)

	assert.Equal(t, "", c.TranslateToTelugu(context.Background(), ""))
	assert.Equal(t, "పులిహోర", c.TranslateToTelugu(context.Background(), "పులిహోర"))
	assert.Zero(t, stub.calls, "telugu and empty input must never reach the translator")
}

func TestTranslateToTeluguMachinePath(t *testing.T) {
	t.Parallel()
	stub := &stubTranslator{result: "కోడి కూర"}
	c := NewClassifierWithTranslator(testConfig(), stub, nil)

	got := c.TranslateToTelugu(context.Background(), "Chicken Curry")
	assert.Equal(t, "కోడి కూర", got)
	assert.Equal(t, 1, stub.calls)
}

func TestTranslateToTeluguFallbackOnFailure(t *testing.T) {
	t.Parallel()
	stub := &stubTranslator{err: errors.New("service down")}
	c := NewClassifierWithTranslator(testConfig(), stub, nil)

	got := c.TranslateToTelugu(context.Background(), "Rice and salt curry")
	assert.Contains(t, got, "అన్నం")
	assert.Contains(t, got, "ఉప్పు")

	// first failure commits to the fallback, no retry on later calls
	_ = c.TranslateToTelugu(context.Background(), "more rice")
	assert.Equal(t, 1, stub.calls)
}

// Swaps the package logger, so this test must stay sequential.
func TestTranslateToTeluguWarnsOnceOnFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := common.Logger
	common.Logger = zap.New(core)
	defer func() { common.Logger = prev }()

	stub := &stubTranslator{err: errors.New("service down")}
	c := NewClassifierWithTranslator(testConfig(), stub, nil)

	ctx := context.Background()
	for _, in := range []string{"rice curry", "fish fry", "chicken soup"} {
		_ = c.TranslateToTelugu(ctx, in)
	}

	warned := logs.FilterMessage("machine translation unavailable, using dictionary fallback")
	assert.Equal(t, 1, warned.Len(), "unavailability must be logged once per run, not per record")
	assert.Equal(t, 1, stub.calls)
}

func TestTranslateToTeluguIdempotentWithFallback(t *testing.T) {
	t.Parallel()
	c := NewClassifierWithTranslator(testConfig(), &stubTranslator{err: errors.New("down")}, nil)

	ctx := context.Background()
	inputs := []string{"rice and oil", "Chicken Curry", "Exotic Quinoa Bowl"}
	for _, in := range inputs {
		once := c.TranslateToTelugu(ctx, in)
		assert.Equal(t, once, c.TranslateToTelugu(ctx, once), "input %q", in)
	}
}

func TestTranslateToTeluguNoTranslator(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Translator.Enabled = false
	c := NewClassifier(cfg, nil)

	got := c.TranslateToTelugu(context.Background(), "fish fry")
	assert.Contains(t, got, "చేప")
}

func TestTranslationCacheMemoizes(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Cache = config.CacheConfig{
		Enabled:         true,
		MaxSize:         10,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	}
	cache := NewTranslationCache(cfg)
	require.NotNil(t, cache)
	defer cache.Close()

	stub := &stubTranslator{result: "దోసె"}
	c := NewClassifierWithTranslator(cfg, stub, cache)

	ctx := context.Background()
	first := c.TranslateToTelugu(ctx, "dosa batter")
	second := c.TranslateToTelugu(ctx, "dosa batter")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.calls, "second call must come from cache")
}

func TestDictionaryTranslateLowercasesOnMatch(t *testing.T) {
	t.Parallel()
	out, ok := DictionaryTranslate("RICE Pudding")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(out, "అన్నం"))
	assert.Contains(t, out, "pudding")
}
