package handler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pricofy/comprehend-go/internal/config"
	"github.com/pricofy/comprehend-go/internal/domain"
	"github.com/pricofy/comprehend-go/model"
)

// echoRunner tags every document with the analysis that ran over it.
type echoRunner struct {
	mu       sync.Mutex
	calls    int
	langs    []string
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	delay    time.Duration
	fail     domain.Analysis
}

func (r *echoRunner) Run(ctx context.Context, analysis domain.Analysis, language string, texts []string) ([]domain.DocumentResult, error) {
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		seen := r.maxSeen.Load()
		if n <= seen || r.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	r.mu.Lock()
	r.calls++
	r.langs = append(r.langs, language)
	r.mu.Unlock()

	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if analysis == r.fail {
		return nil, errors.New("service unavailable")
	}

	results := make([]domain.DocumentResult, len(texts))
	for i, text := range texts {
		switch analysis {
		case domain.AnalysisSentiment:
			results[i].Sentiment = model.SentimentType("S:" + text)
		case domain.AnalysisKeyPhrases:
			results[i].KeyPhrases = []model.KeyPhrase{*new(model.KeyPhrase).SetText(text)}
		case domain.AnalysisDominantLanguage:
			results[i].Languages = []model.DominantLanguage{*new(model.DominantLanguage).SetLanguageCode("en")}
		}
	}
	return results, nil
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name        string
		request     domain.Request
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid request",
			request: domain.Request{
				Texts:        []string{"Hello"},
				LanguageCode: "en",
				Analyses:     []domain.Analysis{domain.AnalysisSentiment},
			},
			expectError: false,
		},
		{
			name: "dominant language needs no languageCode",
			request: domain.Request{
				Texts:    []string{"Hello"},
				Analyses: []domain.Analysis{domain.AnalysisDominantLanguage},
			},
			expectError: false,
		},
		{
			name: "missing languageCode",
			request: domain.Request{
				Texts:    []string{"Hello"},
				Analyses: []domain.Analysis{domain.AnalysisDominantLanguage, domain.AnalysisEntities},
			},
			expectError: true,
			errorMsg:    "languageCode is required",
		},
		{
			name: "nil texts",
			request: domain.Request{
				Texts:        nil,
				LanguageCode: "en",
				Analyses:     []domain.Analysis{domain.AnalysisSentiment},
			},
			expectError: true,
			errorMsg:    "texts is required",
		},
		{
			name: "empty texts is valid",
			request: domain.Request{
				Texts:        []string{},
				LanguageCode: "en",
				Analyses:     []domain.Analysis{domain.AnalysisSentiment},
			},
			expectError: false,
		},
		{
			name: "missing analyses",
			request: domain.Request{
				Texts:        []string{"Hello"},
				LanguageCode: "en",
			},
			expectError: true,
			errorMsg:    "analyses is required",
		},
		{
			name: "unknown analysis",
			request: domain.Request{
				Texts:        []string{"Hello"},
				LanguageCode: "en",
				Analyses:     []domain.Analysis{"topics"},
			},
			expectError: true,
			errorMsg:    `unknown analysis "topics"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateRequest(tt.request)
			if tt.expectError {
				if err == nil {
					t.Errorf("validateRequest() expected error but got nil")
					return
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("validateRequest() error = %q, want %q", err.Error(), tt.errorMsg)
				}
			} else if err != nil {
				t.Errorf("validateRequest() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRequestDropsDuplicates(t *testing.T) {
	analyses, err := validateRequest(domain.Request{
		Texts:        []string{"x"},
		LanguageCode: "en",
		Analyses:     []domain.Analysis{"sentiment", "entities", "sentiment"},
	})
	if err != nil {
		t.Fatalf("validateRequest() unexpected error: %v", err)
	}
	if len(analyses) != 2 || analyses[0] != domain.AnalysisSentiment || analyses[1] != domain.AnalysisEntities {
		t.Errorf("validateRequest() = %v", analyses)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{"en", "en", true},
		{"EN", "en", true},
		{"en-US", "en", true},
		{"pt-BR", "pt", true},
		{"es_ES", "es", true},
		{"zh", "zh", true},
		{"zh-CN", "zh", true},
		{"zh-Hans", "zh", true},
		{"zh-TW", "zh-TW", true},
		{"zh-Hant", "zh-TW", true},
		{"not a tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := normalizeLanguage(tt.input)
			if tt.valid && err != nil {
				t.Fatalf("normalizeLanguage(%q) unexpected error: %v", tt.input, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("normalizeLanguage(%q) expected error", tt.input)
			}
			if result != tt.expected {
				t.Errorf("normalizeLanguage(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHandleMergesBatchesInOrder(t *testing.T) {
	runner := &echoRunner{}
	cfg := config.Default()
	cfg.MaxDocuments = 2
	cfg.MaxBytes = 4
	h := New(runner, cfg)

	texts := []string{"a", "b", "c", "d", "hello"}
	resp, err := h.Handle(context.Background(), domain.Request{
		Texts:        texts,
		LanguageCode: "en-GB",
		Analyses:     []domain.Analysis{domain.AnalysisSentiment, domain.AnalysisKeyPhrases},
	})
	if err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("Handle() response error: %s", resp.Error)
	}
	if resp.BatchesProcessed != 3 {
		t.Errorf("BatchesProcessed = %d, want 3", resp.BatchesProcessed)
	}
	if runner.calls != 6 {
		t.Errorf("runner called %d times, want 6", runner.calls)
	}
	for _, lang := range runner.langs {
		if lang != "en" {
			t.Errorf("runner got language %q, want en", lang)
		}
	}

	if len(resp.Results) != len(texts) {
		t.Fatalf("got %d results, want %d", len(resp.Results), len(texts))
	}
	want := []string{"a", "b", "c", "d", "hell"}
	for i, res := range resp.Results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d", i, res.Index)
		}
		if string(res.Sentiment) != "S:"+want[i] {
			t.Errorf("results[%d].Sentiment = %q, want %q", i, res.Sentiment, "S:"+want[i])
		}
		if len(res.KeyPhrases) != 1 || res.KeyPhrases[0].GetText() != want[i] {
			t.Errorf("results[%d].KeyPhrases = %+v", i, res.KeyPhrases)
		}
		if res.Truncated != (i == 4) {
			t.Errorf("results[%d].Truncated = %v", i, res.Truncated)
		}
	}
}

func TestHandleRespectsConcurrency(t *testing.T) {
	runner := &echoRunner{delay: 10 * time.Millisecond}
	cfg := config.Default()
	cfg.MaxDocuments = 1
	cfg.Concurrency = 2
	h := New(runner, cfg)

	resp, _ := h.Handle(context.Background(), domain.Request{
		Texts:    []string{"1", "2", "3", "4", "5", "6"},
		Analyses: []domain.Analysis{domain.AnalysisDominantLanguage},
	})
	if resp.Error != "" {
		t.Fatalf("Handle() response error: %s", resp.Error)
	}
	if got := runner.maxSeen.Load(); got > 2 {
		t.Errorf("saw %d concurrent runs, want at most 2", got)
	}
	for i, res := range resp.Results {
		if len(res.Languages) != 1 {
			t.Errorf("results[%d].Languages = %+v", i, res.Languages)
		}
	}
}

func TestHandleWithoutConcurrencySetting(t *testing.T) {
	runner := &echoRunner{}
	cfg := config.Default()
	cfg.Concurrency = 0
	cfg.MaxDocuments = 1

	done := make(chan *domain.Response, 1)
	go func() {
		resp, _ := New(runner, cfg).Handle(context.Background(), domain.Request{
			Texts:    []string{"a", "b"},
			Analyses: []domain.Analysis{domain.AnalysisDominantLanguage},
		})
		done <- resp
	}()

	select {
	case resp := <-done:
		if resp.Error != "" || len(resp.Results) != 2 {
			t.Errorf("Handle() = %+v", resp)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Handle() blocked with a zero concurrency setting")
	}
	if runner.maxSeen.Load() != 1 {
		t.Errorf("saw %d concurrent runs, want 1", runner.maxSeen.Load())
	}
	if cfg.Concurrency != 0 {
		t.Errorf("New() modified the caller's config")
	}
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name     string
		runner   *echoRunner
		request  domain.Request
		errorMsg string
	}{
		{
			name:   "unsupported language",
			runner: &echoRunner{},
			request: domain.Request{
				Texts:        []string{"こんにちは"},
				LanguageCode: "ja",
				Analyses:     []domain.Analysis{domain.AnalysisSyntax},
			},
			errorMsg: "syntax is not supported for language ja",
		},
		{
			name:   "invalid language tag",
			runner: &echoRunner{},
			request: domain.Request{
				Texts:        []string{"x"},
				LanguageCode: "???",
				Analyses:     []domain.Analysis{domain.AnalysisSentiment},
			},
			errorMsg: `languageCode "???" is not a valid language tag`,
		},
		{
			name:   "runner failure",
			runner: &echoRunner{fail: domain.AnalysisEntities},
			request: domain.Request{
				Texts:        []string{"x"},
				LanguageCode: "en",
				Analyses:     []domain.Analysis{domain.AnalysisEntities},
			},
			errorMsg: "analysis failed: entities on batch 0: service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := New(tt.runner, nil).Handle(context.Background(), tt.request)
			if err != nil {
				t.Fatalf("Handle() unexpected error: %v", err)
			}
			if !strings.Contains(resp.Error, tt.errorMsg) {
				t.Errorf("Handle() error = %q, want %q", resp.Error, tt.errorMsg)
			}
			if resp.Results != nil {
				t.Errorf("Handle() returned results alongside an error")
			}
		})
	}
}

func TestHandleEmptyTexts(t *testing.T) {
	runner := &echoRunner{}
	resp, err := New(runner, nil).Handle(context.Background(), domain.Request{
		Texts:        []string{},
		LanguageCode: "en",
		Analyses:     []domain.Analysis{domain.AnalysisSentiment},
	})
	if err != nil || resp.Error != "" {
		t.Fatalf("Handle() = %+v, %v", resp, err)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("Results = %#v, want empty", resp.Results)
	}
	if runner.calls != 0 {
		t.Errorf("runner called %d times for empty input", runner.calls)
	}
}
