package router

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/comprehend-go/comprehend"
	"github.com/pricofy/comprehend-go/internal/domain"
	"github.com/pricofy/comprehend-go/model"
)

// fakeAPI answers every call from its fields and records what it was sent.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	texts [][]string

	sentiment *model.BatchDetectSentimentResult
	entities  *model.BatchDetectEntitiesResult
	phrases   *model.BatchDetectKeyPhrasesResult
	languages *model.BatchDetectDominantLanguageResult
	syntax    *model.BatchDetectSyntaxResult
	pii       func(text string) (*model.DetectPiiEntitiesResult, error)
	err       error
}

func (f *fakeAPI) record(op string, texts []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	f.texts = append(f.texts, texts)
}

func (f *fakeAPI) BatchDetectSentiment(_ context.Context, in *model.BatchDetectSentimentRequest) (*model.BatchDetectSentimentResult, error) {
	f.record("BatchDetectSentiment", in.TextList)
	return f.sentiment, f.err
}

func (f *fakeAPI) BatchDetectEntities(_ context.Context, in *model.BatchDetectEntitiesRequest) (*model.BatchDetectEntitiesResult, error) {
	f.record("BatchDetectEntities", in.TextList)
	return f.entities, f.err
}

func (f *fakeAPI) BatchDetectKeyPhrases(_ context.Context, in *model.BatchDetectKeyPhrasesRequest) (*model.BatchDetectKeyPhrasesResult, error) {
	f.record("BatchDetectKeyPhrases", in.TextList)
	return f.phrases, f.err
}

func (f *fakeAPI) BatchDetectDominantLanguage(_ context.Context, in *model.BatchDetectDominantLanguageRequest) (*model.BatchDetectDominantLanguageResult, error) {
	f.record("BatchDetectDominantLanguage", in.TextList)
	return f.languages, f.err
}

func (f *fakeAPI) BatchDetectSyntax(_ context.Context, in *model.BatchDetectSyntaxRequest) (*model.BatchDetectSyntaxResult, error) {
	f.record("BatchDetectSyntax", in.TextList)
	return f.syntax, f.err
}

func (f *fakeAPI) DetectPiiEntities(_ context.Context, in *model.DetectPiiEntitiesRequest) (*model.DetectPiiEntitiesResult, error) {
	f.record("DetectPiiEntities", []string{in.GetText()})
	return f.pii(in.GetText())
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		analysis domain.Analysis
		language string
		expected bool
	}{
		{domain.AnalysisSentiment, "en", true},
		{domain.AnalysisSentiment, "zh-TW", true},
		{domain.AnalysisSentiment, "nl", false},
		{domain.AnalysisEntities, "ja", true},
		{domain.AnalysisKeyPhrases, "hi", true},
		{domain.AnalysisKeyPhrases, "", false},
		// Syntax only covers six languages
		{domain.AnalysisSyntax, "pt", true},
		{domain.AnalysisSyntax, "de", true},
		{domain.AnalysisSyntax, "ja", false},
		// PII
		{domain.AnalysisPII, "en", true},
		{domain.AnalysisPII, "es", true},
		{domain.AnalysisPII, "fr", false},
		// Dominant language ignores the language
		{domain.AnalysisDominantLanguage, "", true},
		{domain.AnalysisDominantLanguage, "xx", true},
		// Unknown analysis
		{domain.Analysis("topics"), "en", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.analysis)+"/"+tt.language, func(t *testing.T) {
			result := IsSupported(tt.analysis, tt.language)
			if result != tt.expected {
				t.Errorf("IsSupported(%q, %q) = %v, want %v", tt.analysis, tt.language, result, tt.expected)
			}
		})
	}
}

func TestRun_Sentiment(t *testing.T) {
	api := &fakeAPI{
		sentiment: &model.BatchDetectSentimentResult{
			// results arrive out of order and document 1 failed
			ResultList: []model.BatchDetectSentimentItemResult{
				{Index: aws.Int32(2), Sentiment: model.SentimentTypeNegative},
				{Index: aws.Int32(0), Sentiment: model.SentimentTypePositive, SentimentScore: new(model.SentimentScore).SetPositive(0.97)},
			},
			ErrorList: []model.BatchItemError{
				{Index: aws.Int32(1), ErrorCode: aws.String("INTERNAL_SERVER_ERROR"), ErrorMessage: aws.String("try again")},
			},
		},
	}
	r := NewWithAPI(api)

	results, err := r.Run(context.Background(), domain.AnalysisSentiment, "en", []string{"love it", "meh", "hate it"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Run() returned %d results, want 3", len(results))
	}
	if results[0].Sentiment != model.SentimentTypePositive || results[0].SentimentScore.GetPositive() != 0.97 {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[2].Sentiment != model.SentimentTypeNegative {
		t.Errorf("results[2].Sentiment = %q", results[2].Sentiment)
	}
	if len(results[1].Errors) != 1 || results[1].Errors[0].Code != "INTERNAL_SERVER_ERROR" {
		t.Errorf("results[1].Errors = %+v", results[1].Errors)
	}
	if api.calls[0] != "BatchDetectSentiment" {
		t.Errorf("called %v", api.calls)
	}
}

func TestRun_DispatchesEachAnalysis(t *testing.T) {
	api := &fakeAPI{
		entities: &model.BatchDetectEntitiesResult{ResultList: []model.BatchDetectEntitiesItemResult{
			{Index: aws.Int32(0), Entities: []model.Entity{*new(model.Entity).SetText("Ada").SetType(model.EntityTypePerson)}},
		}},
		phrases: &model.BatchDetectKeyPhrasesResult{ResultList: []model.BatchDetectKeyPhrasesItemResult{
			{Index: aws.Int32(0)},
		}},
		languages: &model.BatchDetectDominantLanguageResult{ResultList: []model.BatchDetectDominantLanguageItemResult{
			{Index: aws.Int32(0), Languages: []model.DominantLanguage{*new(model.DominantLanguage).SetLanguageCode("es").SetScore(0.99)}},
		}},
		syntax: &model.BatchDetectSyntaxResult{ResultList: []model.BatchDetectSyntaxItemResult{
			{Index: aws.Int32(0), SyntaxTokens: []model.SyntaxToken{*new(model.SyntaxToken).SetText("Ada")}},
		}},
	}
	r := NewWithAPI(api)
	ctx := context.Background()
	texts := []string{"Ada"}

	res, _ := r.Run(ctx, domain.AnalysisEntities, "en", texts)
	if len(res[0].Entities) != 1 || res[0].Entities[0].GetText() != "Ada" {
		t.Errorf("entities = %+v", res[0].Entities)
	}

	res, _ = r.Run(ctx, domain.AnalysisKeyPhrases, "en", texts)
	if res[0].KeyPhrases == nil || len(res[0].KeyPhrases) != 0 {
		t.Errorf("key phrases should be empty but present, got %#v", res[0].KeyPhrases)
	}

	res, _ = r.Run(ctx, domain.AnalysisDominantLanguage, "", texts)
	if res[0].Languages[0].GetLanguageCode() != "es" {
		t.Errorf("languages = %+v", res[0].Languages)
	}

	res, _ = r.Run(ctx, domain.AnalysisSyntax, "en", texts)
	if len(res[0].SyntaxTokens) != 1 {
		t.Errorf("syntax tokens = %+v", res[0].SyntaxTokens)
	}

	want := []string{"BatchDetectEntities", "BatchDetectKeyPhrases", "BatchDetectDominantLanguage", "BatchDetectSyntax"}
	for i, op := range want {
		if api.calls[i] != op {
			t.Errorf("call %d = %s, want %s", i, api.calls[i], op)
		}
	}
}

func TestRun_PIIRunsPerDocument(t *testing.T) {
	api := &fakeAPI{
		pii: func(text string) (*model.DetectPiiEntitiesResult, error) {
			if text == "bad" {
				return nil, &comprehend.TextSizeLimitExceededException{ServiceError: comprehend.ServiceError{
					Code:    "TextSizeLimitExceededException",
					Message: "too long",
				}}
			}
			return &model.DetectPiiEntitiesResult{Entities: []model.PiiEntity{{Type: model.PiiEntityTypeEmail}}}, nil
		},
	}
	r := NewWithAPI(api)

	results, err := r.Run(context.Background(), domain.AnalysisPII, "en", []string{"mail me at a@b.c", "bad"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(api.calls) != 2 {
		t.Errorf("expected one call per document, got %v", api.calls)
	}
	if len(results[0].PiiEntities) != 1 || results[0].PiiEntities[0].Type != model.PiiEntityTypeEmail {
		t.Errorf("results[0].PiiEntities = %+v", results[0].PiiEntities)
	}
	if len(results[1].Errors) != 1 || results[1].Errors[0].Code != "TextSizeLimitExceededException" {
		t.Errorf("results[1].Errors = %+v", results[1].Errors)
	}
}

func TestRun_BatchFailureMarksEveryDocument(t *testing.T) {
	api := &fakeAPI{err: &comprehend.ServiceError{Code: "TooManyRequestsException", Message: "slow down"}}
	r := NewWithAPI(api)

	results, err := r.Run(context.Background(), domain.AnalysisSentiment, "en", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	for i, res := range results {
		if len(res.Errors) != 1 || res.Errors[0].Code != "TooManyRequestsException" || res.Errors[0].Analysis != domain.AnalysisSentiment {
			t.Errorf("results[%d].Errors = %+v", i, res.Errors)
		}
	}
}

func TestRun_CancelledContextFails(t *testing.T) {
	tests := []struct {
		analysis      domain.Analysis
		expectedCalls int
	}{
		{domain.AnalysisSentiment, 1},
		{domain.AnalysisPII, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.analysis), func(t *testing.T) {
			api := &fakeAPI{
				err: context.Canceled,
				pii: func(string) (*model.DetectPiiEntitiesResult, error) { return nil, context.Canceled },
			}
			r := NewWithAPI(api)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			results, err := r.Run(ctx, tt.analysis, "en", []string{"a", "b", "c"})
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Run() error = %v, want context.Canceled", err)
			}
			if results != nil {
				t.Errorf("Run() returned results for a cancelled context")
			}
			if len(api.calls) != tt.expectedCalls {
				t.Errorf("got %d calls, want %d", len(api.calls), tt.expectedCalls)
			}
		})
	}
}

func TestRun_PIIStopsWhenCancelledMidBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := &fakeAPI{
		pii: func(text string) (*model.DetectPiiEntitiesResult, error) {
			if text == "b" {
				cancel()
				return nil, ctx.Err()
			}
			return &model.DetectPiiEntitiesResult{}, nil
		},
	}
	r := NewWithAPI(api)

	_, err := r.Run(ctx, domain.AnalysisPII, "en", []string{"a", "b", "c"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(api.calls) != 2 {
		t.Errorf("got %d calls, want 2", len(api.calls))
	}
}

func TestRun_Unsupported(t *testing.T) {
	api := &fakeAPI{}
	r := NewWithAPI(api)

	_, err := r.Run(context.Background(), domain.AnalysisSyntax, "ja", []string{"こんにちは"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Run() error = %v, want ErrUnsupported", err)
	}
	_, err = r.Run(context.Background(), domain.Analysis("topics"), "en", []string{"x"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Run() error = %v, want ErrUnsupported", err)
	}
	if len(api.calls) != 0 {
		t.Errorf("unsupported analyses must not call the service, got %v", api.calls)
	}
}

func TestRun_IgnoresOutOfRangeIndex(t *testing.T) {
	api := &fakeAPI{sentiment: &model.BatchDetectSentimentResult{
		ResultList: []model.BatchDetectSentimentItemResult{{Index: aws.Int32(5), Sentiment: model.SentimentTypeMixed}, {}},
	}}
	r := NewWithAPI(api)

	results, err := r.Run(context.Background(), domain.AnalysisSentiment, "en", []string{"a"})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if results[0].Sentiment != "" {
		t.Errorf("results[0].Sentiment = %q, want empty", results[0].Sentiment)
	}
}
