// Package router routes analysis requests to the matching Comprehend API.
package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go"

	"github.com/pricofy/comprehend-go/comprehend"
	"github.com/pricofy/comprehend-go/internal/config"
	"github.com/pricofy/comprehend-go/internal/domain"
	"github.com/pricofy/comprehend-go/internal/logger"
	"github.com/pricofy/comprehend-go/model"
)

// ErrUnsupported is returned for an analysis that cannot run in a language.
var ErrUnsupported = errors.New("unsupported analysis")

// Language groups
var (
	// Languages with PII detection
	piiLanguages = map[model.LanguageCode]bool{
		model.LanguageCodeEn: true,
		model.LanguageCodeEs: true,
	}

	// All analyses the router knows about
	supportedAnalyses = map[domain.Analysis]bool{
		domain.AnalysisSentiment:        true,
		domain.AnalysisEntities:         true,
		domain.AnalysisKeyPhrases:       true,
		domain.AnalysisDominantLanguage: true,
		domain.AnalysisSyntax:           true,
		domain.AnalysisPII:              true,
	}
)

// API is the subset of the Comprehend client the router calls.
type API interface {
	BatchDetectSentiment(context.Context, *model.BatchDetectSentimentRequest) (*model.BatchDetectSentimentResult, error)
	BatchDetectEntities(context.Context, *model.BatchDetectEntitiesRequest) (*model.BatchDetectEntitiesResult, error)
	BatchDetectKeyPhrases(context.Context, *model.BatchDetectKeyPhrasesRequest) (*model.BatchDetectKeyPhrasesResult, error)
	BatchDetectDominantLanguage(context.Context, *model.BatchDetectDominantLanguageRequest) (*model.BatchDetectDominantLanguageResult, error)
	BatchDetectSyntax(context.Context, *model.BatchDetectSyntaxRequest) (*model.BatchDetectSyntaxResult, error)
	DetectPiiEntities(context.Context, *model.DetectPiiEntitiesRequest) (*model.DetectPiiEntitiesResult, error)
}

var _ API = (*comprehend.Client)(nil)

// Router runs one analysis over one batch of documents.
type Router struct {
	api API
	log *logger.Logger
}

// New creates a Router backed by a Comprehend client built from the
// default AWS configuration.
func New(ctx context.Context, cfg *config.Config) (*Router, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := comprehend.NewFromConfig(awsCfg, func(o *comprehend.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.ValidateRequests = cfg.ValidateRequests
		o.Logger = logger.Named("comprehend")
	})
	return NewWithAPI(client), nil
}

// NewWithAPI creates a Router over an existing client.
func NewWithAPI(api API) *Router {
	return &Router{api: api, log: logger.Named("router")}
}

// IsSupported checks if an analysis can run on documents in language.
// Dominant language detection ignores the language.
func IsSupported(analysis domain.Analysis, language string) bool {
	lang := model.LanguageCode(language)
	switch analysis {
	case domain.AnalysisDominantLanguage:
		return true
	case domain.AnalysisSentiment, domain.AnalysisEntities, domain.AnalysisKeyPhrases:
		return lang.IsKnown()
	case domain.AnalysisSyntax:
		return model.SyntaxLanguageCode(language).IsKnown()
	case domain.AnalysisPII:
		return piiLanguages[lang]
	}
	return false
}

// IsKnownAnalysis reports whether the router can run the analysis.
func IsKnownAnalysis(analysis domain.Analysis) bool {
	return supportedAnalyses[analysis]
}

// Run analyses a batch and returns one result per text, indexed like texts.
// Per-document failures are recorded on the result; a failure of the whole
// call is recorded on every document of the batch.
func (r *Router) Run(ctx context.Context, analysis domain.Analysis, language string, texts []string) ([]domain.DocumentResult, error) {
	if !IsKnownAnalysis(analysis) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, analysis)
	}
	if !IsSupported(analysis, language) {
		return nil, fmt.Errorf("%w: %s in language %q", ErrUnsupported, analysis, language)
	}

	results := make([]domain.DocumentResult, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	var err error
	switch analysis {
	case domain.AnalysisSentiment:
		err = r.sentiment(ctx, language, texts, results)
	case domain.AnalysisEntities:
		err = r.entities(ctx, language, texts, results)
	case domain.AnalysisKeyPhrases:
		err = r.keyPhrases(ctx, language, texts, results)
	case domain.AnalysisDominantLanguage:
		err = r.dominantLanguage(ctx, texts, results)
	case domain.AnalysisSyntax:
		err = r.syntax(ctx, language, texts, results)
	case domain.AnalysisPII:
		err = r.pii(ctx, language, texts, results)
	}

	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		r.log.Warn().Err(err).Str("analysis", string(analysis)).Int("documents", len(texts)).Msg("batch failed")
		for i := range results {
			results[i].Errors = append(results[i].Errors, analysisError(analysis, err))
		}
	}
	return results, nil
}

func (r *Router) sentiment(ctx context.Context, language string, texts []string, results []domain.DocumentResult) error {
	out, err := r.api.BatchDetectSentiment(ctx, new(model.BatchDetectSentimentRequest).
		SetTextList(texts).
		SetLanguageCode(model.LanguageCode(language)))
	if err != nil {
		return err
	}
	for _, item := range out.ResultList {
		if res := at(results, item.Index); res != nil {
			res.Sentiment = item.Sentiment
			res.SentimentScore = item.SentimentScore
		}
	}
	itemErrors(domain.AnalysisSentiment, out.ErrorList, results)
	return nil
}

func (r *Router) entities(ctx context.Context, language string, texts []string, results []domain.DocumentResult) error {
	out, err := r.api.BatchDetectEntities(ctx, new(model.BatchDetectEntitiesRequest).
		SetTextList(texts).
		SetLanguageCode(model.LanguageCode(language)))
	if err != nil {
		return err
	}
	for _, item := range out.ResultList {
		if res := at(results, item.Index); res != nil {
			res.Entities = nonNil(item.Entities)
		}
	}
	itemErrors(domain.AnalysisEntities, out.ErrorList, results)
	return nil
}

func (r *Router) keyPhrases(ctx context.Context, language string, texts []string, results []domain.DocumentResult) error {
	out, err := r.api.BatchDetectKeyPhrases(ctx, new(model.BatchDetectKeyPhrasesRequest).
		SetTextList(texts).
		SetLanguageCode(model.LanguageCode(language)))
	if err != nil {
		return err
	}
	for _, item := range out.ResultList {
		if res := at(results, item.Index); res != nil {
			res.KeyPhrases = nonNil(item.KeyPhrases)
		}
	}
	itemErrors(domain.AnalysisKeyPhrases, out.ErrorList, results)
	return nil
}

func (r *Router) dominantLanguage(ctx context.Context, texts []string, results []domain.DocumentResult) error {
	out, err := r.api.BatchDetectDominantLanguage(ctx, new(model.BatchDetectDominantLanguageRequest).
		SetTextList(texts))
	if err != nil {
		return err
	}
	for _, item := range out.ResultList {
		if res := at(results, item.Index); res != nil {
			res.Languages = nonNil(item.Languages)
		}
	}
	itemErrors(domain.AnalysisDominantLanguage, out.ErrorList, results)
	return nil
}

func (r *Router) syntax(ctx context.Context, language string, texts []string, results []domain.DocumentResult) error {
	out, err := r.api.BatchDetectSyntax(ctx, new(model.BatchDetectSyntaxRequest).
		SetTextList(texts).
		SetLanguageCode(model.SyntaxLanguageCode(language)))
	if err != nil {
		return err
	}
	for _, item := range out.ResultList {
		if res := at(results, item.Index); res != nil {
			res.SyntaxTokens = nonNil(item.SyntaxTokens)
		}
	}
	itemErrors(domain.AnalysisSyntax, out.ErrorList, results)
	return nil
}

// pii has no batch API, so documents are sent one at a time. Only a done
// context fails the whole batch.
func (r *Router) pii(ctx context.Context, language string, texts []string, results []domain.DocumentResult) error {
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := r.api.DetectPiiEntities(ctx, new(model.DetectPiiEntitiesRequest).
			SetText(text).
			SetLanguageCode(model.LanguageCode(language)))
		if err != nil {
			if ctx.Err() != nil {
				return errors.Join(err, ctx.Err())
			}
			results[i].Errors = append(results[i].Errors, analysisError(domain.AnalysisPII, err))
			continue
		}
		results[i].PiiEntities = nonNil(out.Entities)
	}
	return nil
}

// at returns the result for a batch-relative index, or nil when the service
// returned an index outside the batch.
func at(results []domain.DocumentResult, index *int32) *domain.DocumentResult {
	if index == nil || *index < 0 || int(*index) >= len(results) {
		return nil
	}
	return &results[*index]
}

func itemErrors(analysis domain.Analysis, list []model.BatchItemError, results []domain.DocumentResult) {
	for _, e := range list {
		if res := at(results, e.Index); res != nil {
			res.Errors = append(res.Errors, domain.AnalysisError{
				Analysis: analysis,
				Code:     e.GetErrorCode(),
				Message:  e.GetErrorMessage(),
			})
		}
	}
}

func analysisError(analysis domain.Analysis, err error) domain.AnalysisError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return domain.AnalysisError{Analysis: analysis, Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return domain.AnalysisError{Analysis: analysis, Code: "InternalError", Message: err.Error()}
}

// nonNil keeps "analysed, nothing found" distinct from "not analysed".
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
