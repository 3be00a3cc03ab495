// Package handler provides the Lambda handler for the text analyzer.
package handler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/pricofy/comprehend-go/internal/chunker"
	"github.com/pricofy/comprehend-go/internal/config"
	"github.com/pricofy/comprehend-go/internal/domain"
	"github.com/pricofy/comprehend-go/internal/logger"
	"github.com/pricofy/comprehend-go/internal/router"
)

// Runner runs one analysis over one batch of documents.
type Runner interface {
	Run(ctx context.Context, analysis domain.Analysis, language string, texts []string) ([]domain.DocumentResult, error)
}

var _ Runner = (*router.Router)(nil)

// Handler analyses text with Comprehend.
type Handler struct {
	runner Runner
	cfg    *config.Config
}

// New creates a Handler. A nil cfg uses config.Default, and a concurrency
// below 1 runs one batch at a time.
func New(runner Runner, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	c := *cfg
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	return &Handler{runner: runner, cfg: &c}
}

// Handle processes an analysis request.
// Texts are split into batches and every (analysis, batch) pair runs
// concurrently, bounded by the configured concurrency. Results come back in
// input order with one entry per text.
func (h *Handler) Handle(ctx context.Context, req domain.Request) (*domain.Response, error) {
	log := logger.C(ctx)

	// Validate request
	analyses, err := validateRequest(req)
	if err != nil {
		return &domain.Response{Error: err.Error()}, nil
	}

	lang := ""
	if req.LanguageCode != "" {
		lang, err = normalizeLanguage(req.LanguageCode)
		if err != nil {
			return &domain.Response{Error: err.Error()}, nil
		}
	}

	for _, a := range analyses {
		if !router.IsSupported(a, lang) {
			return &domain.Response{
				Error: fmt.Sprintf("%s is not supported for language %s", a, lang),
			}, nil
		}
	}

	// Empty input - return immediately
	if len(req.Texts) == 0 {
		return &domain.Response{Results: []domain.DocumentResult{}}, nil
	}

	batches := chunker.ChunkDocuments(req.Texts, h.cfg.MaxDocuments, h.cfg.MaxBytes)
	start := time.Now()

	// partial[a][b] holds the results of analysis a over batch b
	partial := make([][][]domain.DocumentResult, len(analyses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Concurrency)
	for ai, analysis := range analyses {
		partial[ai] = make([][]domain.DocumentResult, len(batches))
		for bi, batch := range batches {
			g.Go(func() error {
				res, err := h.runner.Run(gctx, analysis, lang, batch.Texts)
				if err != nil {
					return fmt.Errorf("%s on batch %d: %w", analysis, bi, err)
				}
				partial[ai][bi] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Int("documents", len(req.Texts)).Msg("analysis failed")
		return &domain.Response{Error: fmt.Sprintf("analysis failed: %v", err)}, nil
	}

	results := make([]domain.DocumentResult, len(req.Texts))
	for i := range results {
		results[i].Index = i
	}
	for bi, batch := range batches {
		for _, j := range batch.Truncated {
			results[batch.Offset+j].Truncated = true
		}
		for ai := range analyses {
			for j, res := range partial[ai][bi] {
				if j >= len(batch.Texts) {
					break
				}
				results[batch.Offset+j].Merge(res)
			}
		}
	}

	log.Info().
		Int("documents", len(req.Texts)).
		Int("batches", len(batches)).
		Strs("analyses", analysisNames(analyses)).
		Str("language", lang).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return &domain.Response{
		Results:          results,
		BatchesProcessed: len(batches),
	}, nil
}

// validateRequest checks the request and returns its analyses without
// duplicates, in request order.
func validateRequest(req domain.Request) ([]domain.Analysis, error) {
	if req.Texts == nil {
		return nil, fmt.Errorf("texts is required")
	}
	if len(req.Analyses) == 0 {
		return nil, fmt.Errorf("analyses is required")
	}

	seen := make(map[domain.Analysis]bool, len(req.Analyses))
	analyses := make([]domain.Analysis, 0, len(req.Analyses))
	needsLanguage := false
	for _, a := range req.Analyses {
		if !router.IsKnownAnalysis(a) {
			return nil, fmt.Errorf("unknown analysis %q", a)
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		analyses = append(analyses, a)
		if a != domain.AnalysisDominantLanguage {
			needsLanguage = true
		}
	}

	if needsLanguage && req.LanguageCode == "" {
		return nil, fmt.Errorf("languageCode is required")
	}
	return analyses, nil
}

// normalizeLanguage maps a BCP 47 tag onto the codes Comprehend accepts:
// the base language, except Chinese which keeps its script as zh or zh-TW.
func normalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("languageCode %q is not a valid language tag", code)
	}
	base, _ := tag.Base()
	if base.String() != "zh" {
		return base.String(), nil
	}
	if script, _ := tag.Script(); script.String() == "Hant" {
		return "zh-TW", nil
	}
	return "zh", nil
}

func analysisNames(analyses []domain.Analysis) []string {
	names := make([]string, len(analyses))
	for i, a := range analyses {
		names[i] = string(a)
	}
	return names
}
