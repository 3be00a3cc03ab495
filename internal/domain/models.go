// Package domain contains the core domain types for the text analyzer.
package domain

import "github.com/pricofy/comprehend-go/model"

// Analysis names one kind of text analysis.
type Analysis string

// Supported analyses.
const (
	AnalysisSentiment        Analysis = "sentiment"
	AnalysisEntities         Analysis = "entities"
	AnalysisKeyPhrases       Analysis = "key_phrases"
	AnalysisDominantLanguage Analysis = "dominant_language"
	AnalysisSyntax           Analysis = "syntax"
	AnalysisPII              Analysis = "pii"
)

// Request is the input to the analyzer.
type Request struct {
	Texts        []string   `json:"texts"`
	LanguageCode string     `json:"languageCode,omitempty"`
	Analyses     []Analysis `json:"analyses"`
}

// Response is the output from the analyzer.
type Response struct {
	Results          []DocumentResult `json:"results,omitempty"`
	BatchesProcessed int              `json:"batchesProcessed,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// DocumentResult holds every requested analysis of one input text.
type DocumentResult struct {
	Index     int  `json:"index"`
	Truncated bool `json:"truncated,omitempty"`

	Sentiment      model.SentimentType      `json:"sentiment,omitempty"`
	SentimentScore *model.SentimentScore    `json:"sentimentScore,omitempty"`

	// List results are null when the analysis was not run and [] when it
	// ran and found nothing.
	Entities     []model.Entity           `json:"entities"`
	KeyPhrases   []model.KeyPhrase        `json:"keyPhrases"`
	Languages    []model.DominantLanguage `json:"languages"`
	SyntaxTokens []model.SyntaxToken      `json:"syntaxTokens"`
	PiiEntities  []model.PiiEntity        `json:"piiEntities"`

	Errors []AnalysisError `json:"errors,omitempty"`
}

// AnalysisError reports a failed analysis of one document.
type AnalysisError struct {
	Analysis Analysis `json:"analysis"`
	Code     string   `json:"code"`
	Message  string   `json:"message,omitempty"`
}

// Merge copies the analyses present in src into r.
func (r *DocumentResult) Merge(src DocumentResult) {
	if src.Sentiment != "" {
		r.Sentiment = src.Sentiment
		r.SentimentScore = src.SentimentScore
	}
	if src.Entities != nil {
		r.Entities = src.Entities
	}
	if src.KeyPhrases != nil {
		r.KeyPhrases = src.KeyPhrases
	}
	if src.Languages != nil {
		r.Languages = src.Languages
	}
	if src.SyntaxTokens != nil {
		r.SyntaxTokens = src.SyntaxTokens
	}
	if src.PiiEntities != nil {
		r.PiiEntities = src.PiiEntities
	}
	r.Errors = append(r.Errors, src.Errors...)
}
