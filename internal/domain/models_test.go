package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pricofy/comprehend-go/model"
)

func TestDocumentResultJSONKeepsEmptyLists(t *testing.T) {
	res := DocumentResult{
		Index:      0,
		KeyPhrases: []model.KeyPhrase{},
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	got := string(data)

	for _, want := range []string{`"keyPhrases":[]`, `"entities":null`, `"piiEntities":null`} {
		if !strings.Contains(got, want) {
			t.Errorf("json.Marshal() = %s, missing %s", got, want)
		}
	}
	if strings.Contains(got, `"errors"`) {
		t.Errorf("json.Marshal() = %s, want no errors key", got)
	}
}

func TestDocumentResultMerge(t *testing.T) {
	dst := DocumentResult{Index: 3, Truncated: true}
	dst.Merge(DocumentResult{Sentiment: model.SentimentType("POSITIVE")})
	dst.Merge(DocumentResult{Entities: []model.Entity{}})
	dst.Merge(DocumentResult{Errors: []AnalysisError{{Analysis: AnalysisSyntax, Message: "boom"}}})

	if dst.Index != 3 || !dst.Truncated {
		t.Errorf("Merge() changed Index or Truncated: %+v", dst)
	}
	if dst.Sentiment != "POSITIVE" {
		t.Errorf("Sentiment = %q, want POSITIVE", dst.Sentiment)
	}
	if dst.Entities == nil || len(dst.Entities) != 0 {
		t.Errorf("Entities = %#v, want empty non-nil", dst.Entities)
	}
	if dst.KeyPhrases != nil {
		t.Errorf("KeyPhrases = %#v, want nil", dst.KeyPhrases)
	}
	if len(dst.Errors) != 1 {
		t.Errorf("Errors = %+v, want one entry", dst.Errors)
	}
}
