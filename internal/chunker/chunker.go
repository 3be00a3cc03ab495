// Package chunker splits documents into batches the Comprehend batch APIs
// accept.
package chunker

import "unicode/utf8"

// DefaultMaxDocuments is the batch API limit on documents per request.
const DefaultMaxDocuments = 25

// DefaultMaxBytes is the per-document UTF-8 size limit of the batch APIs.
const DefaultMaxBytes = 5000

// Batch is a run of consecutive input documents.
type Batch struct {
	// Offset is the input index of Texts[0].
	Offset int
	Texts  []string
	// Truncated holds the batch-relative indices of shortened documents.
	Truncated []int
}

// Truncate cuts text to at most maxBytes bytes without splitting a rune.
// The second result reports whether anything was cut.
func Truncate(text string, maxBytes int) (string, bool) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(text) <= maxBytes {
		return text, false
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut], true
}

// ChunkDocuments splits texts into batches of at most maxDocs documents,
// each truncated to maxBytes. Documents are never reordered or dropped.
func ChunkDocuments(texts []string, maxDocs, maxBytes int) []Batch {
	if len(texts) == 0 {
		return nil
	}

	if maxDocs <= 0 || maxDocs > DefaultMaxDocuments {
		maxDocs = DefaultMaxDocuments
	}

	var batches []Batch
	current := Batch{}

	for i, text := range texts {
		// Start a new batch when the current one is full
		if len(current.Texts) == maxDocs {
			batches = append(batches, current)
			current = Batch{Offset: i}
		}

		doc, cut := Truncate(text, maxBytes)
		if cut {
			current.Truncated = append(current.Truncated, len(current.Texts))
		}
		current.Texts = append(current.Texts, doc)
	}

	// Flush remaining batch
	if len(current.Texts) > 0 {
		batches = append(batches, current)
	}

	return batches
}
