package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxBytes int
		expected string
		cut      bool
	}{
		{
			name:     "empty string",
			text:     "",
			maxBytes: 10,
			expected: "",
		},
		{
			name:     "fits",
			text:     "iPhone 12 Pro en buen estado",
			maxBytes: 28,
			expected: "iPhone 12 Pro en buen estado",
		},
		{
			name:     "ascii cut",
			text:     "Hello world",
			maxBytes: 5,
			expected: "Hello",
			cut:      true,
		},
		{
			name:     "does not split a two byte rune",
			text:     "artículo",
			maxBytes: 5, // "artí" is 5 bytes, "artíc" is 6
			expected: "artí",
			cut:      true,
		},
		{
			name:     "backs off inside a multi byte rune",
			text:     "añb",
			maxBytes: 2, // ñ occupies bytes 1-2
			expected: "a",
			cut:      true,
		},
		{
			name:     "four byte rune",
			text:     "😀😀",
			maxBytes: 6,
			expected: "😀",
			cut:      true,
		},
		{
			name:     "default budget",
			text:     strings.Repeat("a", DefaultMaxBytes+1),
			maxBytes: 0,
			expected: strings.Repeat("a", DefaultMaxBytes),
			cut:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, cut := Truncate(tt.text, tt.maxBytes)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.maxBytes, result, tt.expected)
			}
			if cut != tt.cut {
				t.Errorf("Truncate(%q, %d) cut = %v, want %v", tt.text, tt.maxBytes, cut, tt.cut)
			}
			if !utf8.ValidString(result) {
				t.Errorf("Truncate(%q, %d) returned invalid UTF-8", tt.text, tt.maxBytes)
			}
		})
	}
}

func TestChunkDocuments(t *testing.T) {
	tests := []struct {
		name            string
		count           int
		maxDocs         int
		expectedBatches int
	}{
		{
			name:            "empty input",
			count:           0,
			maxDocs:         25,
			expectedBatches: 0,
		},
		{
			name:            "single document",
			count:           1,
			maxDocs:         25,
			expectedBatches: 1,
		},
		{
			name:            "exactly one batch",
			count:           25,
			maxDocs:         25,
			expectedBatches: 1,
		},
		{
			name:            "one over",
			count:           26,
			maxDocs:         25,
			expectedBatches: 2,
		},
		{
			name:            "small batches",
			count:           7,
			maxDocs:         3,
			expectedBatches: 3,
		},
		{
			name:            "limit above service maximum is clamped",
			count:           30,
			maxDocs:         100,
			expectedBatches: 2,
		},
		{
			name:            "zero uses default",
			count:           50,
			maxDocs:         0,
			expectedBatches: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := make([]string, tt.count)
			for i := range texts {
				texts[i] = strings.Repeat("x", i+1)
			}

			batches := ChunkDocuments(texts, tt.maxDocs, 0)

			if len(batches) != tt.expectedBatches {
				t.Errorf("ChunkDocuments() returned %d batches, want %d", len(batches), tt.expectedBatches)
			}

			// Verify all texts are preserved in order at their offsets
			seen := 0
			for _, b := range batches {
				if b.Offset != seen {
					t.Errorf("batch offset = %d, want %d", b.Offset, seen)
				}
				if len(b.Texts) > DefaultMaxDocuments {
					t.Errorf("batch has %d documents", len(b.Texts))
				}
				for j, text := range b.Texts {
					if text != texts[b.Offset+j] {
						t.Errorf("text[%d] = %q, want %q", b.Offset+j, text, texts[b.Offset+j])
					}
				}
				seen += len(b.Texts)
			}

			if seen != len(texts) {
				t.Errorf("ChunkDocuments() lost texts: got %d, want %d", seen, len(texts))
			}
		})
	}
}

func TestChunkDocuments_MarksTruncated(t *testing.T) {
	texts := []string{"short", strings.Repeat("b", 20), "tiny", strings.Repeat("d", 11)}
	batches := ChunkDocuments(texts, 2, 10)

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if got := batches[0].Truncated; len(got) != 1 || got[0] != 1 {
		t.Errorf("batch 0 truncated = %v, want [1]", got)
	}
	if got := batches[1].Truncated; len(got) != 1 || got[0] != 1 {
		t.Errorf("batch 1 truncated = %v, want [1]", got)
	}
	if batches[0].Texts[1] != strings.Repeat("b", 10) {
		t.Errorf("truncated text = %q", batches[0].Texts[1])
	}
}
