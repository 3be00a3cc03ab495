package shapeutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sentiment string

type score struct {
	Positive *float32
	Negative *float32
}

type result struct {
	Sentiment  sentiment
	Score      *score
	Tags       []string
	Scores     []score
	Submitted  *time.Time
	Index      *int32
	Truncated  *bool
	unexported int
}

func ptr[T any](v T) *T { return &v }

func TestPrettify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"empty", result{}, "{}"},
		{"nil pointer", (*result)(nil), "<nil>"},
		{"enum and nested", result{
			Sentiment: "POSITIVE",
			Score:     &score{Positive: ptr[float32](0.97)},
		}, "{Sentiment: POSITIVE, Score: {Positive: 0.97}}"},
		{"lists", result{
			Tags:   []string{"a", "b"},
			Scores: []score{{}, {Negative: ptr[float32](0.5)}},
		}, "{Tags: [a, b], Scores: [{}, {Negative: 0.5}]}"},
		{"empty list is present", result{Tags: []string{}}, "{Tags: []}"},
		{"scalars", &result{
			Submitted: ptr(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
			Index:     ptr[int32](3),
			Truncated: ptr(false),
		}, "{Submitted: 2024-05-01T12:00:00Z, Index: 3, Truncated: false}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Prettify(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both empty", &result{}, &result{}, true},
		{"both nil", (*result)(nil), (*result)(nil), true},
		{"nil and empty", (*result)(nil), &result{}, false},
		{"different types", &result{}, &score{}, false},
		{"same values in distinct pointers", &result{Index: ptr[int32](1)}, &result{Index: ptr[int32](1)}, true},
		{"absent vs present", &result{}, &result{Index: ptr[int32](0)}, false},
		{"different values", &result{Sentiment: "POSITIVE"}, &result{Sentiment: "NEGATIVE"}, false},
		{"nested", &result{Score: &score{Positive: ptr[float32](1)}}, &result{Score: &score{Positive: ptr[float32](1)}}, true},
		{"nil vs empty list", &result{}, &result{Tags: []string{}}, false},
		{"list order", &result{Tags: []string{"a", "b"}}, &result{Tags: []string{"b", "a"}}, false},
		{"same instant", &result{Submitted: ptr(at)}, &result{Submitted: ptr(at.In(time.FixedZone("X", 3600)))}, true},
		{"NaN", &score{Positive: ptr(float32(math.NaN()))}, &score{Positive: ptr(float32(math.NaN()))}, true},
		{"unexported ignored", &result{unexported: 1}, &result{unexported: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Equal(tt.a, tt.b))
			require.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := &result{
		Sentiment: "MIXED",
		Score:     &score{Positive: ptr[float32](0.25), Negative: ptr[float32](0.75)},
		Tags:      []string{"x"},
		Submitted: ptr(at),
	}
	b := &result{
		Sentiment: "MIXED",
		Score:     &score{Positive: ptr[float32](0.25), Negative: ptr[float32](0.75)},
		Tags:      []string{"x"},
		Submitted: ptr(at.Local()),
	}

	require.True(t, Equal(a, b))
	require.Equal(t, Hash(a), Hash(b))
	require.Equal(t, Hash(a), Hash(a))

	floats := []struct {
		name string
		a, b *score
	}{
		{"signed zero", &score{Positive: ptr[float32](0)}, &score{Positive: ptr(float32(math.Copysign(0, -1)))}},
		{"NaN payload", &score{Negative: ptr(float32(math.NaN()))}, &score{Negative: ptr(math.Float32frombits(0x7fc00001))}},
	}
	for _, tt := range floats {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Equal(tt.a, tt.b))
			require.Equal(t, Hash(tt.a), Hash(tt.b))
		})
	}

	neg := math.Copysign(0, -1)
	require.Equal(t, Hash(&struct{ F *float64 }{ptr(0.0)}), Hash(&struct{ F *float64 }{ptr(neg)}))
}

func TestHashAbsentFieldsContributeZero(t *testing.T) {
	// 1 followed by one multiplication per field.
	require.Equal(t, 31*31, Hash(&score{}))
	require.Equal(t, 0, Hash((*score)(nil)))
	require.NotEqual(t, Hash(&score{}), Hash(&score{Positive: ptr[float32](1)}))
}
