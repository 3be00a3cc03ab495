package protocol

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type status string

type config struct {
	Mode  status   `json:"Mode,omitempty"`
	Types []status `json:"EntityTypes,omitempty"`
}

type job struct {
	Name       *string    `json:"JobName,omitempty"`
	Status     status     `json:"JobStatus,omitempty"`
	Submitted  *time.Time `json:"SubmitTime,omitempty"`
	Count      *int32     `json:"NumberOfTopics,omitempty"`
	Score      *float32   `json:"Score,omitempty"`
	Truncated  *bool      `json:"Truncated,omitempty"`
	Texts      []string   `json:"TextList,omitempty"`
	Config     *config    `json:"RedactionConfig,omitempty"`
	Configs    []config   `json:"Configs,omitempty"`
	unexported string
}

func ptr[T any](v T) *T { return &v }

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", (*job)(nil), `{}`},
		{"empty", &job{}, `{}`},
		{"scalars", &job{
			Name:      ptr("nightly"),
			Status:    "IN_PROGRESS",
			Count:     ptr[int32](10),
			Truncated: ptr(false),
		}, `{"JobName":"nightly","JobStatus":"IN_PROGRESS","NumberOfTopics":10,"Truncated":false}`},
		{"epoch seconds", &job{
			Submitted: ptr(time.Date(2024, 5, 1, 12, 0, 0, 500_000_000, time.UTC)),
		}, `{"SubmitTime":1714564800.5}`},
		{"nested and lists", &job{
			Texts:   []string{"a", "b"},
			Config:  &config{Mode: "MASK", Types: []status{"NAME"}},
			Configs: []config{{}},
		}, `{"TextList":["a","b"],"RedactionConfig":{"Mode":"MASK","EntityTypes":["NAME"]},"Configs":[{}]}`},
		{"empty list is sent", &job{Texts: []string{}}, `{"TextList":[]}`},
		{"unexported skipped", &job{unexported: "x"}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.in)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMarshalRejectsNonShape(t *testing.T) {
	_, err := Marshal("text")
	require.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	body := `{
		"JobName": "nightly",
		"JobStatus": "SOMETHING_NEW",
		"SubmitTime": 1714564800,
		"NumberOfTopics": 7,
		"Score": 0.97,
		"Truncated": true,
		"TextList": ["x"],
		"RedactionConfig": {"Mode": "REPLACE_WITH_PII_ENTITY_TYPE", "EntityTypes": ["SSN", "EMAIL"]},
		"Configs": [{"Mode": "MASK"}],
		"Unknown": {"nested": [1, 2, 3]}
	}`

	var got job
	require.NoError(t, Unmarshal([]byte(body), &got))

	require.Equal(t, "nightly", *got.Name)
	require.Equal(t, status("SOMETHING_NEW"), got.Status)
	require.True(t, got.Submitted.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, int32(7), *got.Count)
	require.InDelta(t, 0.97, *got.Score, 1e-6)
	require.True(t, *got.Truncated)
	require.Equal(t, []string{"x"}, got.Texts)
	require.Equal(t, status("REPLACE_WITH_PII_ENTITY_TYPE"), got.Config.Mode)
	require.Equal(t, []status{"SSN", "EMAIL"}, got.Config.Types)
	require.Len(t, got.Configs, 1)
}

func TestUnmarshalEmptyAndNull(t *testing.T) {
	var got job
	require.NoError(t, Unmarshal(nil, &got))
	require.NoError(t, Unmarshal([]byte("  "), &got))
	require.NoError(t, Unmarshal([]byte(`{"JobName": null}`), &got))
	require.Nil(t, got.Name)
}

func TestUnmarshalNonFinite(t *testing.T) {
	var got job
	require.NoError(t, Unmarshal([]byte(`{"Score": "NaN"}`), &got))
	require.True(t, math.IsNaN(float64(*got.Score)))
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"string for number", `{"NumberOfTopics": "seven"}`},
		{"number for string", `{"JobName": 1}`},
		{"object for list", `{"TextList": {}}`},
		{"overflow", `{"NumberOfTopics": 4294967296}`},
		{"malformed", `{"JobName":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got job
			require.Error(t, Unmarshal([]byte(tt.body), &got))
		})
	}
}
