package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Comprehend_20171127", doc.Service.TargetPrefix)
	require.Equal(t, "comprehend", doc.Service.SigningName)

	names := map[string]bool{}
	for _, op := range doc.Operations {
		names[op.Name] = true
	}
	for _, op := range []string{
		"DetectSentiment", "BatchDetectSentiment", "DetectPiiEntities",
		"StartSentimentDetectionJob", "ListSentimentDetectionJobs", "TagResource",
	} {
		assert.True(t, names[op], op)
	}

	require.NotNil(t, doc.Shape("DetectSentimentRequest"))
	require.NotNil(t, doc.Enum("LanguageCode"))
	require.Nil(t, doc.Shape("NoSuchShape"))
}

func TestValidatedReachesNestedShapes(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	require.True(t, doc.Validated("StartSentimentDetectionJobRequest"))
	require.True(t, doc.Validated("InputDataConfig"), "nested request members are validated")
	require.False(t, doc.Validated("DetectSentimentResult"))
	require.False(t, doc.Validated("SentimentScore"))
}

func TestPaginatedOperationsHaveTokens(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	ops := doc.PaginatedOperations()
	require.NotEmpty(t, ops)
	for _, op := range ops {
		assert.True(t, doc.Shape(op.Input()).HasField("NextToken"), op.Name)
		assert.True(t, doc.Shape(op.Output()).HasField("NextToken"), op.Name)
	}
}

func TestParseRejectsBrokenDescriptions(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "not yaml",
			yaml:   "shapes: [",
			errMsg: "failed to parse service description",
		},
		{
			name: "unknown enum",
			yaml: `
shapes:
  - name: A
    group: g
    fields:
      - {name: X, type: "enum:Missing"}
`,
			errMsg: "shape A field X: unknown enum Missing",
		},
		{
			name: "unknown scalar",
			yaml: `
shapes:
  - name: A
    group: g
    fields:
      - {name: X, type: uint8}
`,
			errMsg: `shape A field X: unknown type "uint8"`,
		},
		{
			name: "missing group",
			yaml: `
shapes:
  - name: A
`,
			errMsg: "shape A has no group",
		},
		{
			name: "duplicate field",
			yaml: `
shapes:
  - name: A
    group: g
    fields:
      - {name: X, type: string}
      - {name: X, type: string}
`,
			errMsg: "shape A: duplicate field X",
		},
		{
			name: "operation without shapes",
			yaml: `
operations:
  - name: Ping
`,
			errMsg: "operation Ping: missing request shape PingRequest",
		},
		{
			name: "paginated without token",
			yaml: `
shapes:
  - {name: ListRequest, group: g, kind: request}
  - {name: ListResult, group: g, kind: result}
operations:
  - {name: List, paginated: true}
`,
			errMsg: "operation List: paginated without NextToken",
		},
		{
			name: "unknown error",
			yaml: `
shapes:
  - {name: PingRequest, group: g, kind: request}
  - {name: PingResult, group: g, kind: result}
operations:
  - {name: Ping, errors: [NopeException]}
`,
			errMsg: "operation Ping: unknown error NopeException",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConstName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"IN_PROGRESS", "InProgress"},
		{"zh-TW", "ZhTw"},
		{"en", "En"},
		{"POSITIVE", "Positive"},
		{"DATE_TIME", "DateTime"},
		{"ONE_DOC_PER_LINE", "OneDocPerLine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConstName(tt.in), tt.in)
	}
}

func TestFieldTypes(t *testing.T) {
	limit := 25
	tests := []struct {
		field    Field
		goType   string
		getter   string
		zero     string
		validate string
	}{
		{Field{Name: "Text", Type: "string", Required: true}, "*string", "string", `""`, "required"},
		{Field{Name: "Score", Type: "float32"}, "*float32", "float32", "0", ""},
		{Field{Name: "LanguageCode", Type: "enum:LanguageCode", Required: true}, "LanguageCode", "LanguageCode", `""`, "required"},
		{Field{Name: "Score", Type: "shape:SentimentScore"}, "*SentimentScore", "*SentimentScore", "nil", ""},
		{Field{Name: "SubmitTime", Type: "timestamp"}, "*time.Time", "time.Time", "time.Time{}", ""},
		{Field{Name: "TextList", Type: "string", List: true, Required: true, Max: &limit}, "[]string", "[]string", "nil", "required,max=25"},
		{Field{Name: "Tags", Type: "shape:Tag", List: true}, "[]Tag", "[]Tag", "nil", "omitempty,dive"},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			assert.Equal(t, tt.goType, tt.field.GoType())
			assert.Equal(t, tt.getter, tt.field.GetterType())
			assert.Equal(t, tt.zero, tt.field.Zero())
			assert.Equal(t, tt.validate, tt.field.ValidateTag())
		})
	}
}

func TestTagOnlyValidatesRequestSide(t *testing.T) {
	f := Field{Name: "Text", Type: "string", Required: true}
	require.Equal(t, "`json:\"Text,omitempty\" validate:\"required\"`", f.Tag(true))
	require.Equal(t, "`json:\"Text,omitempty\"`", f.Tag(false))
}
