package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/comprehend-go/internal/schema"
)

func generated(t *testing.T) map[string]string {
	t.Helper()
	doc, err := schema.Load()
	require.NoError(t, err)
	files, err := Generate(doc)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func TestGenerateFileSet(t *testing.T) {
	files := generated(t)

	for _, path := range []string{
		"model/enums.go",
		"model/shapes_sentiment.go",
		"model/shapes_common.go",
		"comprehend/api_operations.go",
		"comprehend/api_paginators.go",
		"comprehend/api_errors.go",
	} {
		require.Contains(t, files, path)
		assert.True(t, strings.HasPrefix(files[path], "// Code generated by shapegen. DO NOT EDIT."), path)
	}
}

func TestGeneratedFilesAreCurrent(t *testing.T) {
	for path, want := range generated(t) {
		got, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(path)))
		require.NoError(t, err, path)
		require.Equal(t, want, string(got), "%s is stale, run go generate ./model", path)
	}
}

func TestGenerateShapeAccessors(t *testing.T) {
	src := generated(t)["model/shapes_sentiment.go"]

	for _, want := range []string{
		"type DetectSentimentRequest struct {",
		"func (s *DetectSentimentRequest) GetText() string {",
		"func (s *DetectSentimentRequest) SetText(v string) *DetectSentimentRequest {",
		"func (s *BatchDetectSentimentRequest) SetTextList(v []string) *BatchDetectSentimentRequest {",
		"func (s *BatchDetectSentimentRequest) AppendTextList(v ...string) *BatchDetectSentimentRequest {",
		"func (s DetectSentimentResult) String() string {",
		"func (s *DetectSentimentRequest) Validate() error {",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "func (s *DetectSentimentResult) Validate() error")
}

func TestGenerateOperations(t *testing.T) {
	files := generated(t)

	ops := files["comprehend/api_operations.go"]
	assert.Contains(t, ops, "func (c *Client) DetectSentiment(ctx context.Context, in *model.DetectSentimentRequest) (*model.DetectSentimentResult, error) {")
	assert.Contains(t, ops, `c.invoke(ctx, "DetectSentiment", in, out)`)
	assert.Contains(t, ops, "c.options.IdempotencyTokenProvider()")

	pages := files["comprehend/api_paginators.go"]
	assert.Contains(t, pages, "func NewListFlywheelsPaginator(c *Client, in *model.ListFlywheelsRequest) *Paginator[model.ListFlywheelsResult] {")
	assert.NotContains(t, pages, "NewDetectSentimentPaginator")

	errs := files["comprehend/api_errors.go"]
	assert.Contains(t, errs, "type TooManyRequestsException struct {")
	assert.Contains(t, errs, `case "InternalServerException":`)
}

func TestComment(t *testing.T) {
	assert.Equal(t, "", comment("", "   "))
	assert.Equal(t, "\t// short line", comment("\t", "short   line"))

	long := strings.Repeat("word ", 30)
	got := comment("", long)
	for _, line := range strings.Split(got, "\n") {
		require.True(t, strings.HasPrefix(line, "// "))
		assert.LessOrEqual(t, len(line)-3, commentWidth)
	}
}

func TestLcfirst(t *testing.T) {
	assert.Equal(t, "detectSentiment", lcfirst("DetectSentiment"))
	assert.Equal(t, "", lcfirst(""))
}
