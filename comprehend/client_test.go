package comprehend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/comprehend-go/model"
)

// fakeComprehend records requests and answers each operation from a table.
type fakeComprehend struct {
	t *testing.T

	mu       sync.Mutex
	requests []recorded
	replies  map[string][]reply
}

type recorded struct {
	Target string
	Body   map[string]any
}

type reply struct {
	status int
	body   string
}

func newFake(t *testing.T) (*fakeComprehend, *Client) {
	f := &fakeComprehend{t: t, replies: map[string][]reply{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	client := New(Options{
		Region:       "eu-west-1",
		BaseEndpoint: aws.String(srv.URL),
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		Retryer: retry.NewStandard(func(o *retry.StandardOptions) {
			o.MaxAttempts = 2
			o.Backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) { return 0, nil })
		}),
		IdempotencyTokenProvider: func() string { return "generated-token" },
	})
	return f, client
}

func (f *fakeComprehend) on(op string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[op] = append(f.replies[op], reply{status: status, body: body})
}

func (f *fakeComprehend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := r.Header.Get("X-Amz-Target")
	op := target[len(targetPrefix)+1:]

	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	assert.NoError(f.t, json.Unmarshal(raw, &body))

	f.mu.Lock()
	f.requests = append(f.requests, recorded{Target: target, Body: body})
	queue := f.replies[op]
	var rep reply
	if len(queue) > 0 {
		rep = queue[0]
		if len(queue) > 1 {
			f.replies[op] = queue[1:]
		}
	}
	f.mu.Unlock()

	if rep.status == 0 {
		rep.status = http.StatusOK
	}
	w.Header().Set("X-Amzn-Requestid", "11111111-2222-3333-4444-555555555555")
	w.WriteHeader(rep.status)
	_, _ = w.Write([]byte(rep.body))
}

func (f *fakeComprehend) calls() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.requests...)
}

func TestDetectSentiment(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectSentiment", 200, `{
		"Sentiment": "POSITIVE",
		"SentimentScore": {"Positive": 0.97, "Negative": 0.01, "Neutral": 0.015, "Mixed": 0.005}
	}`)

	out, err := client.DetectSentiment(context.Background(), new(model.DetectSentimentRequest).
		SetText("I love it").
		SetLanguageCode(model.LanguageCodeEn))
	require.NoError(t, err)

	require.Equal(t, model.SentimentTypePositive, out.GetSentiment())
	require.InDelta(t, 0.97, out.GetSentimentScore().GetPositive(), 1e-6)
	require.Contains(t, out.String(), "Sentiment: POSITIVE")
	require.Contains(t, out.String(), "Positive: 0.97")

	calls := f.calls()
	require.Len(t, calls, 1)
	require.Equal(t, "Comprehend_20171127.DetectSentiment", calls[0].Target)
	require.Equal(t, map[string]any{"Text": "I love it", "LanguageCode": "en"}, calls[0].Body)
}

func TestNilInputSendsEmptyDocument(t *testing.T) {
	f, client := newFake(t)
	f.on("ListTagsForResource", 200, `{"Tags": []}`)

	out, err := client.ListTagsForResource(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, out.Tags)
	require.Empty(t, out.Tags)
	require.Equal(t, map[string]any{}, f.calls()[0].Body)
}

func TestUnknownEnumValueIsPreserved(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectSentiment", 200, `{"Sentiment": "SARCASTIC"}`)

	out, err := client.DetectSentiment(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, model.SentimentType("SARCASTIC"), out.Sentiment)
	require.False(t, out.Sentiment.IsKnown())
}

func TestServiceErrors(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectSentiment", 400, `{"__type":"com.amazonaws.comprehend#TextSizeLimitExceededException","message":"Input text size exceeds limit"}`)

	_, err := client.DetectSentiment(context.Background(), new(model.DetectSentimentRequest).SetText("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "DetectSentiment: TextSizeLimitExceededException")

	var typed *TextSizeLimitExceededException
	require.True(t, errors.As(err, &typed))
	require.Equal(t, "Input text size exceeds limit", typed.Message)
	require.Equal(t, 400, typed.StatusCode)
	require.Equal(t, "11111111-2222-3333-4444-555555555555", typed.RequestID)

	var apiErr smithy.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "TextSizeLimitExceededException", apiErr.ErrorCode())
	require.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
}

func TestUnmodelledErrorCode(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectSentiment", 403, `{"__type":"AccessDeniedException","Message":"denied"}`)

	_, err := client.DetectSentiment(context.Background(), nil)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	require.Equal(t, "AccessDeniedException", svcErr.Code)
	require.Equal(t, "denied", svcErr.Message)
}

func TestServerFaultIsRetried(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectDominantLanguage", 500, `{"__type":"InternalServerException","message":"boom"}`)
	f.on("DetectDominantLanguage", 500, `{"__type":"InternalServerException","message":"boom"}`)

	_, err := client.DetectDominantLanguage(context.Background(), new(model.DetectDominantLanguageRequest).SetText("hola"))

	var internal *InternalServerException
	require.True(t, errors.As(err, &internal))
	require.Equal(t, smithy.FaultServer, internal.ErrorFault())
	require.Len(t, f.calls(), 2)
}

func TestIdempotencyToken(t *testing.T) {
	newRequest := func() *model.StartSentimentDetectionJobRequest {
		return new(model.StartSentimentDetectionJobRequest).
			SetInputDataConfig(new(model.InputDataConfig).SetS3Uri("s3://bucket/in/")).
			SetOutputDataConfig(new(model.OutputDataConfig).SetS3Uri("s3://bucket/out/")).
			SetDataAccessRoleArn("arn:aws:iam::123456789012:role/comprehend").
			SetLanguageCode(model.LanguageCodeEn)
	}

	t.Run("generated when absent", func(t *testing.T) {
		f, client := newFake(t)
		f.on("StartSentimentDetectionJob", 200, `{"JobId":"1","JobStatus":"SUBMITTED"}`)

		in := newRequest()
		out, err := client.StartSentimentDetectionJob(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, model.JobStatusSubmitted, out.JobStatus)

		require.Equal(t, "generated-token", f.calls()[0].Body["ClientRequestToken"])
		require.Nil(t, in.ClientRequestToken, "caller's request must not be modified")
	})

	t.Run("caller token kept", func(t *testing.T) {
		f, client := newFake(t)
		f.on("StartSentimentDetectionJob", 200, `{}`)

		_, err := client.StartSentimentDetectionJob(context.Background(), newRequest().SetClientRequestToken("mine"))
		require.NoError(t, err)
		require.Equal(t, "mine", f.calls()[0].Body["ClientRequestToken"])
	})
}

func TestDescribeJobTimestamps(t *testing.T) {
	f, client := newFake(t)
	f.on("DescribeSentimentDetectionJob", 200, `{
		"SentimentDetectionJobProperties": {
			"JobId": "abc",
			"JobStatus": "COMPLETED",
			"SubmitTime": 1714564800.25,
			"EndTime": 1714568400
		}
	}`)

	out, err := client.DescribeSentimentDetectionJob(context.Background(), new(model.DescribeSentimentDetectionJobRequest).SetJobId("abc"))
	require.NoError(t, err)

	props := out.GetSentimentDetectionJobProperties()
	require.Equal(t, model.JobStatusCompleted, props.GetJobStatus())
	require.True(t, props.GetSubmitTime().Equal(time.Date(2024, 5, 1, 12, 0, 0, 250_000_000, time.UTC)))
	require.Equal(t, time.Hour-250*time.Millisecond, props.GetEndTime().Sub(props.GetSubmitTime()))
}

func TestValidateRequests(t *testing.T) {
	f, client := newFake(t)
	client.options.ValidateRequests = true

	_, err := client.DetectSentiment(context.Background(), new(model.DetectSentimentRequest).SetText("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "LanguageCode")
	require.Empty(t, f.calls())
}

func TestValidationIsOffByDefault(t *testing.T) {
	f, client := newFake(t)
	f.on("DetectSentiment", 400, `{"__type":"InvalidRequestException","message":"LanguageCode is required"}`)

	_, err := client.DetectSentiment(context.Background(), new(model.DetectSentimentRequest).SetText("x"))

	var invalid *InvalidRequestException
	require.True(t, errors.As(err, &invalid))
	require.Len(t, f.calls(), 1)
}

func TestNoEndpoint(t *testing.T) {
	client := New(Options{Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", "")})
	_, err := client.DetectSentiment(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoEndpoint)
}

func TestNewFromConfig(t *testing.T) {
	cfg := aws.Config{
		Region:      "ap-southeast-2",
		Credentials: credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
	}
	client := NewFromConfig(cfg, func(o *Options) { o.ValidateRequests = true })

	opts := client.Options()
	require.Equal(t, "ap-southeast-2", opts.Region)
	require.True(t, opts.ValidateRequests)
	require.NotNil(t, opts.Retryer)
	require.NotNil(t, opts.IdempotencyTokenProvider)
	require.Equal(t, "https://comprehend.ap-southeast-2.amazonaws.com", client.transport.Endpoint)
}
