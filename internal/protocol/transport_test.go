package protocol

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detectRequest struct {
	Text *string `json:"Text,omitempty"`
}

type detectResult struct {
	Sentiment status `json:"Sentiment,omitempty"`
}

func noDelayRetryer(attempts int) aws.Retryer {
	return retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = attempts
		o.Backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) {
			return 0, nil
		})
	})
}

func newTransport(url string, retryer aws.Retryer) *Transport {
	return &Transport{
		Endpoint:     url,
		Region:       "us-east-1",
		SigningName:  "comprehend",
		TargetPrefix: "Comprehend_20171127",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		HTTPClient:   http.DefaultClient,
		Retryer:      retryer,
		Logger:       zerolog.Nop(),
	}
}

func TestTransportDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "application/x-amz-json-1.1", r.Header.Get("Content-Type"))
		assert.Equal(t, "Comprehend_20171127.DetectSentiment", r.Header.Get("X-Amz-Target"))

		auth := r.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKID/"), auth)
		assert.Contains(t, auth, "/us-east-1/comprehend/aws4_request")
		assert.NotEmpty(t, r.Header.Get("X-Amz-Date"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"Text":"I love it"}`, string(body))

		w.Header().Set("X-Amzn-Requestid", "req-1")
		_, _ = w.Write([]byte(`{"Sentiment":"POSITIVE"}`))
	}))
	defer srv.Close()

	var out detectResult
	err := newTransport(srv.URL, noDelayRetryer(3)).Do(context.Background(), "DetectSentiment", &detectRequest{Text: ptr("I love it")}, &out)
	require.NoError(t, err)
	require.Equal(t, status("POSITIVE"), out.Sentiment)
}

func TestTransportServiceError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  string
		body    string
		code    string
		message string
	}{
		{
			name:    "type with namespace",
			status:  400,
			body:    `{"__type":"com.amazonaws.comprehend#InvalidRequestException","message":"bad text"}`,
			code:    "InvalidRequestException",
			message: "bad text",
		},
		{
			name:    "header wins",
			status:  400,
			header:  "UnsupportedLanguageException:http://internal.amazon.com/coral/com.amazonaws.comprehend/",
			body:    `{"__type":"Other","Message":"no such language"}`,
			code:    "UnsupportedLanguageException",
			message: "no such language",
		},
		{
			name:    "not json",
			status:  403,
			body:    `<html>forbidden</html>`,
			code:    "UnknownError",
			message: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("X-Amzn-Errortype", tt.header)
				}
				w.Header().Set("X-Amzn-Requestid", "req-2")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTransport(srv.URL, noDelayRetryer(3)).Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})

			var re *ResponseError
			require.True(t, errors.As(err, &re), "got %v", err)
			require.Equal(t, tt.code, re.Code)
			require.Equal(t, tt.message, re.Message)
			require.Equal(t, tt.status, re.StatusCode)
			require.Equal(t, "req-2", re.RequestID)

			var apiErr smithy.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
		})
	}
}

func TestTransportRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"__type":"InternalServerException","message":"oops"}`))
			return
		}
		_, _ = w.Write([]byte(`{"Sentiment":"NEUTRAL"}`))
	}))
	defer srv.Close()

	var out detectResult
	err := newTransport(srv.URL, noDelayRetryer(3)).Do(context.Background(), "DetectSentiment", &detectRequest{}, &out)
	require.NoError(t, err)
	require.Equal(t, int32(3), calls.Load())
	require.Equal(t, status("NEUTRAL"), out.Sentiment)
}

func TestTransportGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"TooManyRequestsException","message":"slow down"}`))
	}))
	defer srv.Close()

	err := newTransport(srv.URL, noDelayRetryer(2)).Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})
	var re *ResponseError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "TooManyRequestsException", re.Code)
	require.Equal(t, int32(2), calls.Load())
}

func TestTransportDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"InvalidRequestException","message":"no"}`))
	}))
	defer srv.Close()

	err := newTransport(srv.URL, noDelayRetryer(3)).Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestTransportRetrySleepHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 5
		o.Backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) {
			return time.Hour, nil
		})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := newTransport(srv.URL, retryer).Do(ctx, "DetectSentiment", &detectRequest{}, &detectResult{})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	var re *ResponseError
	require.True(t, errors.As(err, &re), "the failure being retried is kept")
	require.Equal(t, http.StatusServiceUnavailable, re.StatusCode)
}

// countingRetryer records retry token use around a standard retryer.
type countingRetryer struct {
	aws.RetryerV2
	taken    atomic.Int32
	released atomic.Int32
}

func (r *countingRetryer) GetRetryToken(ctx context.Context, opErr error) (func(error) error, error) {
	release, err := r.RetryerV2.GetRetryToken(ctx, opErr)
	if err != nil {
		return nil, err
	}
	r.taken.Add(1)
	return func(err error) error {
		r.released.Add(1)
		return release(err)
	}, nil
}

func TestTransportTakesRetryTokens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	retryer := &countingRetryer{RetryerV2: noDelayRetryer(3).(aws.RetryerV2)}
	err := newTransport(srv.URL, retryer).Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})
	require.NoError(t, err)
	require.Equal(t, int32(2), retryer.taken.Load())
	require.Equal(t, int32(2), retryer.released.Load())
}

func TestTransportStopsWhenRetryQuotaIsExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"__type":"InternalServerException","message":"oops"}`))
	}))
	defer srv.Close()

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 5
		o.RateLimiter = ratelimit.NewTokenRateLimit(0)
	})

	err := newTransport(srv.URL, retryer).Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})
	require.Equal(t, int32(1), calls.Load())

	var re *ResponseError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "InternalServerException", re.Code)
	var quota ratelimit.QuotaExceededError
	require.True(t, errors.As(err, &quota))
}

func TestTransportWithoutCredentials(t *testing.T) {
	tr := newTransport("http://127.0.0.1:1", nil)
	tr.Credentials = nil
	err := tr.Do(context.Background(), "DetectSentiment", &detectRequest{}, &detectResult{})
	require.ErrorContains(t, err, "no credentials provider")
}

func TestSanitizeCode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"InvalidRequestException", "InvalidRequestException"},
		{"com.amazonaws.comprehend#InvalidRequestException", "InvalidRequestException"},
		{"ResourceInUseException:http://internal/", "ResourceInUseException"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sanitizeCode(tt.in), tt.in)
	}
}
