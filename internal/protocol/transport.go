// Package protocol implements the AWS JSON 1.1 wire protocol spoken by the
// Comprehend service: request encoding, SigV4 signing, retries and error
// response parsing.
package protocol

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/rs/zerolog"
)

const contentType = "application/x-amz-json-1.1"

// HTTPClient sends a signed request.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Transport sends operations to one regional endpoint.
type Transport struct {
	Endpoint     string
	Region       string
	SigningName  string
	TargetPrefix string

	Credentials aws.CredentialsProvider
	HTTPClient  HTTPClient
	Retryer     aws.Retryer
	Signer      *v4.Signer
	Logger      zerolog.Logger

	// Now is the signing clock.
	Now func() time.Time
}

// Do sends op with the encoded input and decodes the response into out.
// Retryable failures are retried as the Retryer decides; the last error is
// returned, a service failure as *ResponseError.
func (t *Transport) Do(ctx context.Context, op string, in, out any) error {
	body, err := Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	maxAttempts := 1
	if t.Retryer != nil {
		maxAttempts = t.Retryer.MaxAttempts()
	}

	var releaseRetry func(error) error
	for attempt := 1; ; attempt++ {
		releaseAttempt, err := t.attemptToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to get attempt token: %w", err)
		}

		start := time.Now()
		data, status, err := t.send(ctx, op, body)
		_ = releaseAttempt(err)
		if releaseRetry != nil {
			_ = releaseRetry(err)
			releaseRetry = nil
		}
		t.Logger.Debug().
			Str("operation", op).
			Int("attempt", attempt).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("comprehend call")

		if err == nil {
			return Unmarshal(data, out)
		}
		if t.Retryer == nil || attempt >= maxAttempts || !t.Retryer.IsErrorRetryable(err) {
			return err
		}

		// the retry quota bounds how many retries run across the client
		release, terr := t.retryToken(ctx, err)
		if terr != nil {
			return terr
		}
		releaseRetry = release

		delay, derr := t.Retryer.RetryDelay(attempt, err)
		if derr != nil {
			return errors.Join(err, derr)
		}
		if serr := sleep(ctx, delay); serr != nil {
			return errors.Join(err, serr)
		}
	}
}

func (t *Transport) attemptToken(ctx context.Context) (func(error) error, error) {
	switch r := t.Retryer.(type) {
	case nil:
		return nopRelease, nil
	case aws.RetryerV2:
		return r.GetAttemptToken(ctx)
	default:
		return r.GetInitialToken(), nil
	}
}

// retryToken takes a retry token for opErr. On failure the returned error
// joins opErr with the quota error.
func (t *Transport) retryToken(ctx context.Context, opErr error) (func(error) error, error) {
	release, err := t.Retryer.GetRetryToken(ctx, opErr)
	if err != nil {
		return nil, errors.Join(opErr, err)
	}
	return release, nil
}

func nopRelease(error) error { return nil }

// send performs one signed attempt and returns the body of a 2xx response.
func (t *Transport) send(ctx context.Context, op string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint+"/", bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", t.TargetPrefix+"."+op)
	req.ContentLength = int64(len(body))

	if err := t.sign(ctx, req, body); err != nil {
		return nil, 0, err
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, parseError(resp, data)
	}
	return data, resp.StatusCode, nil
}

func (t *Transport) sign(ctx context.Context, req *http.Request, body []byte) error {
	if t.Credentials == nil {
		return errors.New("no credentials provider configured")
	}
	creds, err := t.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve credentials: %w", err)
	}

	sum := sha256.Sum256(body)
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	signer := t.Signer
	if signer == nil {
		signer = v4.NewSigner()
	}
	if err := signer.SignHTTP(ctx, creds, req, hex.EncodeToString(sum[:]), t.SigningName, t.Region, now().UTC()); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
