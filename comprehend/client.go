// Package comprehend is a client for the Amazon Comprehend natural language
// processing service.
//
// Every operation takes a request shape from the model package and returns
// the matching result shape:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	client := comprehend.NewFromConfig(cfg)
//	out, err := client.DetectSentiment(ctx, new(model.DetectSentimentRequest).
//		SetText("I love it").
//		SetLanguageCode(model.LanguageCodeEn))
package comprehend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pricofy/comprehend-go/internal/protocol"
)

const (
	// ServiceID identifies the service in endpoint and error metadata.
	ServiceID = "Comprehend"

	signingName  = "comprehend"
	targetPrefix = "Comprehend_20171127"
)

// ErrNoEndpoint is returned when neither Region nor BaseEndpoint is set.
var ErrNoEndpoint = errors.New("no region or base endpoint configured")

// HTTPClient sends a signed request.
type HTTPClient interface {
	protocol.HTTPClient
}

// Options configures a Client.
type Options struct {
	// Region is the signing region, also used to derive the endpoint.
	Region string

	// BaseEndpoint overrides the regional endpoint, for example a VPC
	// endpoint or a local test server.
	BaseEndpoint *string

	Credentials aws.CredentialsProvider
	HTTPClient  HTTPClient

	// Retryer defaults to retry.NewStandard().
	Retryer aws.Retryer

	// Logger receives a debug event per attempt. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// ValidateRequests checks request constraints before sending. When false
	// the service is the only validator.
	ValidateRequests bool

	// IdempotencyTokenProvider fills ClientRequestToken when the caller left
	// it unset. Defaults to random UUIDs.
	IdempotencyTokenProvider func() string
}

// Copy returns a shallow copy of the options.
func (o Options) Copy() Options {
	return o
}

// Client calls the Comprehend API.
type Client struct {
	options   Options
	transport *protocol.Transport
}

// New returns a client from options, after applying optFns.
func New(options Options, optFns ...func(*Options)) *Client {
	options = options.Copy()
	for _, fn := range optFns {
		fn(&options)
	}
	resolveDefaults(&options)

	return &Client{
		options: options,
		transport: &protocol.Transport{
			Endpoint:     resolveEndpoint(options),
			Region:       options.Region,
			SigningName:  signingName,
			TargetPrefix: targetPrefix,
			Credentials:  options.Credentials,
			HTTPClient:   options.HTTPClient,
			Retryer:      options.Retryer,
			Signer:       v4.NewSigner(),
			Logger:       options.Logger.With().Str("service", ServiceID).Logger(),
		},
	}
}

// NewFromConfig returns a client using the region, credentials, endpoint,
// retryer and HTTP client of cfg.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) *Client {
	opts := Options{
		Region:       cfg.Region,
		BaseEndpoint: cfg.BaseEndpoint,
		Credentials:  cfg.Credentials,
	}
	if cfg.HTTPClient != nil {
		opts.HTTPClient = cfg.HTTPClient
	}
	if cfg.Retryer != nil {
		opts.Retryer = cfg.Retryer()
	}
	return New(opts, optFns...)
}

// Options returns a copy of the client options.
func (c *Client) Options() Options {
	return c.options.Copy()
}

func resolveDefaults(o *Options) {
	if o.HTTPClient == nil {
		o.HTTPClient = awshttp.NewBuildableClient()
	}
	if o.Retryer == nil {
		o.Retryer = retry.NewStandard()
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.IdempotencyTokenProvider == nil {
		o.IdempotencyTokenProvider = uuid.NewString
	}
	if o.Credentials != nil {
		if _, ok := o.Credentials.(*aws.CredentialsCache); !ok {
			o.Credentials = aws.NewCredentialsCache(o.Credentials)
		}
	}
}

func resolveEndpoint(o Options) string {
	if o.BaseEndpoint != nil && *o.BaseEndpoint != "" {
		return strings.TrimSuffix(*o.BaseEndpoint, "/")
	}
	if o.Region == "" {
		return ""
	}
	return "https://" + signingName + "." + o.Region + ".amazonaws.com"
}

// validator is implemented by every request shape.
type validator interface {
	Validate() error
}

// invoke sends one operation and decodes the result into out.
func (c *Client) invoke(ctx context.Context, op string, in validator, out any) error {
	if c.transport.Endpoint == "" {
		return fmt.Errorf("%s: %w", op, ErrNoEndpoint)
	}
	if c.options.ValidateRequests {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := c.transport.Do(ctx, op, in, out); err != nil {
		var re *protocol.ResponseError
		if errors.As(err, &re) {
			err = newServiceError(ServiceError{
				Code:       re.Code,
				Message:    re.Message,
				StatusCode: re.StatusCode,
				RequestID:  re.RequestID,
			})
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
