package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"off", "disabled"},
		{"", "info"},
		{"   nonsense   ", "info"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, parseLevel(c.in).String(), c.in)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "comprehend-analyzer",
		Writer:       &buf,
		StaticFields: map[string]string{"stage": "test"},
	})

	log.Debug().Str("analysis", "sentiment").Msg("batch done")

	out := buf.String()
	require.Contains(t, out, `"service":"comprehend-analyzer"`)
	require.Contains(t, out, `"stage":"test"`)
	require.Contains(t, out, `"analysis":"sentiment"`)
	require.Contains(t, out, `"message":"batch done"`)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Writer: &buf})
	log.Info().Msg("hidden")
	require.Empty(t, buf.String())
}

func TestGetNamedAndC(t *testing.T) {
	require.NotNil(t, Get())
	require.Same(t, Get(), Named(""))
	require.NotNil(t, Named("router"))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})
	require.NotNil(t, C(ctx))
	require.NotNil(t, C(context.Background()))
}
