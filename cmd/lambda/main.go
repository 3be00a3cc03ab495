// Package main is the entry point for the text analyzer Lambda function.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/pricofy/comprehend-go/internal/config"
	"github.com/pricofy/comprehend-go/internal/domain"
	"github.com/pricofy/comprehend-go/internal/handler"
	"github.com/pricofy/comprehend-go/internal/logger"
	"github.com/pricofy/comprehend-go/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}
	logger.Init(cfg.LoggerOptions())

	// The router holds the Comprehend client, so it is shared by every
	// invocation of a warm instance.
	r, err := router.New(context.Background(), cfg)
	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to create router")
		os.Exit(1)
	}

	h := handler.New(r, cfg)
	logger.Get().Info().
		Str("region", cfg.Region).
		Int("concurrency", cfg.Concurrency).
		Str("environment", cfg.Environment).
		Msg("text analyzer starting")

	lambda.Start(func(ctx context.Context, event json.RawMessage) (any, error) {
		return handleRequest(ctx, h, event)
	})
}

func handleRequest(ctx context.Context, h *handler.Handler, event json.RawMessage) (any, error) {
	// Warmup detection (MUST be first - before any other processing)
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	// Parse the request and delegate to the handler
	var req domain.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return h.Handle(ctx, req)
}
