package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type fakeInvoker struct {
	mu     sync.Mutex
	inputs []*lambdasdk.InvokeInput
	err    error
}

func (f *fakeInvoker) Invoke(_ context.Context, in *lambdasdk.InvokeInput, _ ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return &lambdasdk.InvokeOutput{}, f.err
}

func withInvoker(t *testing.T, inv invoker) {
	prev := newInvoker
	newInvoker = func(context.Context) (invoker, error) { return inv, nil }
	t.Cleanup(func() { newInvoker = prev })
}

func TestIsWarmupEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       string
		isWarmup    bool
		concurrency int
	}{
		{"warmup", `{"source":"warmup"}`, true, 0},
		{"warmup with concurrency", `{"source":"warmup","concurrency":3}`, true, 3},
		{"concurrency is capped", `{"source":"warmup","concurrency":1000}`, true, MaxWarmupConcurrency},
		{"negative concurrency", `{"source":"warmup","concurrency":-2}`, true, 0},
		{"other source", `{"source":"aws.events"}`, false, 0},
		{"analysis request", `{"texts":["hi"],"analyses":["sentiment"]}`, false, 0},
		{"not json", `hello`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warmup, ok := IsWarmupEvent(json.RawMessage(tt.event))
			if ok != tt.isWarmup {
				t.Fatalf("IsWarmupEvent() ok = %v, want %v", ok, tt.isWarmup)
			}
			if ok && warmup.Concurrency != tt.concurrency {
				t.Errorf("Concurrency = %d, want %d", warmup.Concurrency, tt.concurrency)
			}
		})
	}
}

func TestHandleWarmupSelfInvokes(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "text-analyzer")
	inv := &fakeInvoker{}
	withInvoker(t, inv)

	out, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 3})
	if err != nil {
		t.Fatalf("HandleWarmup() unexpected error: %v", err)
	}
	body := out.(map[string]any)["body"].(WarmupResponse)
	if body.InstancesWarmed != 4 {
		t.Errorf("InstancesWarmed = %d, want 4", body.InstancesWarmed)
	}

	if len(inv.inputs) != 3 {
		t.Fatalf("got %d invocations, want 3", len(inv.inputs))
	}
	for _, in := range inv.inputs {
		if *in.FunctionName != "text-analyzer" || in.InvocationType != types.InvocationTypeEvent {
			t.Errorf("unexpected invocation %+v", in)
		}
		var child WarmupEvent
		if err := json.Unmarshal(in.Payload, &child); err != nil || child.Concurrency != 0 {
			t.Errorf("child payload = %s", in.Payload)
		}
	}
}

func TestHandleWarmupInvokeFailure(t *testing.T) {
	withInvoker(t, &fakeInvoker{err: errors.New("throttled")})

	out, err := HandleWarmup(context.Background(), &WarmupEvent{Source: WarmupSource, Concurrency: 2})
	if err != nil {
		t.Fatalf("HandleWarmup() unexpected error: %v", err)
	}
	if body := out.(map[string]any)["body"].(WarmupResponse); body.InstancesWarmed != 1 {
		t.Errorf("InstancesWarmed = %d, want 1", body.InstancesWarmed)
	}
}
