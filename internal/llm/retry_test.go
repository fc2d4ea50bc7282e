package llm

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

// flakyProvider fails a set number of times before succeeding.
type flakyProvider struct {
	mu       sync.Mutex
	failures int
	err      error
	calls    int
	streams  int
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Response{Content: "ok", Model: "flaky"}, nil
}

func (f *flakyProvider) GenerateStream(_ context.Context, _ Request) (Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streams++
	if f.streams <= f.failures {
		return nil, f.err
	}
	return &mockStream{fragments: []string{"ok"}}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func testRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  1.5,
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, testRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("Content = %q", resp.Content)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrRateLimit{}}
	p := WithRetry(inner, testRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want rate limit", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestAuthNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrAuth{Err: errors.New("bad key")}}
	p := WithRetry(inner, testRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var auth *ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("err = %v, want auth error", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1 (auth errors are terminal)", inner.calls)
	}
}

func TestQuotaNotRetried(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrQuotaExceeded{Err: errors.New("out of credit")}}
	p := WithRetry(inner, testRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var quota *ErrQuotaExceeded
	if !errors.As(err, &quota) {
		t.Fatalf("err = %v, want quota error", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestInvalidResponseRetriedOnce(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrInvalidResponse{Err: errors.New("not json")}}
	p := WithRetry(inner, testRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want invalid response", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", inner.calls)
	}
}

func TestStreamStartRetried(t *testing.T) {
	inner := &flakyProvider{failures: 1, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, testRetryConfig())

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	defer stream.Close()

	frag, err := stream.Recv()
	if err != nil || frag != "ok" {
		t.Fatalf("Recv = %q, %v", frag, err)
	}
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
	if inner.streams != 2 {
		t.Errorf("stream attempts = %d, want 2", inner.streams)
	}
}

func TestContextCancellationNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 10, err: context.Canceled}
	p := WithRetry(inner, testRetryConfig())

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}
