package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 4,
		InitialWait: 2 * time.Second,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}

// newTestRetry returns a retrying provider whose waits are recorded
// instead of slept.
func newTestRetry(inner Provider) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	p := WithRetry(inner, retryConfig(), nil).(*RetryProvider)
	p.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return p, &waits
}

func rateLimited() MockResponse {
	return MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockJSON(`{"ok":true}`))
	p, waits := newTestRetry(mock)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 || len(*waits) != 0 {
		t.Fatalf("expected 1 call and no waits, got %d calls %v", mock.CallCount(), *waits)
	}
}

func TestRetry_RateLimitBackoffGrows(t *testing.T) {
	mock := NewMockProvider(rateLimited(), rateLimited(), rateLimited(), MockJSON(`{"ok":true}`))
	p, waits := newTestRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 calls, got %d", mock.CallCount())
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	if len(*waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), *waits)
	}
	for i, w := range *waits {
		lo, hi := want[i]*8/10, want[i]*12/10
		if w < lo || w > hi {
			t.Errorf("wait %d = %s, want within 20%% of %s", i, w, want[i])
		}
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(rateLimited(), rateLimited(), rateLimited(), rateLimited(), MockJSON(`{}`))
	p, waits := newTestRetry(mock)

	_, err := p.Generate(context.Background(), Request{})
	if !IsRateLimited(err) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 calls, got %d", mock.CallCount())
	}
	if len(*waits) != 3 {
		t.Fatalf("expected no wait after the last attempt, got %v", *waits)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockJSON(`{"ok":true}`),
	)
	p, _ := newTestRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Limit: 10, Content: json.RawMessage(`{}`)}})
	p, _ := newTestRetry(mock)

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, MockJSON(`{"ok":true}`))
	p, _ := newTestRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellationStopsWaiting(t *testing.T) {
	mock := NewMockProvider(rateLimited(), MockJSON(`{"ok":true}`))
	p := WithRetry(mock, retryConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("retry kept sleeping after cancellation")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 5 * time.Second, Err: errors.New("429")}},
		MockJSON(`{"ok":true}`),
	)
	p, waits := newTestRetry(mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*waits) != 1 || (*waits)[0] != 5*time.Second {
		t.Fatalf("expected a single 5s wait, got %v", *waits)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig(), nil)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
