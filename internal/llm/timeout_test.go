package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}

func TestWithTimeout_ZeroIsPassThrough(t *testing.T) {
	inner := NewMockProvider()
	if p := WithTimeout(inner, 0); p != Provider(inner) {
		t.Fatal("expected the inner provider back")
	}
}
