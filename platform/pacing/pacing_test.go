package pacing

import (
	"context"
	"testing"
	"time"
)

func TestFixedDelayWaits(t *testing.T) {
	p := FixedDelay(20 * time.Millisecond)

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected wait of at least 20ms, got %v", elapsed)
	}
}

func TestFixedDelayCancelled(t *testing.T) {
	p := FixedDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestFixedDelayZeroReturnsImmediately(t *testing.T) {
	p := FixedDelay(0)

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Fatalf("expected immediate return, took %v", elapsed)
	}
}

func TestTokenBucketAllowsBurst(t *testing.T) {
	p := TokenBucket(time.Hour, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("burst item %d should not wait: %v", i, err)
		}
	}
}

func TestNoneNeverWaits(t *testing.T) {
	p := None()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
		t.Fatalf("expected no waiting, took %v", elapsed)
	}
}
