package ratelimiter

import (
	"testing"
	"time"
)

func TestRateLimiter_UnderLimitDoesNotBlock(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, time.Minute)

	start := time.Now()
	for i := 0; i < 10; i++ {
		rl.WaitIfNeeded()
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("calls under the limit should not block, took %v", elapsed)
	}
}

func TestRateLimiter_OverLimitBlocksUntilReset(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 200*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("expected third call to block until the window resets, took %v", elapsed)
	}
}

func TestRateLimiter_WindowResetClearsCount(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 100*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()
	time.Sleep(150 * time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("expected no blocking after window reset, took %v", elapsed)
	}
}
