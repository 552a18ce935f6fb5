package ratelimit

import (
	"testing"
	"time"
)

func TestAllowUnderLimit(t *testing.T) {
	limiter := NewLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("Allow() = false on hit %d, want true", i+1)
		}
	}
}

func TestAllowOverLimit(t *testing.T) {
	limiter := NewLimiter(time.Minute, 2)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")

	if limiter.Allow("10.0.0.1") {
		t.Error("Allow() = true past the limit, want false")
	}
}

func TestAllowSeparateKeys(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)

	limiter.Allow("10.0.0.1")

	if !limiter.Allow("10.0.0.2") {
		t.Error("Allow() = false for a different key, want true")
	}
}

func TestAllowWindowExpiry(t *testing.T) {
	limiter := NewLimiter(30*time.Millisecond, 1)

	limiter.Allow("10.0.0.1")
	if limiter.Allow("10.0.0.1") {
		t.Fatal("Allow() = true inside the window, want false")
	}

	time.Sleep(50 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Error("Allow() = false after the window elapsed, want true")
	}
}
