package assistant

import (
	"testing"
	"time"
)

func TestRateLimiterAdmitsUnderLimit(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewRateLimiter(3, time.Minute)
	l.clockNow = func() time.Time { return now }
	l.sleep = func(d time.Duration) {
		t.Fatalf("unexpected sleep of %v while under the limit", d)
	}

	for i := 0; i < 3; i++ {
		l.Admit()
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	now := time.Unix(1000, 0)
	var slept []time.Duration
	l := NewRateLimiter(3, time.Minute)
	l.clockNow = func() time.Time { return now }
	l.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}

	for i := 0; i < 3; i++ {
		l.Admit()
	}
	l.Admit()

	if len(slept) != 1 {
		t.Fatalf("expected one wait, got %d", len(slept))
	}
	if slept[0] != time.Minute {
		t.Fatalf("expected to wait the full window, got %v", slept[0])
	}
}

func TestRateLimiterPrunesExpiredCalls(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewRateLimiter(2, time.Minute)
	l.clockNow = func() time.Time { return now }
	l.sleep = func(d time.Duration) {
		t.Fatalf("unexpected sleep of %v after window elapsed", d)
	}

	l.Admit()
	l.Admit()

	now = now.Add(time.Minute + time.Second)
	l.Admit()

	if got := len(l.calls); got != 1 {
		t.Fatalf("expected expired calls to be pruned, have %d recorded", got)
	}
}
