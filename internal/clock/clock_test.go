package clock

import (
	"testing"
	"time"
)

func TestSessionClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewWithNow(func() time.Time { return now }, 1500*time.Millisecond)

	if c.Elapsed() != 0 {
		t.Fatalf("clock running before start: %v", c.Elapsed())
	}
	c.Start()
	if c.Elapsed() != -1500*time.Millisecond {
		t.Fatalf("expected the start delay to be pending, got %v", c.Elapsed())
	}

	now = now.Add(2 * time.Second)
	if c.Elapsed() != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", c.Elapsed())
	}

	tap := now.Add(-100 * time.Millisecond)
	if c.At(tap) != 400*time.Millisecond {
		t.Fatalf("expected the tap at 400ms, got %v", c.At(tap))
	}

	c.Start()
	if c.Elapsed() != 500*time.Millisecond {
		t.Fatal("second start moved the anchor")
	}
}
