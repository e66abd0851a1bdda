package engine

import (
	"testing"
	"time"
)

func TestLifecycleSpawnsAhead(t *testing.T) {
	l := NewLifecycle(schedule(1, 3, 5))
	if got := l.AdvanceSpawning(0, 2*time.Second); len(got) != 1 {
		t.Fatalf("expected one threat at zero, got %d", len(got))
	}
	if got := l.AdvanceSpawning(secs(3), 2*time.Second); len(got) != 2 {
		t.Fatalf("expected the remaining two threats, got %d", len(got))
	}
	if got := l.AdvanceSpawning(secs(10), 2*time.Second); len(got) != 0 {
		t.Fatalf("spawned past the end: %d", len(got))
	}
	if spawn, _ := l.Cursors(); spawn != 3 {
		t.Fatalf("spawn cursor at %d", spawn)
	}
}

func TestLifecycleTakeOnce(t *testing.T) {
	l := NewLifecycle(schedule(1))
	l.AdvanceSpawning(0, 2*time.Second)
	if th, ok := l.Take(0); !ok || nil == th {
		t.Fatal("first take failed")
	}
	if _, ok := l.Take(0); ok {
		t.Fatal("second take succeeded")
	}
	if len(l.Active()) != 0 {
		t.Fatal("taken threat still active")
	}
}

func TestLifecycleSweepSkipsResolved(t *testing.T) {
	l := NewLifecycle(schedule(1, 2))
	l.AdvanceSpawning(secs(1), 2*time.Second)
	l.Take(0)

	var missed []int
	window := func() time.Duration { return 150 * time.Millisecond }
	l.SweepExpired(secs(3), window, func(beat int) {
		missed = append(missed, beat)
		l.Take(beat)
	})
	if len(missed) != 1 || missed[0] != 1 {
		t.Fatalf("expected only beat 1 swept, got %v", missed)
	}
	if !l.Exhausted() {
		t.Fatal("cursors not exhausted")
	}
}

func TestLifecycleSpawnsEveryBeatInOrder(t *testing.T) {
	l := NewLifecycle(schedule(1, 1, 2, 4))
	got := l.AdvanceSpawning(secs(2), 2*time.Second)
	got = append(got, l.AdvanceSpawning(secs(3), 2*time.Second)...)
	if len(got) != 4 {
		t.Fatalf("expected four threats, got %d", len(got))
	}
	for i, th := range got {
		if th.Beat != i {
			t.Fatalf("threat %d carries beat %d", i, th.Beat)
		}
	}
	if len(l.Active()) != 4 {
		t.Fatalf("expected four active threats, got %d", len(l.Active()))
	}
}
