package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func newRenderer(out *bytes.Buffer) *DefaultRenderer {
	return &DefaultRenderer{
		Out:      out,
		SizeFunc: func() (int, int, error) { return 40, 10, nil },
	}
}

func TestFill(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out)
	r.Init()
	out.Reset()

	r.Fill(3, 7, "x")
	r.Fill(0, 7, "dropped")
	r.Fill(11, 7, "dropped")
	r.flush()
	if out.String() != "\033[3;7Hx" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRenderLoopStops(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out)
	r.Init()
	r.AddDecoration(2, 2, "!", 2)

	frames := 0
	err := r.RenderLoop(context.Background(), time.Millisecond, func(time.Time) bool {
		frames++
		return frames < 4
	})
	if nil != err {
		t.Fatal(err)
	}
	if frames != 4 {
		t.Fatalf("expected 4 frames, got %d", frames)
	}
	if n := strings.Count(out.String(), "\033[2;2H!"); n != 2 {
		t.Fatalf("decoration drawn %d times", n)
	}
	if len(r.decorations) != 0 {
		t.Fatal("expired decoration kept")
	}
}

func TestRenderLoopCancel(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out)
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	err := r.RenderLoop(ctx, time.Millisecond, func(time.Time) bool {
		frames++
		if frames == 2 {
			cancel()
		}
		return true
	})
	if err != context.Canceled {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if frames != 2 {
		t.Fatalf("rendered %d frames after cancel", frames)
	}
}

func TestMouseReporting(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out)
	r.Mouse = true
	r.Init()
	if !strings.Contains(out.String(), "\033[?1006h") {
		t.Fatal("mouse reporting not requested")
	}
	out.Reset()
	r.Deinit()
	if !strings.Contains(out.String(), "\033[?1000l") {
		t.Fatal("mouse reporting not released")
	}
}
