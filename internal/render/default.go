package render

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultRenderer draws with ANSI escapes into any writer, so the same frame
// goes to a local terminal or an ssh session.
type DefaultRenderer struct {
	Out      io.Writer
	SizeFunc SizeFunc
	Mouse    bool // ask the terminal to report clicks as SGR sequences

	buffer        strings.Builder
	decorations   []*decoration
	width, height int
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) Init() error {
	r.resize()
	var err error
	if r.Mouse {
		_, err = fmt.Fprintf(r.Out, "%s%s%s%s%s",
			"\033[?1049h", // Enable alternate buffer
			"\033[?25l",   // Make the cursor invisible
			"\033[J",      // Clear the screen
			"\033[?1000h", // Report button presses
			"\033[?1006h", // in SGR form
		)
	} else {
		_, err = fmt.Fprintf(r.Out, "%s%s%s",
			"\033[?1049h",
			"\033[?25l",
			"\033[J",
		)
	}
	return err
}

func (r *DefaultRenderer) Deinit() error {
	if r.Mouse {
		fmt.Fprintf(r.Out, "%s%s", "\033[?1006l", "\033[?1000l")
	}
	_, err := fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

func (r *DefaultRenderer) resize() {
	if nil == r.SizeFunc {
		r.width, r.height = 80, 24
		return
	}
	if w, h, err := r.SizeFunc(); nil == err && w > 0 && h > 0 {
		r.width, r.height = w, h
	}
}

func (r *DefaultRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := r.decorations[:0]
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

// RenderLoop calls render once per period until it returns false or ctx is
// done. Each frame starts from a cleared screen and is written in one go.
func (r *DefaultRenderer) RenderLoop(ctx context.Context, period time.Duration, render func(now time.Time) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := time.Now()
		deadline := now.Add(period)

		r.resize()
		r.buffer.WriteString("\033[H\033[J")
		cont := render(now)
		r.tickDecorations()
		if err := r.flush(); nil != err {
			return err
		}
		if !cont {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(deadline)):
		}
	}
}

// Fill writes message at a 1-based row and column. Positions off screen are
// dropped.
func (r *DefaultRenderer) Fill(row, column int, message string) {
	if row < 1 || column < 1 || row > r.height || column > r.width {
		return
	}
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
