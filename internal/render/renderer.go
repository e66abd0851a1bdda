package render

import (
	"context"
	"time"
)

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (width, height int, err error)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (width, height int)
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(ctx context.Context, period time.Duration, render func(now time.Time) bool) error
	Fill(row, column int, message string)
}
