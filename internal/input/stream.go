package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/firewall/internal/engine"
	"git.lost.host/meutraa/firewall/internal/game"
)

// Stream decodes a raw terminal byte stream, such as an ssh session.
type Stream struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func StartStream(r io.Reader, now func() time.Time) *Stream {
	s := &Stream{
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.events)
		br := bufio.NewReader(r)
		var d Decoder
		for {
			b, err := br.ReadByte()
			if nil != err {
				return
			}
			for _, ev := range d.Feed(b) {
				ev.At = now()
				select {
				case s.events <- ev:
				case <-s.done:
					return
				}
			}
		}
	}()
	return s
}

func (s *Stream) Events() <-chan Event { return s.events }

// Close stops forwarding. The reader goroutine exits on its next byte or
// when the underlying reader is closed.
func (s *Stream) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

const (
	stateGround = iota
	stateEscape
	stateCSI
	stateSS3
)

// Decoder is a byte at a time state machine over terminal input. A lone
// escape is ignored; over a network it cannot be told apart from the start
// of a split sequence.
type Decoder struct {
	state  int
	params []byte
}

func (d *Decoder) Feed(b byte) []Event {
	switch d.state {
	case stateEscape:
		switch b {
		case '[':
			d.state = stateCSI
			d.params = d.params[:0]
			return nil
		case 'O':
			d.state = stateSS3
			return nil
		}
		d.state = stateGround
		return d.Feed(b)
	case stateSS3:
		d.state = stateGround
		return arrow(b)
	case stateCSI:
		if b >= 0x40 && b <= 0x7e {
			d.state = stateGround
			return d.csi(b)
		}
		if len(d.params) < 32 {
			d.params = append(d.params, b)
		}
		return nil
	}
	if b == 0x1b {
		d.state = stateEscape
		return nil
	}
	if ev, ok := runeEvent(rune(b)); ok {
		return []Event{ev}
	}
	return nil
}

func arrow(final byte) []Event {
	switch final {
	case 'D':
		return []Event{tap(game.Left)}
	case 'C':
		return []Event{tap(game.Right)}
	case 'A':
		return []Event{tap(game.Top)}
	}
	return nil
}

func (d *Decoder) csi(final byte) []Event {
	if len(d.params) == 0 {
		return arrow(final)
	}
	// SGR mouse: ESC [ < button ; column ; row M
	if d.params[0] != '<' || final != 'M' {
		return nil
	}
	fields := strings.Split(string(d.params[1:]), ";")
	if len(fields) != 3 {
		return nil
	}
	n := [3]int{}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if nil != err {
			return nil
		}
		n[i] = v
	}
	// left button presses only, no drags or wheel
	if n[0] != 0 {
		return nil
	}
	return []Event{{
		Action: ActionTap,
		Point:  engine.Point{X: float64(n[1] - 1), Y: float64(n[2] - 1)},
	}}
}
