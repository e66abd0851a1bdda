package input

import (
	"fmt"
	"sync"
	"time"

	"git.lost.host/meutraa/firewall/internal/game"
	"github.com/eiannone/keyboard"
)

// Keyboard reads the local terminal. The keyboard package puts the
// terminal into raw mode until Close.
type Keyboard struct {
	events chan Event
	done   chan struct{}
	once   sync.Once
	now    func() time.Time
}

func OpenKeyboard(now func() time.Time) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	k := &Keyboard{
		events: make(chan Event, 128),
		done:   make(chan struct{}),
		now:    now,
	}
	go k.run(keys)
	return k, nil
}

func (k *Keyboard) run(keys <-chan keyboard.KeyEvent) {
	defer close(k.events)
	for {
		select {
		case <-k.done:
			return
		case key, ok := <-keys:
			if !ok {
				return
			}
			if nil != key.Err {
				continue
			}
			ev, ok := KeyEvent(key.Key, key.Rune)
			if !ok {
				continue
			}
			ev.At = k.now()
			select {
			case k.events <- ev:
			case <-k.done:
				return
			}
		}
	}
}

// KeyEvent maps a key from the keyboard package to an event.
func KeyEvent(key keyboard.Key, r rune) (Event, bool) {
	switch key {
	case keyboard.KeyArrowLeft:
		return tap(game.Left), true
	case keyboard.KeyArrowRight:
		return tap(game.Right), true
	case keyboard.KeyArrowUp:
		return tap(game.Top), true
	case keyboard.KeyEnter, keyboard.KeySpace:
		return Event{Action: ActionConfirm}, true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Action: ActionQuit}, true
	}
	if r == 0 {
		return Event{}, false
	}
	return runeEvent(r)
}

func (k *Keyboard) Events() <-chan Event { return k.events }

func (k *Keyboard) Close() error {
	var err error
	k.once.Do(func() {
		close(k.done)
		err = keyboard.Close()
	})
	return err
}
