// Package desktop injects real keyboard events into the active OS
// session via robotgo. It is the backend behind keyscript run; dry runs
// use inject.Trace instead.
package desktop

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/dshills/keyscript/internal/inject"
)

// Injector delivers keyboard activity to the desktop session.
type Injector struct{}

// New creates a desktop injector.
func New() *Injector {
	return &Injector{}
}

// TypeText types a literal string into the focused window.
func (*Injector) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}

// PressKey presses and releases a single named key.
func (*Injector) PressKey(name string) error {
	if err := robotgo.KeyTap(name); err != nil {
		return fmt.Errorf("pressing %q: %w", name, err)
	}
	return nil
}

// PressChord presses the named keys together. The last key is the tap
// target and the rest are held as modifiers, which matches how robotgo
// models hotkeys.
func (*Injector) PressChord(names []string) error {
	if !inject.ValidChord(names) {
		return fmt.Errorf("%w: %d keys", inject.ErrChordSize, len(names))
	}

	last := names[len(names)-1]
	mods := make([]interface{}, 0, len(names)-1)
	for _, n := range names[:len(names)-1] {
		mods = append(mods, n)
	}

	if err := robotgo.KeyTap(last, mods...); err != nil {
		return fmt.Errorf("pressing chord: %w", err)
	}
	return nil
}

var _ inject.Injector = (*Injector)(nil)
