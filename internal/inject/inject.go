// Package inject defines the input-injection capability the executor
// drives. Implementations deliver the synthesized keyboard activity:
// the desktop subpackage sends real OS events, Trace writes a readable
// plan for dry runs, and Nop discards everything.
package inject

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Chord size limits. A chord below the minimum is a single key; one
// above the maximum is not delivered.
const (
	MinChordKeys = 2
	MaxChordKeys = 5
)

// ErrChordSize is returned when a chord has fewer than MinChordKeys or
// more than MaxChordKeys keys.
var ErrChordSize = errors.New("chord size out of range")

// Injector is the capability that delivers keyboard activity. Calls are
// synchronous and issued one at a time in program order.
type Injector interface {
	// TypeText types a literal string.
	TypeText(text string) error

	// PressKey presses and releases a single named key.
	PressKey(name string) error

	// PressChord presses 2-5 named keys together and releases them.
	PressChord(names []string) error
}

// ValidChord reports whether a key list is within chord size limits.
func ValidChord(names []string) bool {
	return len(names) >= MinChordKeys && len(names) <= MaxChordKeys
}

// Trace is an Injector that records a readable line per call instead of
// injecting anything. It backs dry runs and tests.
type Trace struct {
	w io.Writer
}

// NewTrace creates a trace injector writing to w.
func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

// TypeText records a type call.
func (t *Trace) TypeText(text string) error {
	_, err := fmt.Fprintf(t.w, "type %q\n", text)
	return err
}

// PressKey records a single key press.
func (t *Trace) PressKey(name string) error {
	_, err := fmt.Fprintf(t.w, "press %s\n", name)
	return err
}

// PressChord records a chord press.
func (t *Trace) PressChord(names []string) error {
	if !ValidChord(names) {
		return fmt.Errorf("%w: %d keys", ErrChordSize, len(names))
	}
	_, err := fmt.Fprintf(t.w, "chord %s\n", strings.Join(names, "+"))
	return err
}

// Nop is an Injector that discards every call.
type Nop struct{}

// TypeText discards the call.
func (Nop) TypeText(string) error { return nil }

// PressKey discards the call.
func (Nop) PressKey(string) error { return nil }

// PressChord discards the call.
func (Nop) PressChord([]string) error { return nil }
