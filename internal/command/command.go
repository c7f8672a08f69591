// Package command resolves parsed instructions against bound data
// records into executable commands. Resolution happens once, up front:
// an executed command never looks anything up, it only replays what was
// decided here. Unknown instruction kinds resolve to a no-op, matching
// the engine's skip-and-continue policy.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/keyscript/internal/inject"
)

// Command is one executable automation action.
type Command interface {
	// Execute performs the action through the injection capability.
	Execute(inj inject.Injector) error

	// Describe returns a short human-readable form for logs and dry runs.
	Describe() string
}

// typeCommand types resolved text, optionally followed by a tab. Print
// and input both resolve to it; by execution time there is no difference
// between them.
type typeCommand struct {
	text string
	tab  bool
}

func (c *typeCommand) Execute(inj inject.Injector) error {
	if err := inj.TypeText(c.text); err != nil {
		return err
	}
	if c.tab {
		return inj.PressKey("tab")
	}
	return nil
}

func (c *typeCommand) Describe() string {
	if c.tab {
		return fmt.Sprintf("type %q + tab", c.text)
	}
	return fmt.Sprintf("type %q", c.text)
}

// fitToWidth applies the slot-width convention to text. With no width
// the text passes through. Text shorter than its slot is typed as-is
// and followed by a tab to advance to the next field; text longer than
// the slot is cut to the first width runes with no tab; an exact fit
// gets no tab either.
func fitToWidth(text string, width int, hasWidth bool) (string, bool) {
	if !hasWidth {
		return text, false
	}
	runes := []rune(text)
	switch {
	case len(runes) < width:
		return text, true
	case len(runes) > width:
		return string(runes[:width]), false
	default:
		return text, false
	}
}

// pressCommand presses a single key or a chord, repeat times. A chord
// outside the 2-5 key range executes nothing.
type pressCommand struct {
	keys   []string
	repeat int
}

func (c *pressCommand) Execute(inj inject.Injector) error {
	for i := 0; i < c.repeat; i++ {
		switch {
		case len(c.keys) == 1:
			if err := inj.PressKey(c.keys[0]); err != nil {
				return err
			}
		case inject.ValidChord(c.keys):
			if err := inj.PressChord(c.keys); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *pressCommand) Describe() string {
	name := strings.Join(c.keys, "+")
	if c.repeat == 1 {
		return "press " + name
	}
	return fmt.Sprintf("press %s x%d", name, c.repeat)
}

// pauseCommand blocks for a whole number of seconds, one second at a
// time.
type pauseCommand struct {
	seconds int
	sleep   func(time.Duration)
}

func (c *pauseCommand) Execute(inject.Injector) error {
	for i := 0; i < c.seconds; i++ {
		c.sleep(time.Second)
	}
	return nil
}

func (c *pauseCommand) Describe() string {
	return fmt.Sprintf("pause %ds", c.seconds)
}

// noopCommand does nothing. Unrecognized instructions land here and are
// silently dropped.
type noopCommand struct{}

func (noopCommand) Execute(inject.Injector) error { return nil }

func (noopCommand) Describe() string { return "noop" }
