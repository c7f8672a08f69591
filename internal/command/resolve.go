package command

import (
	"time"

	"github.com/dshills/keyscript/internal/config"
	"github.com/dshills/keyscript/internal/script"
	"github.com/dshills/keyscript/internal/table"
)

// Resolver turns (instruction, record) pairs into commands.
type Resolver struct {
	opts  config.Options
	sleep func(time.Duration)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSleep replaces the blocking primitive used by pause commands.
// Tests use this to avoid real waits.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Resolver) {
		r.sleep = sleep
	}
}

// NewResolver creates a resolver applying the given option defaults.
func NewResolver(opts config.Options, ropts ...Option) *Resolver {
	r := &Resolver{
		opts:  opts.Normalize(),
		sleep: time.Sleep,
	}
	for _, o := range ropts {
		o(r)
	}
	return r
}

// Resolve converts one instruction, bound to zero or one record, into
// an executable command. It never fails: anything unresolvable becomes
// a no-op.
func (r *Resolver) Resolve(in script.Instruction, rec *table.Record) Command {
	switch in.Kind {
	case script.KindPrint:
		return r.resolveType(in.Text, in.Width)

	case script.KindInput:
		// Input without a bound record has nothing to type.
		if rec == nil {
			return noopCommand{}
		}
		// A missing field types the empty value; absence is not an error.
		value, _ := rec.Get(in.Field)
		return r.resolveType(value, in.Width)

	case script.KindPress:
		return &pressCommand{
			keys:   in.Keys,
			repeat: in.Repeat.IntValue(r.opts.PressRepeat),
		}

	case script.KindPause:
		// Fractional durations truncate toward zero; an unparsable
		// duration falls back to the configured default.
		return &pauseCommand{
			seconds: in.Seconds.IntValue(r.opts.PauseSeconds),
			sleep:   r.sleep,
		}
	}

	return noopCommand{}
}

func (r *Resolver) resolveType(text string, width script.Number) Command {
	fitted, tab := fitToWidth(text, width.IntValue(0), !width.IsAbsent())
	return &typeCommand{text: fitted, tab: tab}
}
