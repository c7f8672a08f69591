// Package app wires the keyscript pipeline together: load a procedure
// and an optional data table, expand them into a flat action list, and
// run it against an injection backend. The cmd/keyscript CLI is a thin
// shell over this package.
package app

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/keyscript/internal/command"
	"github.com/dshills/keyscript/internal/config"
	"github.com/dshills/keyscript/internal/inject"
	"github.com/dshills/keyscript/internal/proc"
	"github.com/dshills/keyscript/internal/script"
	"github.com/dshills/keyscript/internal/table"
)

// App coordinates one procedure run.
type App struct {
	opts   config.Options
	inj    inject.Injector
	logger *zap.Logger
	sleep  func(time.Duration)
}

// Option configures an App.
type Option func(*App)

// WithInjector sets the injection backend. The default discards all
// activity, so callers that want real effects must set one.
func WithInjector(inj inject.Injector) Option {
	return func(a *App) {
		a.inj = inj
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithSleep replaces the pause primitive, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(a *App) {
		a.sleep = sleep
	}
}

// New creates an App with the given run options.
func New(opts config.Options, appOpts ...Option) *App {
	a := &App{
		opts:   opts.Normalize(),
		inj:    inject.Nop{},
		logger: zap.NewNop(),
		sleep:  time.Sleep,
	}
	for _, o := range appOpts {
		o(a)
	}
	return a
}

// Run loads, expands, and executes a procedure. The procedure argument
// is a file path if it names an existing file, otherwise it is taken as
// inline procedure text. The data argument works the same way, with ""
// meaning no data table.
func (a *App) Run(procedure, data string) error {
	set, err := a.build(procedure, data)
	if err != nil {
		return err
	}

	exec := proc.NewExecutor(a.inj, proc.WithLogger(a.logger))
	return exec.Run(set)
}

// Plan loads and expands a procedure but does not execute it, returning
// one description per action in execution order.
func (a *App) Plan(procedure, data string) ([]string, error) {
	set, err := a.build(procedure, data)
	if err != nil {
		return nil, err
	}
	return set.Describe(), nil
}

func (a *App) build(procedure, data string) (proc.ProcedureSet, error) {
	instrs, err := a.loadProcedure(procedure)
	if err != nil {
		return nil, err
	}

	tbl, err := a.loadTable(data)
	if err != nil {
		return nil, err
	}

	resolver := command.NewResolver(a.opts, command.WithSleep(a.sleep))
	return proc.Build(instrs, tbl, resolver), nil
}

func (a *App) loadProcedure(procedure string) ([]script.Instruction, error) {
	loader := script.NewLoader(a.opts)
	if isFile(procedure) {
		instrs, err := loader.FromFile(procedure)
		if err != nil {
			return nil, fmt.Errorf("loading procedure: %w", err)
		}
		return instrs, nil
	}
	return loader.FromText(procedure), nil
}

func (a *App) loadTable(data string) (*table.Table, error) {
	if data == "" {
		return nil, nil
	}
	if isFile(data) {
		tbl, err := table.FromFile(data, a.opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("loading data table: %w", err)
		}
		return tbl, nil
	}
	tbl, err := table.FromText(data, a.opts.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("loading data table: %w", err)
	}
	return tbl, nil
}

// isFile reports whether the argument names an existing regular file.
// Anything that doesn't is treated as inline text.
func isFile(s string) bool {
	info, err := os.Stat(s)
	return err == nil && info.Mode().IsRegular()
}
