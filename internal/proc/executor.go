package proc

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/keyscript/internal/inject"
)

// Executor runs procedure sets against an injection capability, one
// action at a time in program order.
type Executor struct {
	inj    inject.Injector
	logger *zap.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// NewExecutor creates an executor that injects through inj.
func NewExecutor(inj inject.Injector, opts ...ExecutorOption) *Executor {
	e := &Executor{
		inj:    inj,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run executes every action in order. The first injection failure
// aborts the run; completion means every action executed.
func (e *Executor) Run(set ProcedureSet) error {
	runID := uuid.NewString()
	logger := e.logger.With(zap.String("run", runID))
	logger.Info("run started", zap.Int("actions", len(set)))

	for i, cmd := range set {
		logger.Debug("executing", zap.Int("action", i), zap.String("command", cmd.Describe()))
		if err := cmd.Execute(e.inj); err != nil {
			logger.Error("run aborted", zap.Int("action", i), zap.Error(err))
			return fmt.Errorf("action %d (%s): %w", i, cmd.Describe(), err)
		}
	}

	logger.Info("run finished")
	return nil
}
