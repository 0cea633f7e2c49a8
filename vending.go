package vending

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/internal/runtime"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/aretw0/vending/pkg/terminal"
)

// Version is the release of the simulator.
const Version = "0.3.0"

// Engine is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	machine domain.Machine
	term    ports.Terminal
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	session *domain.Session
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithMachine sets the denomination sets and catalog. Defaults to the stock machine.
func WithMachine(m domain.Machine) Option {
	return func(e *Engine) {
		e.machine = m
	}
}

// WithTerminal injects the terminal collaborator. Defaults to Stdin/Stdout.
func WithTerminal(t ports.Terminal) Option {
	return func(e *Engine) {
		e.term = t
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSession starts the engine from an existing session snapshot.
func WithSession(s *domain.Session) Option {
	return func(e *Engine) {
		e.session = s
	}
}

// New initializes a new vending Engine.
// The machine tables are validated before the engine is built.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{machine: config.Default()}
	for _, opt := range opts {
		opt(eng)
	}

	if err := config.Validate(eng.machine); err != nil {
		return nil, err
	}
	if eng.term == nil {
		eng.term = terminal.NewTextHandler(nil, nil)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rt, err := runtime.NewEngine(eng.machine, eng.term,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithSession(eng.session),
	)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt
	return eng, nil
}

// Run drives the session until the user exits or input ends.
func (e *Engine) Run(ctx context.Context) error {
	return e.runtime.Run(ctx)
}

// Dispatch applies a single line of input, as if typed at the current screen.
func (e *Engine) Dispatch(ctx context.Context, input string) error {
	return e.runtime.Dispatch(ctx, input)
}

// Session returns a snapshot of the current session.
func (e *Engine) Session() domain.Session {
	return e.runtime.Session()
}

// Machine returns the tables the engine was built with.
func (e *Engine) Machine() domain.Machine {
	return e.machine
}
