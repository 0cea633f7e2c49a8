package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/vending/pkg/change"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
)

// Global commands, checked before the active screen sees the input.
const (
	CommandExit = "x"
	CommandBack = "b"
	CommandYes  = "y"
)

// Engine is the session state machine.
// It is not safe for concurrent use: one goroutine drives one session.
type Engine struct {
	machine domain.Machine
	change  *change.Calculator
	prompts screenPrompts
	term    ports.Terminal
	session *domain.Session
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithSession resumes an existing in-process session instead of starting a clean one.
func WithSession(s *domain.Session) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.session = s
		}
	}
}

// NewEngine creates an engine for the given machine tables, talking to term.
func NewEngine(machine domain.Machine, term ports.Terminal, opts ...EngineOption) (*Engine, error) {
	if term == nil {
		return nil, errors.New("terminal is required")
	}
	calc, err := change.New(machine.Change)
	if err != nil {
		return nil, fmt.Errorf("invalid change set: %w", err)
	}

	e := &Engine{
		machine: machine,
		change:  calc,
		prompts: buildPrompts(machine),
		term:    term,
		session: domain.NewSession(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Session returns a snapshot of the current session.
func (e *Engine) Session() domain.Session {
	return *e.session
}

// Run reads and dispatches input until exit is requested or input is exhausted.
// Only terminal failures end the loop with an error; invalid input never does.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Debug("session started", "screen", e.session.Screen.Slug(), "balance", e.session.Balance)

	for !e.session.ExitRequested {
		line, err := e.readSelection(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				e.logger.Debug("input exhausted, ending session")
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if err := e.Dispatch(ctx, line); err != nil {
			return err
		}
	}

	e.logger.Debug("session ended", "balance", e.session.Balance)
	return nil
}

// readSelection renders the active screen, surfacing the pending message once, and reads one line.
func (e *Engine) readSelection(ctx context.Context) (string, error) {
	if err := e.term.Print(ctx, ""); err != nil {
		return "", err
	}
	if msg, ok := e.session.Message.Drain(); ok {
		if err := e.term.Print(ctx, msg); err != nil {
			return "", err
		}
	}
	return e.term.Prompt(ctx, e.prompts.render(e.session.Screen, e.session.Balance))
}

// Dispatch applies one line of raw input to the session.
// The returned error reports terminal failures only.
func (e *Engine) Dispatch(ctx context.Context, raw string) error {
	input := Normalize(raw)

	switch input {
	case CommandExit:
		e.logger.Debug("exit requested", "screen", e.session.Screen.Slug())
		e.session.ExitRequested = true
		return nil
	case CommandBack:
		e.goTo(ctx, domain.ScreenMainMenu)
		return nil
	}

	switch e.session.Screen {
	case domain.ScreenMainMenu:
		e.handleMainMenu(ctx, input)
	case domain.ScreenAddFunds:
		e.handleAddFunds(ctx, input)
	case domain.ScreenPurchaseItem:
		return e.handlePurchase(ctx, input)
	case domain.ScreenReturnChange:
		return e.handleReturnChange(ctx, input)
	default:
		e.logger.Error("unknown screen, resetting to main menu", "screen", e.session.Screen.String())
		e.goTo(ctx, domain.ScreenMainMenu)
	}
	return nil
}

// Normalize trims surrounding whitespace and lower-cases input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (e *Engine) goTo(ctx context.Context, screen domain.Screen) {
	from := e.session.Screen
	if from == screen {
		return
	}
	e.session.Screen = screen
	e.logger.Debug("screen transition", "from", from.Slug(), "to", screen.Slug())
	if e.hooks.OnScreenEnter != nil {
		e.hooks.OnScreenEnter(ctx, &domain.ScreenEvent{From: from, To: screen})
	}
}

// reject records a refused input as the pending message.
func (e *Engine) reject(ctx context.Context, input string, err error) {
	var msg string
	var invalid *domain.InvalidSelectionError
	switch {
	case errors.As(err, &invalid):
		msg = invalid.Message()
	case errors.Is(err, domain.ErrInsufficientFunds):
		msg = domain.InsufficientFundsMessage
	default:
		msg = fmt.Sprintf(domain.InvalidInputTemplate, input)
	}

	e.session.Message.Post(msg)
	e.logger.Debug("input rejected", "screen", e.session.Screen.Slug(), "input", input, "err", err)
	if e.hooks.OnRejected != nil {
		e.hooks.OnRejected(ctx, &domain.RejectEvent{Screen: e.session.Screen, Input: input, Err: err})
	}
}
