package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/money"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout session UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// loadMachine resolves the machine tables. An explicit path must exist;
// the default path is optional.
func loadMachine(path string, logger *slog.Logger) (domain.Machine, error) {
	var (
		m   domain.Machine
		err error
	)
	if path == "" {
		m, err = config.LoadOptional(config.DefaultPath)
	} else {
		m, err = config.Load(path)
	}
	if err != nil {
		return domain.Machine{}, err
	}

	if err := config.VerifyChange(m); err != nil {
		logger.Warn("Change set is not canonical", "err", err)
	}
	return m, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *domain.ScreenEvent) {
			logger.Debug("Enter Screen", "from", e.From.Slug(), "to", e.To.Slug())
		},
		OnFundsAdded: func(ctx context.Context, e *domain.FundsEvent) {
			logger.Debug("Funds Added", "amount", money.Format(e.Amount), "balance", money.Format(e.Balance))
		},
		OnPurchase: func(ctx context.Context, e *domain.PurchaseEvent) {
			logger.Debug("Purchase", "item", e.Item.Name, "price", money.Format(e.Item.Price), "balance", money.Format(e.Balance))
		},
		OnChangeReturned: func(ctx context.Context, e *domain.ChangeEvent) {
			logger.Debug("Change Returned", "amount", money.Format(e.Amount), "coins", len(e.Coins))
		},
		OnRejected: func(ctx context.Context, e *domain.RejectEvent) {
			logger.Debug("Input Rejected", "screen", e.Screen.Slug(), "input", e.Input, "err", e.Err)
		},
	}
}
