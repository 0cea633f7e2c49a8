package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/presentation/tui"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/observability"
	"github.com/aretw0/vending/pkg/terminal"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath  string
	Debug       bool
	MetricsFile string
	NoBanner    bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// RunSession wires configuration, logging, metrics and the terminal, then runs
// one interactive session until the user exits or input ends.
func RunSession(ctx context.Context, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	logger := createLogger(opts.Debug)

	machine, err := loadMachine(opts.ConfigPath, logger)
	if err != nil {
		return err
	}

	interactive := isTerminal(opts.Stdout)
	if interactive && !opts.NoBanner {
		tui.PrintBanner(opts.Stdout, vending.Version)
	}

	var handlerOpts []terminal.Option
	if interactive {
		handlerOpts = append(handlerOpts, terminal.WithRenderer(tui.NewHighlighter(opts.Stdout)))
	}
	term := terminal.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...)

	hooks := createDebugHooks(logger)
	var metrics *observability.Metrics
	if opts.MetricsFile != "" {
		metrics = observability.NewMetrics()
		hooks = domain.MergeHooks(hooks, metrics.Hooks())
	}

	eng, err := vending.New(
		vending.WithMachine(machine),
		vending.WithTerminal(term),
		vending.WithLogger(logger),
		vending.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return err
	}

	logger.Info("Session Started", "items", len(machine.Catalog), "funding", len(machine.Funding))
	runErr := eng.Run(ctx)

	final := eng.Session()
	logger.Info("Session Finished", "balance", final.Balance, "exit_requested", final.ExitRequested)
	if interactive && !final.ExitRequested {
		fmt.Fprintln(opts.Stdout)
		printSystemMessage(opts.Stdout, "Input closed on %s.", final.Screen)
	}

	if metrics != nil {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Error("Failed to write metrics", "path", opts.MetricsFile, "err", err)
			if runErr == nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
		}
	}

	return runErr
}
