// Package cli implements adminctl, the terminal front end of the console
// lookup workflow. It runs the same resolver and aggregator as the web UI
// against a directory API reached over HTTP.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"admin_console/internal/console/client"
	"admin_console/internal/console/service"
	"admin_console/internal/diagnostics"
	"admin_console/internal/events"
	"admin_console/platform/apperr"
	"admin_console/platform/logger"
	"admin_console/platform/validator"

	"github.com/spf13/cobra"
)

// app carries the per-invocation dependencies built from flags and config.
type app struct {
	cfg     Config
	out     io.Writer
	errOut  io.Writer
	json    bool
	verbose bool

	log     *logger.Logger
	client  *client.Client
	bus     *events.InMemoryBus
	console *service.Service
}

// NewRootCommand builds the adminctl command tree. cfg supplies the flag
// defaults; output is written to out and diagnostics to errOut.
func NewRootCommand(cfg Config, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "adminctl",
		Short: "Look up users and browse properties from the terminal",
		Long: `adminctl queries the admin console directory API.

A lookup resolves one identifying input to a user and loads every profile
section concurrently. Sections that fail are shown with placeholder data
and flagged as fallbacks.

Examples:
  adminctl lookup --user-id user_001
  adminctl lookup --identity-id 'auth0|123456789'
  adminctl lookup --email jane.smith@example.com --json
  adminctl properties users max_connections`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.init() },
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.BaseURL, "base-url", cfg.BaseURL, "directory API base URL (ADMINCTL_BASE_URL)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout (ADMINCTL_TIMEOUT)")
	flags.DurationVar(&a.cfg.SectionTimeout, "section-timeout", cfg.SectionTimeout, "per-section load timeout (ADMINCTL_SECTION_TIMEOUT)")
	flags.BoolVar(&a.json, "json", false, "print results as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests and console events to stderr")

	root.AddCommand(newLookupCommand(a), newPropertiesCommand(a), newPingCommand(a))
	return root
}

func (a *app) init() error {
	if strings.TrimSpace(a.cfg.BaseURL) == "" {
		return errors.New("--base-url is required")
	}
	log := logger.Discard()
	if a.verbose {
		log = logger.NewWithWriter(a.cfg.Env, a.errOut)
	}

	a.log = log
	a.bus = events.NewInMemoryBus(log)
	if a.verbose {
		a.bus.Subscribe(events.AllEvents, diagnostics.NewLogHandler(log))
	}
	a.client = client.New(a.cfg.BaseURL, a.cfg.Timeout, log)
	// Each invocation runs one lookup, so sessions never need to expire.
	a.console = service.New(a.client, validator.New(), a.bus, log, service.Options{
		SectionTimeout: a.cfg.SectionTimeout,
	})
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs adminctl with the process arguments and environment.
func Execute() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, prefixError, err)
		return 2
	}
	root := NewRootCommand(cfg, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, prefixError, describeError(err))
		return 1
	}
	return 0
}

func describeError(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
