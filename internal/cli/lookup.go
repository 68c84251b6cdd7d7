package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"admin_console/internal/console/service"

	"github.com/spf13/cobra"
)

func newLookupCommand(a *app) *cobra.Command {
	var in service.Input
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Resolve a user and load their profile",
		Long: `Resolve exactly one of --user-id, --identity-id or --email to a user and
load every profile section. The identity section is only loaded when an
identity ID is known.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.console.Lookup(cmd.Context(), "", in)
			if err != nil {
				return err
			}
			a.drainEvents(cmd.Context())
			if a.json {
				return a.printJSON(result.ProfileBundle)
			}
			return a.printBundle(result.ProfileBundle)
		},
	}
	cmd.Flags().StringVar(&in.UserID, "user-id", "", "user ID, e.g. user_001")
	cmd.Flags().StringVar(&in.IdentityID, "identity-id", "", "identity ID, e.g. auth0|123456789")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	return cmd
}

// drainEvents waits for the console events of the lookup so verbose output
// is complete before the result is printed.
func (a *app) drainEvents(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	if err := a.bus.Drain(ctx); err != nil {
		a.log.Warn("console events still in flight", "error", err)
	}
}

func (a *app) printBundle(b service.ProfileBundle) error {
	fmt.Fprintf(a.out, "%s %s\n", styleHeading.Render("User"), b.Resolved.UserID)
	if b.Resolved.IdentityID != "" {
		fmt.Fprintf(a.out, "%s %s\n", styleHeading.Render("Identity"), b.Resolved.IdentityID)
	}
	if b.Degraded {
		fmt.Fprintf(a.out, "%s %s\n", prefixFallback, styleFallback.Render(fmt.Sprintf("%d section(s) show placeholder data", len(b.FallbackSections))))
	}

	for _, id := range service.AllSections {
		state := b.State(id)
		fmt.Fprintln(a.out)
		switch state.Status {
		case service.StatusLoaded:
			fmt.Fprintf(a.out, "%s %s\n", prefixLoaded, styleHeading.Render(string(id)))
		case service.StatusFallback:
			fmt.Fprintf(a.out, "%s %s %s\n", prefixFallback, styleHeading.Render(string(id)), styleDim.Render("(fallback: "+state.Error+")"))
		default:
			fmt.Fprintf(a.out, "%s %s %s\n", prefixIdle, styleHeading.Render(string(id)), styleDim.Render("("+string(state.Status)+")"))
			continue
		}
		if err := a.printData(state.Data); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printData(data any) error {
	raw, err := json.MarshalIndent(data, "  ", "  ")
	if err != nil {
		return fmt.Errorf("render section: %w", err)
	}
	fmt.Fprintln(a.out, "  "+strings.TrimSpace(string(raw)))
	return nil
}
