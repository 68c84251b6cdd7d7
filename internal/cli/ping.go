package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the directory API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("%s unreachable: %w", a.client.BaseURL(), err)
			}
			fmt.Fprintf(a.out, "%s %s\n", prefixLoaded, a.client.BaseURL())
			return nil
		},
	}
}
