package cli

import (
	"fmt"

	"admin_console/internal/console/service"
	"admin_console/internal/profile"

	"github.com/spf13/cobra"
)

func newPropertiesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Browse the property catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.console.Browser().Properties(cmd.Context())
			if a.json {
				return a.printJSON(res)
			}
			a.printFallbackNotice(res.Fallback, res.Error)
			for _, p := range res.Data {
				fmt.Fprintf(a.out, "%s = %s\n", styleHeading.Render(p.Key), p.Value)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "groups",
		Short: "List property groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.console.Browser().Groups(cmd.Context())
			if a.json {
				return a.printJSON(res)
			}
			a.printFallbackNotice(res.Fallback, res.Error)
			for _, g := range res.Data {
				a.printGroup(g)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "users <key>",
		Short: "List the users carrying a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.console.Browser().Users(cmd.Context(), args[0])
			if a.json {
				return a.printJSON(res)
			}
			a.printFallbackNotice(res.Fallback, res.Error)
			a.printPropertyUsers(res)
			return nil
		},
	})

	return cmd
}

func (a *app) printGroup(g profile.PropertyGroup) {
	fmt.Fprintf(a.out, "%s %s\n", styleHeading.Render(g.Name), styleDim.Render("("+g.ID+")"))
	for _, p := range g.Properties {
		fmt.Fprintf(a.out, "  %s = %s\n", p.Key, p.Value)
	}
}

func (a *app) printPropertyUsers(res service.Browsed[profile.PropertyUsers]) {
	if len(res.Data.UserIDs) == 0 {
		fmt.Fprintf(a.out, "no users have %s\n", res.Data.PropertyKey)
		return
	}
	for _, id := range res.Data.UserIDs {
		fmt.Fprintln(a.out, id)
	}
}

func (a *app) printFallbackNotice(fallback bool, cause string) {
	if fallback {
		fmt.Fprintf(a.errOut, "%s %s\n", prefixFallback, styleFallback.Render("directory unavailable, showing placeholder data: "+cause))
	}
}
