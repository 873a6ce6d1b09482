package cmd

import (
	"fmt"

	"qa-preview/core/config"
	"qa-preview/feature/spa"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// resolveCmd shows which file a request path would be served from.
var resolveCmd = &cobra.Command{
	Use:   "resolve <path> [profile]",
	Short: "Show which file a request path resolves to",
	Long:  `Runs the same path resolution as the server without binding a port. Useful to debug client routes and missing assets.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".", profileArg(args, 1))
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		resolver, err := spa.NewResolver(cfg.Site)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Profile:   %s\n", cfg.Profile.Name)
		fmt.Fprintf(w, "Root:      %s\n", resolver.Root())
		fmt.Fprintf(w, "Request:   %s\n", args[0])

		res, err := resolver.Resolve(args[0])
		if err != nil {
			fmt.Fprintf(w, "Result:    %s\n", color.RedString("%v", err))
			return nil
		}

		fmt.Fprintf(w, "Served:    %s\n", res.Path)
		if res.Fallback {
			fmt.Fprintf(w, "Result:    %s\n", color.YellowString("fallback document (client route)"))
		} else {
			fmt.Fprintf(w, "Result:    %s\n", color.GreenString("file"))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}
