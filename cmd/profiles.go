package cmd

import (
	"fmt"

	"qa-preview/core/profile"

	"github.com/spf13/cobra"
)

// profilesCmd lists the available presets.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available server profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range profile.Names() {
			p, err := profile.Lookup(name)
			if err != nil {
				return err
			}
			marker := " "
			if name == profile.Default {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %-8s %s\n", marker, p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(profilesCmd)
}
