package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(cfg *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List installed mods and their metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd, cfg)
			result, err := service.Inspect(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "installed mods: %d\n", len(result.Mods))
			for _, mod := range result.Mods {
				tagged := "untagged"
				if mod.Tagged {
					tagged = "id=" + mod.ModID
				}
				fmt.Fprintf(out, "- %s: %s (%s) version=%s\n", mod.Filename, mod.ModName, tagged, orDash(mod.Version))
			}
			return nil
		},
	}
}
