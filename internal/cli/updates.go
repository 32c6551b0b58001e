package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdatesCommand(cfg *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "updates",
		Short: "Compare tagged mods against the catalog's latest versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newAppService(cmd, cfg)
			result, err := service.CheckUpdates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Statuses) == 0 {
				fmt.Fprintln(out, "no tagged mods")
				return nil
			}
			for _, status := range result.Statuses {
				fmt.Fprintf(out, "%s %s (id=%s): installed=%s latest=%s\n",
					status.State, status.ModName, status.ModID, orDash(status.Installed), orDash(status.Latest))
			}
			return nil
		},
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
