package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"modtagger/internal/app"
)

type tagOptions struct {
	Candidate    int
	OverwriteAll bool
}

func newTagCommand(cfg *RootConfig) *cobra.Command {
	opts := tagOptions{}
	cmd := &cobra.Command{
		Use:   "tag <filename>",
		Short: "Apply a catalog candidate to an installed mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd, cfg)
			result, err := service.Tag(cmd.Context(), app.TagRequest{
				Filename:     args[0],
				Candidate:    opts.Candidate,
				OverwriteAll: opts.OverwriteAll,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tagged %s as %s (id=%s, candidate %d of %d)\n",
				result.Mod.Filename, result.Mod.Info.ModName, result.Mod.Info.ID, opts.Candidate, result.Available)
			return nil
		},
	}
	// Per-invocation choices; never read from config or environment.
	cmd.Flags().IntVar(&opts.Candidate, "candidate", 0, "Index of the candidate to apply")
	cmd.Flags().BoolVar(&opts.OverwriteAll, "overwrite-all", false, "Replace fields that are already set")
	return cmd
}
