package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"modtagger/internal/app"
	"modtagger/internal/types"
)

func newCandidatesCommand(cfg *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <filename>",
		Short: "List catalog metadata candidates for an installed mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newAppService(cmd, cfg)
			result, err := service.Candidates(cmd.Context(), app.CandidatesRequest{Filename: args[0]})
			if err != nil {
				return err
			}
			printCandidates(cmd.OutOrStdout(), result.Mod, result.Candidates)
			return nil
		},
	}
}

func printCandidates(out io.Writer, mod types.InstalledMod, candidates []types.ModInfo) {
	if len(candidates) == 0 {
		fmt.Fprintf(out, "no candidates for %s\n", mod.Filename)
		return
	}
	fmt.Fprintf(out, "candidates for %s:\n", mod.Filename)
	for i, info := range candidates {
		fmt.Fprintf(out, "[%d] %s (id=%s)", i, info.ModName, info.ID)
		if info.Version.IsSet() {
			fmt.Fprintf(out, " version=%s", info.Version.String())
		}
		if info.Author != "" {
			fmt.Fprintf(out, " author=%s", info.Author)
		}
		fmt.Fprintln(out)
	}
}
