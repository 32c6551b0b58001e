package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Inspect(ctx context.Context) (InspectResult, error) {
	if s.Store == nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mod store is required")
	}
	mods, err := s.Store.Load(ctx)
	if err != nil {
		return InspectResult{}, err
	}
	summaries := make([]InspectModSummary, 0, len(mods))
	for _, mod := range mods {
		summaries = append(summaries, InspectModSummary{
			Filename: mod.Filename,
			ModID:    mod.Info.ID,
			ModName:  mod.Info.ModName,
			Version:  mod.Info.Version.String(),
			Author:   mod.Info.Author,
			Tagged:   strings.TrimSpace(mod.Info.ID) != "",
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return strings.ToLower(summaries[i].Filename) < strings.ToLower(summaries[j].Filename)
	})
	return InspectResult{Mods: summaries}, nil
}
