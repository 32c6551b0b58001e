package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"modtagger/internal/adapters"
	"modtagger/internal/core"
)

// Tag resolves the candidates for an installed mod, applies the selected one
// and persists the store.
func (s Service) Tag(ctx context.Context, req TagRequest) (TagResult, error) {
	mods, index, err := s.loadInstalledMod(ctx, req.Filename)
	if err != nil {
		return TagResult{}, err
	}
	mod := adapters.NewManagedMod(&mods[index])
	tagger := core.NewAutoTagger(s.Catalog)
	candidates, err := tagger.TagInfoCandidates(ctx, mod)
	if err != nil {
		return TagResult{}, err
	}
	if len(candidates) == 0 {
		return TagResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no tag candidates for %s", mods[index].Filename))
	}
	if req.Candidate < 0 || req.Candidate >= len(candidates) {
		return TagResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("candidate %d out of range (%d available)", req.Candidate, len(candidates)))
	}
	selected := candidates[req.Candidate]
	if err := tagger.Tag(mod, selected, req.OverwriteAll); err != nil {
		return TagResult{}, err
	}
	if err := s.Store.Save(ctx, mods); err != nil {
		return TagResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("filename", mods[index].Filename).
		Str("mod_id", selected.ID).
		Bool("overwrite_all", req.OverwriteAll).
		Msg("mod tagged")
	return TagResult{
		Mod:       mods[index],
		Applied:   selected,
		Available: len(candidates),
	}, nil
}
