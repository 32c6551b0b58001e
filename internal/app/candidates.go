package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"modtagger/internal/adapters"
	"modtagger/internal/core"
	"modtagger/internal/shared"
	"modtagger/internal/types"
)

func (s Service) Candidates(ctx context.Context, req CandidatesRequest) (CandidatesResult, error) {
	mods, index, err := s.loadInstalledMod(ctx, req.Filename)
	if err != nil {
		return CandidatesResult{}, err
	}
	installed := mods[index]
	tagger := core.NewAutoTagger(s.Catalog)
	candidates, err := tagger.TagInfoCandidates(ctx, adapters.NewManagedMod(&installed))
	if err != nil {
		return CandidatesResult{}, err
	}
	log.Ctx(ctx).Info().Str("filename", installed.Filename).Int("candidates", len(candidates)).Msg("resolved tag candidates")
	return CandidatesResult{Mod: installed, Candidates: candidates}, nil
}

// loadInstalledMod returns the stored mods together with the index of the
// one installed from filename.
func (s Service) loadInstalledMod(ctx context.Context, filename string) ([]types.InstalledMod, int, error) {
	if err := s.requirePorts(); err != nil {
		return nil, 0, err
	}
	key := shared.NormalizeFilename(filename)
	if key == "" {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mod filename is required")
	}
	mods, err := s.Store.Load(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i, mod := range mods {
		if shared.NormalizeFilename(mod.Filename) == key {
			return mods, i, nil
		}
	}
	return nil, 0, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("mod not installed: %s", strings.TrimSpace(filename)))
}

func (s Service) requirePorts() error {
	if s.Catalog == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog location is required")
	}
	if s.Store == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mod store is required")
	}
	return nil
}
