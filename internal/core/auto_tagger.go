package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"modtagger/internal/ports"
	"modtagger/internal/types"
)

// AutoTagger finds repository metadata matching installed mods and applies
// the chosen metadata to them.
type AutoTagger struct {
	Repository ports.ModRepositoryPort
}

// lookupStrategy is one stage of the mod-level lookup cascade.
type lookupStrategy struct {
	name   string
	lookup func(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error)
}

func NewAutoTagger(repository ports.ModRepositoryPort) AutoTagger {
	return AutoTagger{Repository: repository}
}

// TagInfoCandidates returns the metadata records that may describe mod.
//
// Mod-level candidates come from the first lookup stage that yields any
// (id, filename, strict name, loose name). When exactly one mod matches it
// is refined with file-level metadata; with zero or several matches the
// candidates are returned as found. Repository errors are returned as is.
func (t AutoTagger) TagInfoCandidates(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
	candidates, err := t.findModCandidates(ctx, mod)
	if err != nil {
		return nil, err
	}
	if len(candidates) != 1 {
		log.Ctx(ctx).Debug().
			Str("filename", mod.Filename()).
			Int("candidates", len(candidates)).
			Msg("skipping file refinement")
		return candidates, nil
	}
	return t.refine(ctx, mod, candidates[0])
}

// Tag applies info to mod through the mod's own update rules.
func (t AutoTagger) Tag(mod ports.ModPort, info types.ModInfo, overwriteAll bool) error {
	return mod.UpdateInfo(info, overwriteAll)
}

func (t AutoTagger) strategies() []lookupStrategy {
	return []lookupStrategy{
		{name: "id", lookup: t.lookupByID},
		{name: "filename", lookup: t.lookupByFilename},
		{name: "name-strict", lookup: t.lookupByName(true)},
		{name: "name-loose", lookup: t.lookupByName(false)},
	}
}

func (t AutoTagger) findModCandidates(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
	for _, strategy := range t.strategies() {
		found, err := strategy.lookup(ctx, mod)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			log.Ctx(ctx).Debug().
				Str("filename", mod.Filename()).
				Str("stage", strategy.name).
				Int("candidates", len(found)).
				Msg("mod lookup matched")
			return found, nil
		}
	}
	return []types.ModInfo{}, nil
}

func (t AutoTagger) lookupByID(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
	id := strings.TrimSpace(mod.ID())
	if id == "" {
		return nil, nil
	}
	info, found, err := t.Repository.GetModInfo(ctx, id)
	if err != nil || !found {
		return nil, err
	}
	return []types.ModInfo{info}, nil
}

func (t AutoTagger) lookupByFilename(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
	info, found, err := t.Repository.GetModInfoForFile(ctx, mod.Filename())
	if err != nil || !found {
		return nil, err
	}
	return []types.ModInfo{info}, nil
}

func (t AutoTagger) lookupByName(strict bool) func(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
	return func(ctx context.Context, mod ports.ModPort) ([]types.ModInfo, error) {
		return t.Repository.FindMods(ctx, mod.ModName(), strict)
	}
}

// refine narrows a single mod-level match down to file-level candidates.
// The mod-level match is kept when no file information exists.
func (t AutoTagger) refine(ctx context.Context, mod ports.ModPort, info types.ModInfo) ([]types.ModInfo, error) {
	fileInfo, found, err := t.Repository.GetFileInfoForFile(ctx, mod.Filename())
	if err != nil {
		return nil, err
	}
	if found {
		return []types.ModInfo{CombineInfo(info, fileInfo)}, nil
	}

	var refined []types.ModInfo
	if strings.TrimSpace(info.ID) != "" {
		files, err := t.Repository.GetModFileInfo(ctx, info.ID)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			refined = append(refined, CombineInfo(info, file))
		}
	}
	if len(refined) == 0 {
		return []types.ModInfo{info}, nil
	}
	log.Ctx(ctx).Debug().
		Str("mod_id", info.ID).
		Int("variants", len(refined)).
		Msg("refined candidate by mod files")
	return refined, nil
}
