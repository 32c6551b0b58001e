package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"modtagger/internal/ports"
	"modtagger/internal/shared"
	"modtagger/internal/types"
)

// CatalogFileAdapter serves mod metadata from a local catalog file. Files
// ending in .toml are read as TOML, anything else as YAML. The file is read
// once, on first use.
type CatalogFileAdapter struct {
	Path   string
	cached catalogIndex
	loaded bool
}

type fileHit struct {
	modID string
	file  types.ModFileInfo
}

type catalogIndex struct {
	mods       []types.ModInfo
	byID       map[string]types.ModInfo
	byFile     map[string]fileHit
	filesByMod map[string][]types.ModFileInfo
}

func NewCatalogFileAdapter(path string) *CatalogFileAdapter {
	return &CatalogFileAdapter{Path: path}
}

func (a *CatalogFileAdapter) GetModInfo(ctx context.Context, id string) (types.ModInfo, bool, error) {
	index, err := a.load(ctx)
	if err != nil {
		return types.ModInfo{}, false, err
	}
	info, ok := index.byID[strings.TrimSpace(id)]
	return info, ok, nil
}

func (a *CatalogFileAdapter) GetModInfoForFile(ctx context.Context, filename string) (types.ModInfo, bool, error) {
	index, err := a.load(ctx)
	if err != nil {
		return types.ModInfo{}, false, err
	}
	hit, ok := index.byFile[shared.NormalizeFilename(filename)]
	if !ok {
		return types.ModInfo{}, false, nil
	}
	info, ok := index.byID[hit.modID]
	return info, ok, nil
}

func (a *CatalogFileAdapter) FindMods(ctx context.Context, name string, strict bool) ([]types.ModInfo, error) {
	index, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	var matches []types.ModInfo
	for _, info := range index.mods {
		if matchModName(name, info.ModName, strict) {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

func (a *CatalogFileAdapter) GetFileInfoForFile(ctx context.Context, filename string) (types.ModFileInfo, bool, error) {
	index, err := a.load(ctx)
	if err != nil {
		return types.ModFileInfo{}, false, err
	}
	hit, ok := index.byFile[shared.NormalizeFilename(filename)]
	return hit.file, ok, nil
}

func (a *CatalogFileAdapter) GetModFileInfo(ctx context.Context, modID string) ([]types.ModFileInfo, error) {
	index, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return index.filesByMod[strings.TrimSpace(modID)], nil
}

func (a *CatalogFileAdapter) load(ctx context.Context) (catalogIndex, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return catalogIndex{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.CatalogFile
	if strings.EqualFold(filepath.Ext(a.Path), ".toml") {
		err = toml.Unmarshal(data, &catalog)
	} else {
		err = yaml.Unmarshal(data, &catalog)
	}
	if err != nil {
		return catalogIndex{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid catalog format").
			WithCause(err)
	}
	index, err := buildCatalogIndex(ctx, catalog)
	if err != nil {
		return catalogIndex{}, err
	}
	log.Ctx(ctx).Debug().Str("path", a.Path).Int("mods", len(index.mods)).Msg("catalog loaded")
	a.cached = index
	a.loaded = true
	return index, nil
}

func buildCatalogIndex(ctx context.Context, catalog types.CatalogFile) (catalogIndex, error) {
	index := catalogIndex{
		byID:       map[string]types.ModInfo{},
		byFile:     map[string]fileHit{},
		filesByMod: map[string][]types.ModFileInfo{},
	}
	for _, mod := range catalog.Mods {
		info, err := modInfoFromRecord(mod.ModRecord)
		if err != nil {
			return catalogIndex{}, err
		}
		if info.ID == "" {
			return catalogIndex{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog mod id must be set: %s", mod.Name))
		}
		if _, exists := index.byID[info.ID]; exists {
			return catalogIndex{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate catalog mod id: %s", info.ID))
		}
		assert.NotEmpty(ctx, info.ID, "indexed catalog mod id must be set")
		index.mods = append(index.mods, info)
		index.byID[info.ID] = info
		for _, record := range mod.Files {
			file := fileInfoFromRecord(record)
			index.filesByMod[info.ID] = append(index.filesByMod[info.ID], file)
			key := shared.NormalizeFilename(record.Filename)
			if key == "" {
				continue
			}
			if _, exists := index.byFile[key]; exists {
				return catalogIndex{}, errbuilder.New().
					WithCode(errbuilder.CodeAlreadyExists).
					WithMsg(fmt.Sprintf("duplicate catalog filename: %s", record.Filename))
			}
			index.byFile[key] = fileHit{modID: info.ID, file: file}
		}
	}
	return index, nil
}

var _ ports.ModRepositoryPort = (*CatalogFileAdapter)(nil)
