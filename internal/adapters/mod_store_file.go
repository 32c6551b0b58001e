package adapters

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"modtagger/internal/ports"
	"modtagger/internal/types"
)

// ModStoreFileAdapter persists installed mods in a YAML file. A missing file
// is an empty store.
type ModStoreFileAdapter struct {
	Path string
}

func NewModStoreFileAdapter(path string) ModStoreFileAdapter {
	return ModStoreFileAdapter{Path: path}
}

func (a ModStoreFileAdapter) Load(ctx context.Context) ([]types.InstalledMod, error) {
	data, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.InstalledMod{}, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read mod store").
			WithCause(err)
	}
	var store types.ModStoreFile
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid mod store format").
			WithCause(err)
	}
	mods := make([]types.InstalledMod, 0, len(store.Mods))
	for _, entry := range store.Mods {
		info, err := modInfoFromRecord(entry.ModRecord)
		if err != nil {
			return nil, err
		}
		mods = append(mods, types.InstalledMod{Filename: entry.Filename, Info: info})
	}
	log.Ctx(ctx).Debug().Str("path", a.Path).Int("mods", len(mods)).Msg("mod store loaded")
	return mods, nil
}

func (a ModStoreFileAdapter) Save(ctx context.Context, mods []types.InstalledMod) error {
	store := types.ModStoreFile{Mods: make([]types.StoreEntry, 0, len(mods))}
	for _, mod := range mods {
		store.Mods = append(store.Mods, types.StoreEntry{
			Filename:  mod.Filename,
			ModRecord: recordFromModInfo(mod.Info),
		})
	}
	data, err := yaml.Marshal(store)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode mod store").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create mod store directory").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write mod store").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("path", a.Path).Int("mods", len(mods)).Msg("mod store saved")
	return nil
}

var _ ports.ModStorePort = ModStoreFileAdapter{}
