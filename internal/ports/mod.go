package ports

import (
	"context"

	"modtagger/internal/types"
)

// ModPort is an installed mod as seen by the tagger.
type ModPort interface {
	ID() string
	ModName() string
	Filename() string

	// UpdateInfo copies info onto the mod. With overwriteAll every field is
	// replaced; otherwise only fields that are currently empty are filled.
	UpdateInfo(info types.ModInfo, overwriteAll bool) error
}

type ModStorePort interface {
	Load(ctx context.Context) ([]types.InstalledMod, error)
	Save(ctx context.Context, mods []types.InstalledMod) error
}
