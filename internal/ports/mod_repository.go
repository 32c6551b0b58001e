package ports

import (
	"context"

	"modtagger/internal/types"
)

// ModRepositoryPort is the remote catalog queried for mod metadata.
//
// Lookups report a miss through found=false or an empty slice; an error
// always means the catalog itself failed (transport, malformed response).
type ModRepositoryPort interface {
	// GetModInfo returns the mod with the given repository id.
	GetModInfo(ctx context.Context, id string) (info types.ModInfo, found bool, err error)

	// GetModInfoForFile returns the mod owning the file with the given name.
	GetModInfoForFile(ctx context.Context, filename string) (info types.ModInfo, found bool, err error)

	// FindMods searches mods by name. Strict searches match tighter than
	// loose ones.
	FindMods(ctx context.Context, name string, strict bool) ([]types.ModInfo, error)

	// GetFileInfoForFile returns the file-level metadata for the given file
	// name.
	GetFileInfoForFile(ctx context.Context, filename string) (info types.ModFileInfo, found bool, err error)

	// GetModFileInfo lists every file belonging to the given mod.
	GetModFileInfo(ctx context.Context, modID string) ([]types.ModFileInfo, error)
}
