package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"modtagger/internal/adapters"
	"modtagger/internal/types"
)

const testCatalog = `
mods:
  - id: "42"
    name: Better Grass
    version: "2.1.0"
    version_scheme: semver
    author: grassman
    files:
      - id: "1001"
        filename: bettergrass-main.zip
        name: Main
        version: "2.0"
      - id: "1002"
        filename: bettergrass-hd.zip
        name: HD
        version: "2.0-HD"
  - id: "44"
    name: Sky Overhaul
    version: "1.0.0"
    version_scheme: semver
  - id: "45"
    name: Sky Overhaul Lite
  - id: "46"
    name: Quiet Nights
    version: "1.0 final"
`

type memoryStore struct {
	mods  []types.InstalledMod
	saves int
}

func (m *memoryStore) Load(_ context.Context) ([]types.InstalledMod, error) {
	out := make([]types.InstalledMod, len(m.mods))
	copy(out, m.mods)
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, mods []types.InstalledMod) error {
	m.mods = append([]types.InstalledMod(nil), mods...)
	m.saves++
	return nil
}

func newTestService(t *testing.T, mods ...types.InstalledMod) (Service, *memoryStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	store := &memoryStore{mods: mods}
	return Service{
		Catalog: adapters.NewCatalogFileAdapter(path),
		Store:   store,
	}, store
}
