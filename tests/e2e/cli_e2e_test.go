package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"modtagger/internal/types"
	"modtagger/tests/testutil"
)

func runModtagger(t *testing.T, root string, args ...string) string {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "./cmd/modtagger"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func TestCandidatesCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	out := runModtagger(t, root, "candidates", "bettergrass-v2.zip",
		"--catalog", "fixtures/catalog.yaml",
		"--store", "fixtures/mods.yaml",
	)
	require.Contains(t, out, "[0] Better Grass - Main (id=42)")
	require.Contains(t, out, "[1] Better Grass - HD (id=42)")
}

func TestTagCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	storePath := filepath.Join(t.TempDir(), "mods.yaml")
	data, err := os.ReadFile(filepath.Join(root, "fixtures", "mods.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(storePath, data, 0o644))

	out := runModtagger(t, root, "tag", "bettergrass-v2.zip",
		"--catalog", "fixtures/catalog.toml",
		"--store", storePath,
		"--candidate", "1",
	)
	require.Contains(t, out, "tagged bettergrass-v2.zip")

	saved, err := os.ReadFile(storePath)
	require.NoError(t, err)
	var store types.ModStoreFile
	require.NoError(t, yaml.Unmarshal(saved, &store))
	require.Equal(t, "42", store.Mods[0].ID)
	require.Equal(t, "Better Grass", store.Mods[0].Name)
	require.Equal(t, "2.0-HD", store.Mods[0].Version)
	require.Equal(t, "grassman", store.Mods[0].Author)
}

func TestUpdatesCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	out := runModtagger(t, root, "updates",
		"--catalog", "fixtures/catalog.yaml",
		"--store", "fixtures/mods.yaml",
	)
	require.Contains(t, out, "unknown Quiet Nights (id=46): installed=0.9 latest=1.0 final")
}
