package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"modtagger/internal/types"
)

func TestInspectApp(t *testing.T) {
	service, _ := newTestService(t,
		types.InstalledMod{Filename: "Sky.7z", Info: types.ModInfo{ID: "44", ModName: "Sky Overhaul", Version: types.HumanReadableVersion("1.0")}},
		types.InstalledMod{Filename: "bettergrass.zip", Info: types.ModInfo{ModName: "Better Grass"}},
	)

	result, err := service.Inspect(t.Context())
	require.NoError(t, err)
	want := []InspectModSummary{
		{Filename: "bettergrass.zip", ModName: "Better Grass"},
		{Filename: "Sky.7z", ModID: "44", ModName: "Sky Overhaul", Version: "1.0", Tagged: true},
	}
	if diff := cmp.Diff(want, result.Mods); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}
