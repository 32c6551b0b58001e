package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"modtagger/internal/types"
)

func TestMergeModInfoFillBlanks(t *testing.T) {
	current := types.ModInfo{
		ModName: "My Grass",
		Author:  "me",
	}
	info := types.ModInfo{
		ID:          "42",
		ModName:     "Better Grass",
		Version:     types.HumanReadableVersion("2.0"),
		Author:      "someone",
		Description: "greener grass",
	}

	merged := MergeModInfo(current, info, false)

	want := types.ModInfo{
		ID:          "42",
		ModName:     "My Grass",
		Version:     types.HumanReadableVersion("2.0"),
		Author:      "me",
		Description: "greener grass",
	}
	if diff := cmp.Diff(want, merged, cmp.AllowUnexported(types.Version{})); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
}

func TestMergeModInfoKeepsSetVersion(t *testing.T) {
	current := types.ModInfo{Version: types.MachineVersion(types.VersionSchemeSemver, "1.0.0")}
	info := types.ModInfo{Version: types.HumanReadableVersion("2.0")}

	merged := MergeModInfo(current, info, false)
	assert.Equal(t, "1.0.0", merged.Version.String())
	assert.Equal(t, types.VersionKindMachine, merged.Version.Kind())
}

func TestMergeModInfoOverwriteAll(t *testing.T) {
	current := types.ModInfo{
		ID:      "7",
		ModName: "My Grass",
		Version: types.HumanReadableVersion("1.0"),
		Website: "https://example.com/old",
	}
	info := types.ModInfo{
		ID:      "42",
		ModName: "Better Grass",
		Version: types.HumanReadableVersion("2.0"),
	}

	merged := MergeModInfo(current, info, true)
	if diff := cmp.Diff(info, merged, cmp.AllowUnexported(types.Version{})); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
}

func TestMergeModInfoDoesNotTouchInputs(t *testing.T) {
	current := types.ModInfo{ModName: "Mine"}
	info := types.ModInfo{ModName: "Theirs", Author: "them"}

	_ = MergeModInfo(current, info, true)
	assert.Equal(t, "Mine", current.ModName)
	assert.Equal(t, "", current.Author)
}
