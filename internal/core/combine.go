package core

import (
	"fmt"

	"modtagger/internal/types"
)

// CombineInfo derives a new mod info from info refined by the file-level
// metadata in file. info itself is left untouched.
//
// A file version becomes the human readable version and drops any machine
// version; a file name is appended to the mod name as "<mod> - <file>".
func CombineInfo(info types.ModInfo, file types.ModFileInfo) types.ModInfo {
	updated := info
	if file.HumanReadableVersion != "" {
		updated = updated.WithVersion(types.HumanReadableVersion(file.HumanReadableVersion))
	}
	if file.Name != "" {
		updated = updated.WithModName(fmt.Sprintf("%s - %s", info.ModName, file.Name))
	}
	return updated
}
