package policies

import "modtagger/internal/types"

// MergeModInfo returns current updated with the values of info. With
// overwriteAll every field of info wins, even an empty one; otherwise a
// field is only taken from info when it is empty on current.
func MergeModInfo(current types.ModInfo, info types.ModInfo, overwriteAll bool) types.ModInfo {
	merged := current
	merged.ID = pickString(current.ID, info.ID, overwriteAll)
	merged.ModName = pickString(current.ModName, info.ModName, overwriteAll)
	merged.Author = pickString(current.Author, info.Author, overwriteAll)
	merged.Description = pickString(current.Description, info.Description, overwriteAll)
	merged.Website = pickString(current.Website, info.Website, overwriteAll)
	merged.CategoryID = pickString(current.CategoryID, info.CategoryID, overwriteAll)
	if overwriteAll || !current.Version.IsSet() {
		merged.Version = info.Version
	}
	return merged
}

func pickString(current string, incoming string, overwriteAll bool) string {
	if overwriteAll || current == "" {
		return incoming
	}
	return current
}
