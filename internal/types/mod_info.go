package types

// ModInfo is the mod-level metadata a repository holds for a mod. Values are
// never modified in place; derived records are built with the With* helpers.
type ModInfo struct {
	ID          string
	ModName     string
	Version     Version
	Author      string
	Description string
	Website     string
	CategoryID  string
}

func (m ModInfo) WithVersion(version Version) ModInfo {
	m.Version = version
	return m
}

func (m ModInfo) WithModName(name string) ModInfo {
	m.ModName = name
	return m
}

// ModFileInfo describes one downloadable file of a mod.
type ModFileInfo struct {
	ID                   string
	Filename             string
	Name                 string
	HumanReadableVersion string
}

// InstalledMod is the locally persisted record of an installed mod.
type InstalledMod struct {
	Filename string
	Info     ModInfo
}
