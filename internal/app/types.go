package app

import "modtagger/internal/types"

type CandidatesRequest struct {
	Filename string
}

type CandidatesResult struct {
	Mod        types.InstalledMod
	Candidates []types.ModInfo
}

type TagRequest struct {
	Filename     string
	Candidate    int
	OverwriteAll bool
}

type TagResult struct {
	Mod       types.InstalledMod
	Applied   types.ModInfo
	Available int
}

type UpdateState string

const (
	UpdateStateUpToDate        UpdateState = "up-to-date"
	UpdateStateUpdateAvailable UpdateState = "update-available"
	UpdateStateUnknown         UpdateState = "unknown"
)

type UpdateStatus struct {
	Filename  string
	ModID     string
	ModName   string
	Installed string
	Latest    string
	State     UpdateState
}

type UpdatesResult struct {
	Statuses []UpdateStatus
}

type InspectModSummary struct {
	Filename string
	ModID    string
	ModName  string
	Version  string
	Author   string
	Tagged   bool
}

type InspectResult struct {
	Mods []InspectModSummary
}
