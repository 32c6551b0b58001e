package adapters

import (
	"modtagger/internal/policies"
	"modtagger/internal/ports"
	"modtagger/internal/types"
)

// ManagedMod exposes a stored installed mod to the tagger. Updates are
// written straight into the wrapped record.
type ManagedMod struct {
	mod *types.InstalledMod
}

func NewManagedMod(mod *types.InstalledMod) ManagedMod {
	return ManagedMod{mod: mod}
}

func (m ManagedMod) ID() string {
	return m.mod.Info.ID
}

func (m ManagedMod) ModName() string {
	return m.mod.Info.ModName
}

func (m ManagedMod) Filename() string {
	return m.mod.Filename
}

func (m ManagedMod) UpdateInfo(info types.ModInfo, overwriteAll bool) error {
	m.mod.Info = policies.MergeModInfo(m.mod.Info, info, overwriteAll)
	return nil
}

var _ ports.ModPort = ManagedMod{}
