package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"modtagger/internal/core"
	"modtagger/internal/types"
)

// CheckUpdates compares every tagged mod against its catalog record.
func (s Service) CheckUpdates(ctx context.Context) (UpdatesResult, error) {
	if err := s.requirePorts(); err != nil {
		return UpdatesResult{}, err
	}
	mods, err := s.Store.Load(ctx)
	if err != nil {
		return UpdatesResult{}, err
	}
	comparer := core.NewVersionComparer()
	result := UpdatesResult{Statuses: []UpdateStatus{}}
	for _, mod := range mods {
		if strings.TrimSpace(mod.Info.ID) == "" {
			continue
		}
		status, err := s.updateStatus(ctx, comparer, mod)
		if err != nil {
			return UpdatesResult{}, err
		}
		result.Statuses = append(result.Statuses, status)
	}
	return result, nil
}

func (s Service) updateStatus(ctx context.Context, comparer *core.VersionComparer, mod types.InstalledMod) (UpdateStatus, error) {
	status := UpdateStatus{
		Filename:  mod.Filename,
		ModID:     mod.Info.ID,
		ModName:   mod.Info.ModName,
		Installed: mod.Info.Version.String(),
		State:     UpdateStateUnknown,
	}
	latest, found, err := s.Catalog.GetModInfo(ctx, mod.Info.ID)
	if err != nil {
		return UpdateStatus{}, err
	}
	if !found {
		return status, nil
	}
	status.Latest = latest.Version.String()
	order, ok, err := comparer.Compare(mod.Info.Version, latest.Version)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("mod_id", mod.Info.ID).Msg("version comparison failed")
		return status, nil
	}
	if !ok {
		return status, nil
	}
	if order < 0 {
		status.State = UpdateStateUpdateAvailable
	} else {
		status.State = UpdateStateUpToDate
	}
	return status, nil
}
