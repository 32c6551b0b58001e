package adapters

import (
	"strings"

	"modtagger/internal/core"
	"modtagger/internal/types"
)

func modInfoFromRecord(record types.ModRecord) (types.ModInfo, error) {
	version, err := core.ParseVersion(record.VersionScheme, record.Version)
	if err != nil {
		return types.ModInfo{}, err
	}
	return types.ModInfo{
		ID:          strings.TrimSpace(record.ID),
		ModName:     record.Name,
		Version:     version,
		Author:      record.Author,
		Description: record.Description,
		Website:     record.Website,
		CategoryID:  record.CategoryID,
	}, nil
}

func recordFromModInfo(info types.ModInfo) types.ModRecord {
	scheme, raw := core.FormatVersion(info.Version)
	return types.ModRecord{
		ID:            info.ID,
		Name:          info.ModName,
		Version:       raw,
		VersionScheme: scheme,
		Author:        info.Author,
		Description:   info.Description,
		Website:       info.Website,
		CategoryID:    info.CategoryID,
	}
}

func fileInfoFromRecord(record types.FileRecord) types.ModFileInfo {
	return types.ModFileInfo{
		ID:                   record.ID,
		Filename:             record.Filename,
		Name:                 record.Name,
		HumanReadableVersion: record.Version,
	}
}
