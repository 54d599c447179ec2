package fileio

import (
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/vsmodtools/vsmod/core"
)

// ModListFileName is the default manifest file written by the export
// command.
const ModListFileName = "modlist.toml"

type ModListEntry struct {
	Name        string `toml:"name"`
	Slug        string `toml:"slug,omitempty"`
	ModID       string `toml:"modid,omitempty"`
	Version     string `toml:"version,omitempty"`
	Description string `toml:"description,omitempty"`
	File        string `toml:"file"`
}

type ModList struct {
	Mods []ModListEntry `toml:"mods"`
}

// BuildModList flattens the records into a manifest, sorted by display name
// for stable output.
func BuildModList(mods []*core.Mod) ModList {
	list := ModList{Mods: make([]ModListEntry, 0, len(mods))}
	for _, mod := range mods {
		list.Mods = append(list.Mods, ModListEntry{
			Name:        mod.DisplayName(),
			Slug:        core.SlugifyName(mod.DisplayName()),
			ModID:       mod.ModID(),
			Version:     mod.Version(),
			Description: mod.Description(),
			File:        mod.ArchivePath,
		})
	}
	sort.Slice(list.Mods, func(i, j int) bool {
		return strings.ToLower(list.Mods[i].Name) < strings.ToLower(list.Mods[j].Name)
	})
	return list
}

// WriteModList marshals the manifest for the given records to path.
func WriteModList(fs afero.Fs, path string, mods []*core.Mod) error {
	raw, err := toml.Marshal(BuildModList(mods))
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, raw, 0644)
}
