package core

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Mod is one installed mod archive and its parsed metadata. A Mod is fully
// parsed when constructed; there is no lazy state, and the archive path
// never changes afterwards.
type Mod struct {
	ArchivePath string
	Info        ModInfo
}

func NewMod(archivePath string, info ModInfo) *Mod {
	return &Mod{
		ArchivePath: archivePath,
		Info:        info,
	}
}

func (m *Mod) Name() string {
	return m.Info.Field("name")
}

func (m *Mod) ModID() string {
	return m.Info.Field("modid")
}

func (m *Mod) Version() string {
	return m.Info.Field("version")
}

func (m *Mod) Description() string {
	return m.Info.Field("description")
}

// DisplayName is the mod name, or a title derived from the archive file name
// when the metadata has none. Used for search and export listings only;
// Summary keeps its fixed placeholders.
func (m *Mod) DisplayName() string {
	if name := m.Name(); name != "" {
		return name
	}
	return GuessNameFromFile(filepath.Base(m.ArchivePath))
}

// Matches reports whether the query equals the mod's name or mod id,
// case-insensitively.
func (m *Mod) Matches(query string) bool {
	query = strings.ToLower(query)
	return query == strings.ToLower(m.Name()) || query == strings.ToLower(m.ModID())
}

// Summary is the one-line listing form: name (modid) [version] - description.
func (m *Mod) Summary() string {
	return fmt.Sprintf("%s (%s) [%s] - %s",
		orDefault(m.Name(), "UNKNOWN"),
		orDefault(m.ModID(), "ModID unknown"),
		orDefault(m.Version(), "Version unknown"),
		orDefault(m.Description(), "No description"),
	)
}

// WriteAll dumps the archive path header and every metadata pair, one per
// line, in the order they appear in modinfo.json.
func (m *Mod) WriteAll(w io.Writer) {
	fmt.Fprintf(w, "Mod located at %q:\n\n", m.ArchivePath)
	for _, key := range m.Info.Keys() {
		fmt.Fprintf(w, "%s: %s\n", key, m.Info.Field(key))
	}
}

// CheckUpdate would query the mod site for available versions and return
// them sorted newest-first.
func (m *Mod) CheckUpdate() ([]string, error) {
	return nil, fmt.Errorf("check-update for %s: %w", m.ArchivePath, ErrNotImplemented)
}

// Remove would delete the archive and deregister the mod.
func (m *Mod) Remove() error {
	return fmt.Errorf("remove for %s: %w", m.ArchivePath, ErrNotImplemented)
}

// UpdateTo would replace the archive with the given version.
func (m *Mod) UpdateTo(version string) error {
	return fmt.Errorf("update of %s to %s: %w", m.ArchivePath, version, ErrNotImplemented)
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
