package fileio

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vsmodtools/vsmod/core"
)

// ModsDirName is the subdirectory of the data directory that holds mod
// archives.
const ModsDirName = "Mods"

// Scanner enumerates the mod archives installed under a Vintage Story data
// directory and keeps the parsed records. Every Refresh is a full rescan;
// there is no incremental state.
type Scanner struct {
	fs afero.Fs

	DataDir string
	ModsDir string

	mods []*core.Mod
}

func NewScanner(dataDir string) *Scanner {
	return NewScannerFs(afero.NewOsFs(), dataDir)
}

func NewScannerFs(fs afero.Fs, dataDir string) *Scanner {
	return &Scanner{
		fs:      fs,
		DataDir: dataDir,
		ModsDir: filepath.Join(dataDir, ModsDirName),
		mods:    []*core.Mod{},
	}
}

// LoadScanner builds a scanner for the data directory and performs the
// initial scan. Parse failures are returned for reporting; only filesystem
// errors on the mods directory are fatal.
func LoadScanner(dataDir string) (*Scanner, []*core.ParseError, error) {
	scanner := NewScanner(dataDir)
	skipped, err := scanner.Refresh(nil)
	if err != nil {
		return nil, nil, err
	}
	return scanner, skipped, nil
}

// Candidates lists the zip-format files currently in the mods directory, in
// directory order. Entries that are not valid zip containers are silently
// left out.
func (s *Scanner) Candidates() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.ModsDir)
	if err != nil {
		return nil, fmt.Errorf("reading mods directory: %w", err)
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.ModsDir, entry.Name())
		if IsModArchive(s.fs, path) {
			archives = append(archives, path)
		}
	}
	return archives, nil
}

// Refresh rescans the mods directory and atomically replaces the record
// list. Archives whose metadata cannot be parsed are skipped and reported
// as *core.ParseError values; the rest of the scan continues. The optional
// progress callback is invoked once per candidate archive.
func (s *Scanner) Refresh(progress func(done, total int)) ([]*core.ParseError, error) {
	archives, err := s.Candidates()
	if err != nil {
		return nil, err
	}

	mods := make([]*core.Mod, 0, len(archives))
	var skipped []*core.ParseError
	for i, path := range archives {
		mod, err := LoadModArchive(s.fs, path)
		if err != nil {
			parseErr, ok := err.(*core.ParseError)
			if !ok {
				return nil, err
			}
			skipped = append(skipped, parseErr)
		} else {
			mods = append(mods, mod)
		}
		if progress != nil {
			progress(i+1, len(archives))
		}
	}

	s.mods = mods
	return skipped, nil
}

// Mods returns the records from the last refresh, in scan order. The slice
// is a copy; callers may reorder it without disturbing the scanner.
func (s *Scanner) Mods() []*core.Mod {
	mods := make([]*core.Mod, len(s.mods))
	copy(mods, s.mods)
	return mods
}

// Get returns every record whose name or mod id equals the query,
// case-insensitively. The data enforces no uniqueness, so multiple records
// can match.
func (s *Scanner) Get(query string) []*core.Mod {
	var matches []*core.Mod
	for _, mod := range s.mods {
		if mod.Matches(query) {
			matches = append(matches, mod)
		}
	}
	return matches
}

// Install would fetch a mod archive by id into the mods directory.
func (s *Scanner) Install(modID string) error {
	return fmt.Errorf("install of %s: %w", modID, core.ErrNotImplemented)
}

// RemoveMod would delete the archives matching the id and rescan.
func (s *Scanner) RemoveMod(modID string) error {
	return fmt.Errorf("remove of %s: %w", modID, core.ErrNotImplemented)
}
