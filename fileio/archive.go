package fileio

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/vsmodtools/vsmod/core"
)

// ModInfoFileName is the metadata entry every mod archive must carry at its
// root.
const ModInfoFileName = "modinfo.json"

// IsModArchive reports whether the path is a readable zip container. It says
// nothing about the metadata inside; plain files and directories are not
// archives.
func IsModArchive(fs afero.Fs, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return false
	}
	_, err = zip.NewReader(f, fi.Size())
	return err == nil
}

// LoadModArchive opens a zip-format mod archive, extracts its modinfo.json
// entry, and builds the parsed mod record. A missing entry or malformed
// metadata yields a *core.ParseError carrying the archive path.
func LoadModArchive(fs afero.Fs, archivePath string) (*core.Mod, error) {
	f, err := fs.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return nil, &core.ParseError{Path: archivePath, Err: err}
	}

	entry, err := zr.Open(ModInfoFileName)
	if err != nil {
		return nil, &core.ParseError{
			Path: archivePath,
			Err:  fmt.Errorf("missing %s entry: %w", ModInfoFileName, err),
		}
	}
	defer entry.Close()

	raw, err := io.ReadAll(entry)
	if err != nil {
		return nil, &core.ParseError{Path: archivePath, Err: err}
	}

	info, err := core.ParseModInfo(raw)
	if err != nil {
		return nil, &core.ParseError{Path: archivePath, Err: err}
	}

	return core.NewMod(archivePath, info), nil
}

// FingerprintArchive computes a digest of the whole archive file in the
// given format (see core.FingerprintFormats).
func FingerprintArchive(fs afero.Fs, archivePath, hashFormat string) (string, error) {
	hasher, err := core.GetHashImpl(hashFormat)
	if err != nil {
		return "", err
	}

	f, err := fs.Open(archivePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hasher.String(), nil
}
