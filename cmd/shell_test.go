package cmd

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsmodtools/vsmod/fileio"
)

func shellScanner(t *testing.T) *fileio.Scanner {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/Mods", 0755))

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("modinfo.json")
	require.NoError(t, err)
	_, err = f.Write([]byte(`{"Name":"Test Mod","ModID":"testmod","Version":"1.0.0","Description":"A test"}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, afero.WriteFile(fs, "/data/Mods/a.zip", buf.Bytes(), 0644))

	scanner := fileio.NewScannerFs(fs, "/data")
	_, err = scanner.Refresh(nil)
	require.NoError(t, err)
	return scanner
}

func TestShellDispatchList(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellDispatch(scanner, "list", &out)
	assert.Equal(t, "Test Mod (testmod) [1.0.0] - A test\n", out.String())
}

func TestShellDispatchListQuery(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellDispatch(scanner, "list test mod", &out)
	assert.Contains(t, out.String(), `Mod located at "/data/Mods/a.zip":`)
	assert.Contains(t, out.String(), "modid: testmod")
}

func TestShellDispatchListNoMatch(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellDispatch(scanner, "list nothing-here", &out)
	assert.Empty(t, out.String())
}

func TestShellDispatchHelp(t *testing.T) {
	scanner := shellScanner(t)

	for _, line := range []string{"", "   ", "bogus", "install testmod"} {
		var out bytes.Buffer
		shellDispatch(scanner, line, &out)
		assert.Contains(t, out.String(), "vsmod commands:", "input %q", line)
	}
}

func TestShellDispatchIsCaseInsensitive(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellDispatch(scanner, "LIST TestMod", &out)
	assert.Contains(t, out.String(), "name: Test Mod")
}

func TestShellLoopReportsReadErrors(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellLoop(scanner, iotest.ErrReader(errors.New("tty gone")), &out)

	assert.Contains(t, out.String(), "Error reading input: tty gone")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting vsmod...\n"))
}

func TestShellLoopExitsOnEOF(t *testing.T) {
	scanner := shellScanner(t)

	var out bytes.Buffer
	shellLoop(scanner, strings.NewReader("list\nbogus\n"), &out)

	assert.Contains(t, out.String(), "Test Mod (testmod) [1.0.0] - A test")
	assert.Contains(t, out.String(), "vsmod commands:")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting vsmod...\n"))
}
