package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modFromJSON(t *testing.T, path, raw string) *Mod {
	t.Helper()
	info, err := ParseModInfo([]byte(raw))
	require.NoError(t, err)
	return NewMod(path, info)
}

func TestSummaryAllFields(t *testing.T) {
	mod := modFromJSON(t, "/data/Mods/a.zip",
		`{"Name":"Test Mod","ModID":"testmod","Version":"1.0.0","Description":"A test"}`)

	cupaloy.SnapshotT(t, mod.Summary())
}

func TestSummaryBareModID(t *testing.T) {
	mod := modFromJSON(t, "/data/Mods/b.zip", `{"ModID":"bare"}`)

	cupaloy.SnapshotT(t, mod.Summary())
}

func TestSummaryPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "Empty object",
			raw:  `{}`,
			want: "UNKNOWN (ModID unknown) [Version unknown] - No description",
		},
		{
			name: "Name only",
			raw:  `{"name":"Solo"}`,
			want: "Solo (ModID unknown) [Version unknown] - No description",
		},
		{
			name: "Mixed case keys",
			raw:  `{"NAME":"Loud","MODID":"loud","VERSION":"2.1","DESCRIPTION":"Shouts"}`,
			want: "Loud (loud) [2.1] - Shouts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := modFromJSON(t, "x.zip", tt.raw)
			assert.Equal(t, tt.want, mod.Summary())
		})
	}
}

func TestWriteAll(t *testing.T) {
	mod := modFromJSON(t, "/data/Mods/a.zip",
		`{"Name":"Test Mod","ModID":"testmod","Version":"1.0.0"}`)

	var buf bytes.Buffer
	mod.WriteAll(&buf)

	want := "Mod located at \"/data/Mods/a.zip\":\n\n" +
		"name: Test Mod\n" +
		"modid: testmod\n" +
		"version: 1.0.0\n"
	assert.Equal(t, want, buf.String())
}

func TestMatches(t *testing.T) {
	mod := modFromJSON(t, "a.zip", `{"Name":"Test Mod","ModID":"testmod"}`)

	assert.True(t, mod.Matches("testmod"))
	assert.True(t, mod.Matches("TestMod"))
	assert.True(t, mod.Matches("test mod"))
	assert.True(t, mod.Matches("TEST MOD"))
	assert.False(t, mod.Matches("othermod"))
	assert.False(t, mod.Matches(""))
}

func TestDisplayNameFallsBackToFileName(t *testing.T) {
	named := modFromJSON(t, "/data/Mods/whatever.zip", `{"Name":"Real Name"}`)
	assert.Equal(t, "Real Name", named.DisplayName())

	bare := modFromJSON(t, "/data/Mods/TestMod-1.0.0.zip", `{"modid":"testmod"}`)
	assert.Equal(t, "Test Mod", bare.DisplayName())
}

func TestUnimplementedOperations(t *testing.T) {
	mod := modFromJSON(t, "a.zip", `{"ModID":"testmod"}`)

	_, err := mod.CheckUpdate()
	assert.True(t, errors.Is(err, ErrNotImplemented))

	assert.True(t, errors.Is(mod.Remove(), ErrNotImplemented))
	assert.True(t, errors.Is(mod.UpdateTo("2.0.0"), ErrNotImplemented))
}
