package cmdshared

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsmodtools/vsmod/core"
)

func namedMod(t *testing.T, name, modID string) *core.Mod {
	t.Helper()
	info, err := core.ParseModInfo([]byte(`{"Name":"` + name + `","ModID":"` + modID + `"}`))
	require.NoError(t, err)
	return core.NewMod(modID+".zip", info)
}

func nonInteractive(t *testing.T) {
	t.Helper()
	viper.Set("non-interactive", true)
	t.Cleanup(func() { viper.Set("non-interactive", false) })
}

func TestModMatches(t *testing.T) {
	matches := ModMatches{
		namedMod(t, "Carry On", "carryon"),
		namedMod(t, "Cartography Table", "cartography"),
	}

	assert.Equal(t, 2, matches.Len())
	assert.Equal(t, "Carry On", matches.String(0))
	assert.Equal(t, "Cartography Table", matches.String(1))
}

func TestChooseModEmptyAndSingle(t *testing.T) {
	mod, cancelled := ChooseMod("anything", nil)
	assert.Nil(t, mod)
	assert.False(t, cancelled)

	only := namedMod(t, "Carry On", "carryon")
	mod, cancelled = ChooseMod("unrelated term", []*core.Mod{only})
	assert.Same(t, only, mod)
	assert.False(t, cancelled)
}

func TestChooseModRanksExactPrefixFirst(t *testing.T) {
	nonInteractive(t)

	carryOn := namedMod(t, "Carry On", "carryon")
	cartography := namedMod(t, "Cartography Table", "cartography")

	// candidate order must not decide the winner; the prefix match does
	mod, cancelled := ChooseMod("carry", []*core.Mod{cartography, carryOn})
	assert.False(t, cancelled)
	assert.Same(t, carryOn, mod)
}

func TestChooseModFallsBackToFirstCandidate(t *testing.T) {
	nonInteractive(t)

	first := namedMod(t, "Carry On", "carryon")
	second := namedMod(t, "Cartography Table", "cartography")

	mod, cancelled := ChooseMod("zzz", []*core.Mod{first, second})
	assert.False(t, cancelled)
	assert.Same(t, first, mod)
}
