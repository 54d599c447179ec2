package core

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/unascribed/FlexVer/go/flexver"
)

// SortAndDedupeVersions sorts version strings ascending (FlexVer ordering)
// and removes duplicates in place, returning the shortened slice.
func SortAndDedupeVersions(versions []string) []string {
	flexver.VersionSlice(versions).Sort()
	if len(versions) == 0 {
		return versions
	}
	j := 0
	for i := 1; i < len(versions); i++ {
		if versions[i] != versions[j] {
			j++
			versions[j] = versions[i]
		}
	}
	return versions[:j+1]
}

// SortModsByVersion orders mods newest-first by their version field. Mods
// without a version sort last.
func SortModsByVersion(mods []*Mod) {
	sort.SliceStable(mods, func(i, j int) bool {
		vi, vj := mods[i].Version(), mods[j].Version()
		if vi == "" || vj == "" {
			return vj == "" && vi != ""
		}
		return flexver.Less(vj, vi)
	})
}

// GameVersionSatisfies reports whether a declared game dependency accepts
// the given game version. Requirements are semver constraints with the
// wildcard forms mods commonly use ("1.19.x", "*"); an unparseable
// requirement falls back to literal comparison.
func GameVersionSatisfies(requirement, gameVersion string) bool {
	requirement = strings.TrimSpace(requirement)
	if requirement == "" || requirement == "*" {
		return true
	}

	version, err := semver.NewVersion(gameVersion)
	if err != nil {
		return strings.EqualFold(requirement, gameVersion)
	}
	constraint, err := semver.NewConstraint(requirement)
	if err != nil {
		return strings.EqualFold(requirement, gameVersion)
	}
	return constraint.Check(version)
}
