package config

// DefaultDataPath is the standard Vintage Story data directory on a
// dedicated server install. Mod archives live in its Mods subdirectory.
const DefaultDataPath = "/var/vintagestory/data"

var Version = "dev"

func SetVersion(version string) {
	if version != "" {
		Version = version
	}
}
