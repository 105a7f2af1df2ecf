package fs

import (
	"github.com/kirsle/configdir"
)

const configFolderName = "lucid-scaffold"

// ConfigDir returns the path of the user's lucid-scaffold config directory. The directory is
// only read from, so it is not created.
func ConfigDir() string {
	return configdir.LocalConfig(configFolderName)
}
