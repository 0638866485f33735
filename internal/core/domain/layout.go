package domain

import "path/filepath"

const (
	// ProgramName is used for the data and config subdirectories.
	ProgramName = "moree"

	// StateFileName is the name of the state file inside the data directory.
	StateFileName = "state.json"

	// ConfigFileName is the name of the config file inside the config directory.
	ConfigFileName = "config.yaml"

	// StateFileExt is the extension expected for user-supplied data paths.
	StateFileExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStateRelPath returns the state file path relative to the XDG data home.
func DefaultStateRelPath() string {
	return filepath.Join(ProgramName, StateFileName)
}

// DefaultConfigRelPath returns the config file path relative to the XDG config home.
func DefaultConfigRelPath() string {
	return filepath.Join(ProgramName, ConfigFileName)
}
