package domain

import "go.trai.ch/zerr"

var (
	// ErrStateReadFailed is returned when the state file exists but cannot be read.
	ErrStateReadFailed = zerr.New("failed to read state file")

	// ErrStateCorrupt is returned when the state file cannot be parsed.
	ErrStateCorrupt = zerr.New("state file is corrupt")

	// ErrStateWriteFailed is returned when the state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write state file")

	// ErrStateEncodeFailed is returned when the desired state cannot be serialized.
	ErrStateEncodeFailed = zerr.New("failed to encode state")

	// ErrStatePathIsDir is returned when the requested data path is a directory.
	ErrStatePathIsDir = zerr.New("data path is a directory")

	// ErrStatePathRejected is returned when the user declines a data path without a .json extension.
	ErrStatePathRejected = zerr.New("data path rejected")

	// ErrDataDirUnavailable is returned when no default data directory can be determined.
	ErrDataDirUnavailable = zerr.New("failed to determine data directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrPackageQueryFailed is returned when listing installed packages fails.
	ErrPackageQueryFailed = zerr.New("failed to query installed packages")

	// ErrDescribeFailed is returned when package details cannot be retrieved.
	ErrDescribeFailed = zerr.New("failed to describe package")

	// ErrInstallFailed is returned when installing explicit packages fails.
	ErrInstallFailed = zerr.New("failed to install packages")

	// ErrMarkAsDependencyFailed is returned when installing packages as dependencies fails.
	ErrMarkAsDependencyFailed = zerr.New("failed to install packages as dependencies")

	// ErrRemoveFailed is returned when removing packages fails.
	ErrRemoveFailed = zerr.New("failed to remove packages")

	// ErrReconcileAborted is returned when a batch fails and later batches are skipped.
	ErrReconcileAborted = zerr.New("reconciliation aborted")

	// ErrPackagesNotInstalled is returned when a requested package is not installed.
	ErrPackagesNotInstalled = zerr.New("packages are not installed")

	// ErrPromptCancelled is returned when the user interrupts an interactive prompt.
	ErrPromptCancelled = zerr.New("prompt cancelled")

	// ErrPromptFailed is returned when an interactive prompt cannot be displayed.
	ErrPromptFailed = zerr.New("prompt failed")

	// ErrConflictingFilters is returned when mutually exclusive query filters are combined.
	ErrConflictingFilters = zerr.New("--explicit and --deps cannot be used together")
)
