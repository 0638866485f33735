package domain

// DefaultPackageManagerCommand is the tool invoked when no configuration overrides it.
const DefaultPackageManagerCommand = "paru"

// ToolConfig describes how the system package manager is invoked.
type ToolConfig struct {
	// Command is the executable name or path, e.g. "paru" or "pacman".
	Command string
	// Sudo runs mutating commands through sudo.
	Sudo bool
	// ExtraArgs are appended to every mutating invocation.
	ExtraArgs []string
}

// Config is the resolved application configuration.
type Config struct {
	Tool ToolConfig

	// ShowUnmanagedNote prints a trailing note in diff output explaining
	// that unmanaged dependency packages are hidden.
	ShowUnmanagedNote bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Tool:              ToolConfig{Command: DefaultPackageManagerCommand},
		ShowUnmanagedNote: true,
	}
}
