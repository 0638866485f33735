package pacman

// CommandLine exposes the argv built for mutating calls.
func (m *Manager) CommandLine(flags, names []string) (string, []string) {
	return m.command(flags, names)
}
