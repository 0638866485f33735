package config

import "go.trai.ch/moree/internal/core/domain"

// File represents the structure of config.yaml.
type File struct {
	PackageManager PackageManagerDTO `yaml:"package_manager"`
	Diff           DiffDTO           `yaml:"diff"`
}

// PackageManagerDTO configures the external package manager.
type PackageManagerDTO struct {
	Command   string   `yaml:"command" validate:"required"`
	Sudo      bool     `yaml:"sudo"`
	ExtraArgs []string `yaml:"extra_args" validate:"dive,required"`
}

// DiffDTO configures diff output.
type DiffDTO struct {
	ShowNote bool `yaml:"show_note"`
}

// defaults returns a File holding the default configuration.
// Keys missing from the YAML document keep these values.
func defaults() File {
	cfg := domain.DefaultConfig()
	return File{
		PackageManager: PackageManagerDTO{Command: cfg.Tool.Command, Sudo: cfg.Tool.Sudo},
		Diff:           DiffDTO{ShowNote: cfg.ShowUnmanagedNote},
	}
}

func (f *File) toDomain() domain.Config {
	return domain.Config{
		Tool: domain.ToolConfig{
			Command:   f.PackageManager.Command,
			Sudo:      f.PackageManager.Sudo,
			ExtraArgs: f.PackageManager.ExtraArgs,
		},
		ShowUnmanagedNote: f.Diff.ShowNote,
	}
}
