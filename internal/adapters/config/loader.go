// Package config loads the optional moree configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger   ports.Logger
	validate *validator.Validate
	search   func(relPath string) (string, error)
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader. The default config file is looked up in the
// XDG config directories.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:   logger,
		validate: validator.New(),
		search:   xdg.SearchConfigFile,
	}
}

// Load reads the config file at path. With an empty path the default location
// is searched and a missing file yields the default configuration.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		found, err := l.search(domain.DefaultConfigRelPath())
		if err != nil {
			return domain.DefaultConfig(), nil
		}
		path = found
	}

	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	file := defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if err := l.validate.Struct(file); err != nil {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigInvalid, err), "path", path)
	}

	if file.PackageManager.Sudo && filepath.Base(file.PackageManager.Command) == domain.DefaultPackageManagerCommand {
		l.logger.Warn("package_manager.sudo is set but paru refuses to run as root; use pacman or disable sudo")
	}
	return file.toDomain(), nil
}
