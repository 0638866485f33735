package statefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/core/ports"
	"go.trai.ch/zerr"
)

// PathResolver implements ports.StatePathResolver.
type PathResolver struct {
	prompter ports.Prompter
	dataFile func(relPath string) (string, error)
}

var _ ports.StatePathResolver = (*PathResolver)(nil)

// NewPathResolver creates a resolver that defaults to the XDG data directory.
func NewPathResolver(prompter ports.Prompter) *PathResolver {
	return &PathResolver{prompter: prompter, dataFile: xdg.DataFile}
}

// Resolve returns the state file path. Without an override the file lives in
// the user's data directory, which is created if needed. An override must not
// be a directory; its parent directories are created, and a path without a
// .json extension needs the user's confirmation.
func (r *PathResolver) Resolve(ctx context.Context, override string) (string, error) {
	if override == "" {
		path, err := r.dataFile(domain.DefaultStateRelPath())
		if err != nil {
			return "", errors.Join(domain.ErrDataDirUnavailable, err)
		}
		return path, nil
	}

	path, err := filepath.Abs(override)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve data path"), "path", override)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", zerr.With(zerr.Wrap(domain.ErrStatePathIsDir, "invalid data path"), "path", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", zerr.With(errors.Join(domain.ErrStateReadFailed, err), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrStateWriteFailed, err), "path", path)
	}

	if !strings.EqualFold(filepath.Ext(path), domain.StateFileExt) {
		title := fmt.Sprintf("%s does not have a .json extension. Use it anyway?", path)
		ok, err := r.prompter.Confirm(ctx, title, false)
		if err != nil && !errors.Is(err, domain.ErrPromptCancelled) {
			return "", err
		}
		if !ok {
			return "", zerr.With(zerr.Wrap(domain.ErrStatePathRejected, "invalid data path"), "path", path)
		}
	}

	return path, nil
}
