package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/moree/internal/core/domain"
)

func TestDesiredState_Queries(t *testing.T) {
	s := domain.DesiredState{
		"zsh":     domain.NewPackageRecord(true, "shell"),
		"libfoo":  domain.NewPackageRecord(false, ""),
		"firefox": domain.NewPackageRecord(true, ""),
	}

	assert.Equal(t, []string{"firefox", "libfoo", "zsh"}, s.Names())
	assert.Equal(t, []string{"firefox", "zsh"}, s.Explicit())
	assert.Equal(t, []string{"libfoo"}, s.Dependencies())

	assert.True(t, s.Managed("libfoo"))
	assert.False(t, s.Managed("vim"))
	assert.True(t, s.IsExplicit("zsh"))
	assert.False(t, s.IsExplicit("libfoo"))
	assert.False(t, s.IsExplicit("vim"))

	assert.True(t, s["zsh"].HasMemo())
	assert.False(t, s["firefox"].HasMemo())
}

func TestDesiredState_Clone(t *testing.T) {
	s := domain.DesiredState{"a": domain.NewPackageRecord(true, "")}
	c := s.Clone()
	c["b"] = domain.NewPackageRecord(false, "")

	assert.Len(t, s, 1)
	assert.Len(t, c, 2)
}

func TestObservedState(t *testing.T) {
	o := domain.NewObservedState(domain.NewPackageSet("a", "b"), nil)
	assert.NotNil(t, o.Dependencies)

	o.Dependencies.Add("c")
	assert.True(t, o.Installed("a"))
	assert.True(t, o.Installed("c"))
	assert.False(t, o.Installed("d"))
	assert.Equal(t, []string{"a", "b", "c"}, o.InstalledSet().Sorted())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "paru", cfg.Tool.Command)
	assert.False(t, cfg.Tool.Sudo)
	assert.True(t, cfg.ShowUnmanagedNote)
}
