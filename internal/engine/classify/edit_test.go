package classify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moree/internal/core/domain"
	"go.trai.ch/moree/internal/engine/classify"
)

const (
	editExplicit = iota
	editMemo
	editDone
)

func TestEditor_Run(t *testing.T) {
	tests := []struct {
		name        string
		script      func(*scriptedPrompter)
		want        domain.PackageRecord
		wantChanged bool
	}{
		{
			name:   "done immediately",
			script: func(p *scriptedPrompter) { p.sel(editDone) },
			want:   domain.NewPackageRecord(true, "editor"),
		},
		{
			name:        "toggle explicit",
			script:      func(p *scriptedPrompter) { p.sel(editExplicit).confirm(false).sel(editDone) },
			want:        domain.NewPackageRecord(false, "editor"),
			wantChanged: true,
		},
		{
			name:        "replace memo",
			script:      func(p *scriptedPrompter) { p.sel(editMemo).input("text editor").sel(editDone) },
			want:        domain.NewPackageRecord(true, "text editor"),
			wantChanged: true,
		},
		{
			name:        "clear memo",
			script:      func(p *scriptedPrompter) { p.sel(editMemo).input("").sel(editDone) },
			want:        domain.NewPackageRecord(true, ""),
			wantChanged: true,
		},
		{
			name:   "cancelled sub prompt keeps looping",
			script: func(p *scriptedPrompter) { p.sel(editMemo).cancel("input").sel(editDone) },
			want:   domain.NewPackageRecord(true, "editor"),
		},
		{
			name:        "cancel ends the loop",
			script:      func(p *scriptedPrompter) { p.sel(editExplicit).confirm(false).cancel("select") },
			want:        domain.NewPackageRecord(false, "editor"),
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := script(t)
			tt.script(p)
			desired := domain.DesiredState{"vim": domain.NewPackageRecord(true, "editor")}

			changed, err := classify.NewEditor(p).Run(context.Background(), desired, "vim")
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, desired["vim"])
		})
	}
}

func TestEditor_Unmanaged(t *testing.T) {
	p := script(t)
	desired := domain.NewDesiredState()

	changed, err := classify.NewEditor(p).Run(context.Background(), desired, "vim")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, desired)
}

func TestDecisionLabels(t *testing.T) {
	assert.Equal(t, "Yes", classify.DecisionYes.String())
	assert.Equal(t, "Quit", classify.DecisionQuit.String())
	assert.Equal(t, "Explicit status", classify.EditExplicit.String())
	assert.Equal(t, "Done", classify.EditDone.String())
}
