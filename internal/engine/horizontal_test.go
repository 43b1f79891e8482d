package engine

import (
	"testing"

	"github.com/rollwise/rollcut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizontalSettings() model.OptimizeSettings {
	s := model.DefaultSettings()
	s.ForceHorizontal = true
	return s
}

func TestPackHorizontal_SinglePiece(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 100, Length: 100}

	plan := opt.Optimize(roll, []model.Piece{model.NewPiece("Sq", 60, 60, 1)})

	require.Len(t, plan.Placements, 1)
	assert.Equal(t, model.Placement{X: 0, Y: 0, Width: 60, Length: 60}, plan.Placements[0])
	assert.InDelta(t, 64.0, plan.WastePercent, 1e-6)
}

func TestPackHorizontal_LargestAreaFirst(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 100, Length: 300}
	pieces := []model.Piece{
		model.NewPiece("Small", 20, 20, 1),
		model.NewPiece("Big", 100, 100, 1),
	}

	plan := opt.Optimize(roll, pieces)

	require.Len(t, plan.Placements, 2)
	// The big piece claims the origin despite appearing second.
	assert.Equal(t, model.Placement{X: 0, Y: 0, Width: 100, Length: 100}, plan.Placements[0])
	assertPlanValid(t, roll, plan)
}

func TestPackHorizontal_RotatesWhenTooWide(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 100, Length: 200}

	plan := opt.Optimize(roll, []model.Piece{model.NewPiece("Wide", 150, 80, 1)})

	require.Len(t, plan.Placements, 1)
	assert.Equal(t, 80.0, plan.Placements[0].Width)
	assert.Equal(t, 150.0, plan.Placements[0].Length)
}

func TestPackHorizontal_UnplaceableSkipped(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 100, Length: 100}
	pieces := []model.Piece{model.NewPiece("Huge", 150, 120, 1)}

	plan := opt.Optimize(roll, pieces)

	assert.Empty(t, plan.Placements)
	assert.Equal(t, 1, plan.UnplacedCount(pieces))
}

func TestPackHorizontal_FillsGapsWithSmallerCopies(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 100, Length: 100}
	pieces := []model.Piece{
		model.NewPiece("Half", 60, 100, 1),
		model.NewPiece("Filler", 40, 50, 2),
	}

	plan := opt.Optimize(roll, pieces)

	require.Len(t, plan.Placements, 3)
	assert.InDelta(t, 0.0, plan.WastePercent, 1e-6)
	assertPlanValid(t, roll, plan)
}

func TestPackHorizontal_NeverExceedsRequested(t *testing.T) {
	opt := New(horizontalSettings())
	roll := model.Roll{Width: 300, Length: 300}
	pieces := []model.Piece{model.NewPiece("Sq", 50, 50, 3)}

	plan := opt.Optimize(roll, pieces)

	assert.Len(t, plan.Placements, 3)
	assertPlanValid(t, roll, plan)
}
