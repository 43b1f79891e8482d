package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollArea(t *testing.T) {
	assert.Equal(t, 45600.0, Roll{Width: 152, Length: 300}.Area())
	assert.Equal(t, 0.0, Roll{}.Area())
}

func TestNewPiece(t *testing.T) {
	p := NewPiece("Banner", 120, 200, 3)

	assert.Len(t, p.ID, 8)
	assert.Equal(t, "Banner", p.Label)
	assert.Equal(t, 24000.0, p.Area())
	assert.Equal(t, 3, p.Quantity)

	other := NewPiece("Banner", 120, 200, 3)
	assert.NotEqual(t, p.ID, other.ID)
}

func TestPieceFitsOn(t *testing.T) {
	roll := Roll{Width: 100, Length: 200}

	assert.True(t, NewPiece("a", 100, 200, 1).FitsOn(roll))
	assert.True(t, NewPiece("b", 150, 80, 1).FitsOn(roll), "fits rotated")
	assert.False(t, NewPiece("c", 150, 120, 1).FitsOn(roll))
	assert.False(t, NewPiece("d", 250, 50, 1).FitsOn(roll))
}

func TestTotalPieceCount(t *testing.T) {
	pieces := []Piece{
		NewPiece("a", 10, 10, 2),
		NewPiece("b", 20, 20, 5),
	}
	assert.Equal(t, 7, TotalPieceCount(pieces))
	assert.Equal(t, 0, TotalPieceCount(nil))
}

func TestPlacementOverlaps(t *testing.T) {
	a := Placement{X: 0, Y: 0, Width: 50, Length: 50}

	assert.True(t, a.Overlaps(Placement{X: 25, Y: 25, Width: 50, Length: 50}))
	assert.True(t, a.Overlaps(Placement{X: 10, Y: 10, Width: 10, Length: 10}), "containment is overlap")
	assert.False(t, a.Overlaps(Placement{X: 50, Y: 0, Width: 50, Length: 50}), "shared edge is not overlap")
	assert.False(t, a.Overlaps(Placement{X: 0, Y: 50, Width: 50, Length: 50}))
	assert.False(t, a.Overlaps(Placement{X: 60, Y: 60, Width: 10, Length: 10}))
}

func TestCutPlanStatistics(t *testing.T) {
	plan := CutPlan{
		Roll: Roll{Width: 100, Length: 100},
		Placements: []Placement{
			{X: 0, Y: 0, Width: 50, Length: 50},
			{X: 50, Y: 0, Width: 50, Length: 50},
		},
	}

	assert.Equal(t, 5000.0, plan.UsedArea())
	assert.InDelta(t, 50.0, plan.Utilization(), 1e-9)
	assert.Equal(t, 2, plan.PlacedCount())
}

func TestCutPlanUtilization_ZeroRoll(t *testing.T) {
	assert.Equal(t, 0.0, CutPlan{}.Utilization())
}

func TestCutPlanUnplacedCount(t *testing.T) {
	pieces := []Piece{NewPiece("a", 50, 50, 3)}
	plan := CutPlan{Placements: []Placement{{Width: 50, Length: 50}}}

	assert.Equal(t, 2, plan.UnplacedCount(pieces))
	assert.Equal(t, 0, CutPlan{Placements: []Placement{{}, {}}}.UnplacedCount(nil),
		"never negative")
}

func TestGroupBySize(t *testing.T) {
	plan := CutPlan{Placements: []Placement{
		{Width: 50, Length: 75},
		{Width: 30, Length: 100},
		{Width: 50, Length: 75},
		{Width: 75, Length: 50}, // rotated copies group separately
	}}

	groups := plan.GroupBySize()

	require.Len(t, groups, 3)
	assert.Equal(t, SizeGroup{Width: 50, Length: 75, Count: 2}, groups[0])
	assert.Equal(t, SizeGroup{Width: 30, Length: 100, Count: 1}, groups[1])
	assert.Equal(t, SizeGroup{Width: 75, Length: 50, Count: 1}, groups[2])
}

func TestGroupBySize_Empty(t *testing.T) {
	assert.Empty(t, CutPlan{}.GroupBySize())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.ForceHorizontal)
	assert.Equal(t, 1.0, s.GridStep)
	assert.Equal(t, 0.1, s.MinFreeDim)
}

func TestNewProject(t *testing.T) {
	p := NewProject()

	assert.Equal(t, "Untitled", p.Name)
	assert.Equal(t, Roll{Width: 152, Length: 3000}, p.Roll)
	assert.Empty(t, p.Pieces)
	assert.Equal(t, UnitCentimeters, p.Unit)
	assert.Nil(t, p.Plan)
}
