package engine

import (
	"testing"

	"github.com/rollwise/rollcut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(roll model.Roll) *session {
	return newSession(roll, nil, 1.0, 0.1)
}

func TestFreeSpaces_EmptyRoll(t *testing.T) {
	s := newTestSession(model.Roll{Width: 100, Length: 200})

	free := s.freeSpaces()

	require.Len(t, free, 1)
	assert.Equal(t, rect{x: 0, y: 0, w: 100, h: 200}, free[0])
}

func TestFreeSpaces_CornerPlacementSplitsTwoWays(t *testing.T) {
	s := newTestSession(model.Roll{Width: 200, Length: 300})
	s.commit(0, 0, 100, 150)

	free := s.freeSpaces()

	require.Len(t, free, 2)
	assert.Contains(t, free, rect{x: 100, y: 0, w: 100, h: 300})
	assert.Contains(t, free, rect{x: 0, y: 150, w: 200, h: 150})
}

func TestFreeSpaces_CenterPlacementSplitsFourWays(t *testing.T) {
	s := newTestSession(model.Roll{Width: 100, Length: 100})
	s.commit(25, 25, 50, 50)

	free := s.freeSpaces()

	require.Len(t, free, 4)
	assert.Contains(t, free, rect{x: 0, y: 0, w: 25, h: 100})
	assert.Contains(t, free, rect{x: 75, y: 0, w: 25, h: 100})
	assert.Contains(t, free, rect{x: 0, y: 0, w: 100, h: 25})
	assert.Contains(t, free, rect{x: 0, y: 75, w: 100, h: 25})
}

func TestFreeSpaces_FullCoverLeavesNothing(t *testing.T) {
	s := newTestSession(model.Roll{Width: 100, Length: 100})
	s.commit(0, 0, 100, 100)

	assert.Empty(t, s.freeSpaces())
}

func TestFreeSpaces_SliverBelowMinimumDiscarded(t *testing.T) {
	// A 0.05 cm sliver along the right edge falls under the minimum
	// useful dimension and must not be offered as a slot.
	s := newTestSession(model.Roll{Width: 100, Length: 100})
	s.commit(0, 0, 99.95, 100)

	assert.Empty(t, s.freeSpaces())
}

func TestFreeSpaces_SortedByAreaDescending(t *testing.T) {
	s := newTestSession(model.Roll{Width: 100, Length: 300})
	s.commit(0, 0, 100, 100)
	s.commit(0, 100, 40, 150)

	free := s.freeSpaces()

	require.Greater(t, len(free), 1)
	for i := 1; i < len(free); i++ {
		assert.GreaterOrEqual(t, free[i-1].area(), free[i].area())
	}
}

func TestFreeSpaces_TouchingEdgeIsNotOverlap(t *testing.T) {
	s := newTestSession(model.Roll{Width: 100, Length: 100})
	s.commit(0, 0, 50, 100)

	free := s.freeSpaces()

	require.Len(t, free, 1)
	assert.Equal(t, rect{x: 50, y: 0, w: 50, h: 100}, free[0])
}

func TestPruneContained(t *testing.T) {
	rects := []rect{
		{x: 0, y: 0, w: 100, h: 100},
		{x: 10, y: 10, w: 20, h: 20},
		{x: 120, y: 0, w: 30, h: 30},
	}

	kept := pruneContained(rects)

	require.Len(t, kept, 2)
	assert.Contains(t, kept, rect{x: 0, y: 0, w: 100, h: 100})
	assert.Contains(t, kept, rect{x: 120, y: 0, w: 30, h: 30})
}

func TestPruneContained_IdenticalRectsKeepOne(t *testing.T) {
	rects := []rect{
		{x: 0, y: 0, w: 50, h: 50},
		{x: 0, y: 0, w: 50, h: 50},
	}

	kept := pruneContained(rects)

	require.Len(t, kept, 1)
}

func TestOffcuts_NonOverlappingAndAboveMinimum(t *testing.T) {
	s := newTestSession(model.Roll{Width: 200, Length: 300})
	s.commit(0, 0, 100, 150)

	offcuts := s.offcuts()

	require.NotEmpty(t, offcuts)
	for i, o := range offcuts {
		assert.GreaterOrEqual(t, o.Width, model.MinOffcutDimension)
		assert.GreaterOrEqual(t, o.Length, model.MinOffcutDimension)
		assert.NotEmpty(t, o.ID)
		for j := i + 1; j < len(offcuts); j++ {
			b := offcuts[j]
			overlap := o.X < b.X+b.Width && o.X+o.Width > b.X &&
				o.Y < b.Y+b.Length && o.Y+o.Length > b.Y
			assert.False(t, overlap, "offcuts %d and %d overlap", i, j)
		}
	}
}

func TestOffcuts_SmallRemnantsDropped(t *testing.T) {
	// Remaining strip is 5 cm wide, below the storage threshold.
	s := newTestSession(model.Roll{Width: 100, Length: 100})
	s.commit(0, 0, 95, 100)

	assert.Empty(t, s.offcuts())
}
