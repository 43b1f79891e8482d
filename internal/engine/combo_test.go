package engine

import (
	"testing"

	"github.com/rollwise/rollcut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCombos_BannerWithSideStrips(t *testing.T) {
	// 120x200 beside a stack of two 30x100 covers a 150x200 roll exactly.
	pieces := []model.Piece{
		model.NewPiece("Banner", 120, 200, 1),
		model.NewPiece("Strip", 30, 100, 2),
	}
	s := newSession(model.Roll{Width: 150, Length: 200}, pieces, 1.0, 0.1)

	s.placeCombos()

	require.Len(t, s.placed, 3)
	assert.Equal(t, rect{x: 0, y: 0, w: 120, h: 200}, s.placed[0])
	assert.Equal(t, rect{x: 120, y: 0, w: 30, h: 100}, s.placed[1])
	assert.Equal(t, rect{x: 120, y: 100, w: 30, h: 100}, s.placed[2])
	assert.Equal(t, 0, s.find(120, 200).remaining)
	assert.Equal(t, 0, s.find(30, 100).remaining)
}

func TestPlaceCombos_AtomicWhenStackDoesNotFit(t *testing.T) {
	// On a 140-wide roll the primary fits alone but not next to the
	// stack, so the pattern must place nothing at all.
	pieces := []model.Piece{
		model.NewPiece("Banner", 120, 200, 1),
		model.NewPiece("Strip", 30, 100, 2),
	}
	s := newSession(model.Roll{Width: 140, Length: 200}, pieces, 1.0, 0.1)

	s.placeCombos()

	assert.Empty(t, s.placed)
	assert.Equal(t, 1, s.find(120, 200).remaining)
	assert.Equal(t, 2, s.find(30, 100).remaining)
}

func TestPlaceCombos_SkippedWhenSecondaryAbsent(t *testing.T) {
	pieces := []model.Piece{model.NewPiece("Banner", 120, 200, 1)}
	s := newSession(model.Roll{Width: 152, Length: 300}, pieces, 1.0, 0.1)

	s.placeCombos()

	assert.Empty(t, s.placed)
}

func TestPlaceCombos_SkippedWhenSecondaryQuantityShort(t *testing.T) {
	// The pattern needs two strips; demanding only one blocks it.
	pieces := []model.Piece{
		model.NewPiece("Banner", 120, 200, 1),
		model.NewPiece("Strip", 30, 100, 1),
	}
	s := newSession(model.Roll{Width: 152, Length: 300}, pieces, 1.0, 0.1)

	s.placeCombos()

	assert.Empty(t, s.placed)
}

func TestPlaceCombos_RepeatsWhileDemandAllows(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("Banner", 120, 200, 2),
		model.NewPiece("Strip", 30, 100, 4),
	}
	s := newSession(model.Roll{Width: 150, Length: 400}, pieces, 1.0, 0.1)

	s.placeCombos()

	assert.Len(t, s.placed, 6)
	assert.Equal(t, 0, s.find(120, 200).remaining)
	assert.Equal(t, 0, s.find(30, 100).remaining)
}

func TestOptimize_SelfPairedComboReconciled(t *testing.T) {
	// The 150x200 pattern pairs the size with itself. With quantity one
	// the pattern over-places and reconciliation must trim the plan back
	// to the requested count.
	opt := New(model.DefaultSettings())
	roll := model.Roll{Width: 300, Length: 200}
	pieces := []model.Piece{model.NewPiece("Panel", 150, 200, 1)}

	plan := opt.Optimize(roll, pieces)

	require.Len(t, plan.Placements, 1)
	assert.Equal(t, 0, plan.UnplacedCount(pieces))
	assertPlanValid(t, roll, plan)
}
