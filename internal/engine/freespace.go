package engine

import (
	"sort"

	"github.com/rollwise/rollcut/internal/model"
)

// freeSpaces derives the empty rectangles remaining on the roll given the
// current placements. Starting from one rectangle covering the whole
// roll, each placement splits every free rectangle it overlaps into up to
// four strips (left, right, above, below). Sub-rectangles with either
// dimension below the minimum-useful threshold are discarded.
//
// The result is a covering, not a partition: the strips of one split
// overlap each other, so callers must treat the list as candidate slots.
// It is sorted by descending area so consumers try the largest
// opportunity first. Recomputed in full after every placement; O(placed
// x free) per call, fine for the tens-to-hundreds of pieces this runs on.
func (s *session) freeSpaces() []rect {
	free := []rect{{x: 0, y: 0, w: s.roll.Width, h: s.roll.Length}}

	for _, p := range s.placed {
		next := free[:0:0]
		for _, f := range free {
			// Touching edges are not overlap; keep the space whole.
			if f.x+f.w <= p.x || p.x+p.w <= f.x || f.y+f.h <= p.y || p.y+p.h <= f.y {
				next = append(next, f)
				continue
			}

			// Left of the placement, full height of the free rect.
			if f.x < p.x {
				next = append(next, rect{x: f.x, y: f.y, w: p.x - f.x, h: f.h})
			}
			// Right of the placement.
			if f.x+f.w > p.x+p.w {
				next = append(next, rect{x: p.x + p.w, y: f.y, w: (f.x + f.w) - (p.x + p.w), h: f.h})
			}
			// Above the placement, full width of the free rect.
			if f.y < p.y {
				next = append(next, rect{x: f.x, y: f.y, w: f.w, h: p.y - f.y})
			}
			// Below the placement.
			if f.y+f.h > p.y+p.h {
				next = append(next, rect{x: f.x, y: p.y + p.h, w: f.w, h: (f.y + f.h) - (p.y + p.h)})
			}
		}
		free = next
	}

	filtered := free[:0:0]
	for _, f := range free {
		if f.w >= s.minFree && f.h >= s.minFree {
			filtered = append(filtered, f)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].area() > filtered[j].area()
	})
	return filtered
}

// offcuts reports the usable remnants of the roll after packing: a
// non-overlapping selection of the remaining free rectangles, largest
// first, keeping only pieces big enough to store for a later job.
func (s *session) offcuts() []model.Offcut {
	var kept []rect
	for _, f := range pruneContained(s.freeSpaces()) {
		if f.w < model.MinOffcutDimension || f.h < model.MinOffcutDimension {
			continue
		}
		overlapsKept := false
		for _, k := range kept {
			if f.x < k.x+k.w && f.x+f.w > k.x && f.y < k.y+k.h && f.y+f.h > k.y {
				overlapsKept = true
				break
			}
		}
		if !overlapsKept {
			kept = append(kept, f)
		}
	}

	offcuts := make([]model.Offcut, 0, len(kept))
	for _, k := range kept {
		offcuts = append(offcuts, model.NewOffcut(k.x, k.y, k.w, k.h))
	}
	return offcuts
}

// pruneContained removes any rect that is fully contained within another.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !containsRect(b, a) {
				continue
			}
			// Keep the first of two identical rects.
			if containsRect(a, b) && j > i {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x && outer.y <= inner.y &&
		outer.x+outer.w >= inner.x+inner.w &&
		outer.y+outer.h >= inner.y+inner.h
}
