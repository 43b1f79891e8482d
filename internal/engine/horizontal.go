package engine

import "sort"

// packHorizontal is the alternate pipeline selected by ForceHorizontal: a
// plain strip-plus-gap-fill packer. Copies are processed largest-area
// first and each one takes the first free raster position, preferring the
// original orientation and falling back to the 90-degree rotation. There
// is no free-space search and no reconciliation pass; every copy is
// placed at most once.
func (s *session) packHorizontal() {
	type copySize struct {
		w, l float64
	}
	var copies []copySize
	for _, d := range s.demand {
		for i := 0; i < d.remaining; i++ {
			copies = append(copies, copySize{w: d.width, l: d.length})
		}
	}

	sort.SliceStable(copies, func(i, j int) bool {
		return copies[i].w*copies[i].l > copies[j].w*copies[j].l
	})

	for _, c := range copies {
		if c.w <= s.roll.Width && s.placeFirstFit(c.w, c.l) {
			continue
		}
		if c.l <= s.roll.Width {
			s.placeFirstFit(c.l, c.w)
		}
	}
}

// placeFirstFit commits the piece at the first unoccupied raster
// position, scanning rows top to bottom.
func (s *session) placeFirstFit(w, l float64) bool {
	for y := 0.0; y+l <= s.roll.Length; y += s.step {
		for x := 0.0; x+w <= s.roll.Width; x += s.step {
			if !s.occupied(x, y, w, l) {
				s.commit(x, y, w, l)
				return true
			}
		}
	}
	return false
}
