package engine

import (
	"sort"

	"github.com/rollwise/rollcut/internal/model"
)

// Optimizer runs the 2D cutting-stock packing algorithm for a single roll.
type Optimizer struct {
	Settings model.OptimizeSettings
}

func New(settings model.OptimizeSettings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Optimize computes a placement of the requested pieces on the roll.
//
// The default pipeline runs a fixed sequence of phases: combo placement,
// strip packing, best-fit free-space placement, a bottom-left fallback
// scan, and a final quantity reconciliation. ForceHorizontal selects a
// simpler strip-plus-gap-fill pipeline instead.
//
// Optimize never fails: pieces that cannot be placed are simply absent
// from the returned plan, and callers detect under-placement by comparing
// the placement count against the requested count. The inputs are not
// mutated; every call owns its own state, so concurrent calls on
// independent inputs are safe.
func (o *Optimizer) Optimize(roll model.Roll, pieces []model.Piece) model.CutPlan {
	step := o.Settings.GridStep
	if step <= 0 {
		step = model.DefaultSettings().GridStep
	}
	minFree := o.Settings.MinFreeDim
	if minFree <= 0 {
		minFree = model.DefaultSettings().MinFreeDim
	}

	s := newSession(roll, pieces, step, minFree)

	if o.Settings.ForceHorizontal {
		s.packHorizontal()
	} else {
		s.placeCombos()
		s.packStrips()
		s.fillFreeSpaces()
		s.scanRemaining()
		s.reconcile()
	}

	plan := model.CutPlan{
		Roll:       roll,
		Placements: s.result(),
	}
	plan.WastePercent = WastePercent(roll, plan.Placements)
	plan.Offcuts = s.offcuts()
	return plan
}

// WastePercent returns the percentage of the roll area not covered by any
// placement. Pure: calling it twice on the same inputs yields the same
// value.
func WastePercent(roll model.Roll, placements []model.Placement) float64 {
	total := roll.Area()
	if total <= 0 {
		return 0
	}
	var used float64
	for _, p := range placements {
		used += p.Area()
	}
	return (total - used) / total * 100.0
}

// rect is the shared geometry type used by every phase, so that a single
// overlap/bounds semantics holds throughout.
type rect struct {
	x, y, w, h float64
}

func (r rect) area() float64 {
	return r.w * r.h
}

// demandEntry is the per-size remaining-quantity counter. Identical
// (width, length) requests collapse into one entry with summed quantity.
type demandEntry struct {
	width, length float64
	remaining     int
}

// session holds the mutable state of one optimization call: the demand
// counters and the committed placements, threaded through each phase.
type session struct {
	roll    model.Roll
	step    float64
	minFree float64
	placed  []rect
	demand  []*demandEntry

	// requested keeps the original per-size quantities for the
	// reconciliation pass.
	requested map[sizeKey]int
}

type sizeKey struct {
	w, l float64
}

func newSession(roll model.Roll, pieces []model.Piece, step, minFree float64) *session {
	s := &session{
		roll:      roll,
		step:      step,
		minFree:   minFree,
		requested: make(map[sizeKey]int),
	}
	// Collapse identical sizes in first-appearance order. Later sorts are
	// stable, so first appearance remains the tie-break between equal
	// sizes throughout the pipeline.
	index := make(map[sizeKey]*demandEntry)
	for _, p := range pieces {
		if p.Quantity <= 0 {
			continue
		}
		k := sizeKey{p.Width, p.Length}
		s.requested[k] += p.Quantity
		if d, ok := index[k]; ok {
			d.remaining += p.Quantity
			continue
		}
		d := &demandEntry{width: p.Width, length: p.Length, remaining: p.Quantity}
		index[k] = d
		s.demand = append(s.demand, d)
	}
	return s
}

func (s *session) find(w, l float64) *demandEntry {
	for _, d := range s.demand {
		if d.width == w && d.length == l {
			return d
		}
	}
	return nil
}

// occupied reports whether a candidate rectangle is out of roll bounds or
// intersects any committed placement. Shared edges do not count as
// overlap: two rectangles conflict only when their open interiors
// intersect on both axes.
func (s *session) occupied(x, y, w, h float64) bool {
	if x < 0 || y < 0 || x+w > s.roll.Width || y+h > s.roll.Length {
		return true
	}
	for _, p := range s.placed {
		if x < p.x+p.w && x+w > p.x && y < p.y+p.h && y+h > p.y {
			return true
		}
	}
	return false
}

func (s *session) commit(x, y, w, h float64) {
	s.placed = append(s.placed, rect{x: x, y: y, w: w, h: h})
}

// packStrips is the first generic pass: fill horizontal strips across the
// roll width, tallest piece types first, advancing the strip cursor by
// the tallest piece placed in each strip. When a position is blocked the
// x-cursor advances by one grid step instead of giving up, so gaps left
// by the combo pass can still be skipped over.
func (s *session) packStrips() {
	sort.SliceStable(s.demand, func(i, j int) bool {
		if s.demand[i].length != s.demand[j].length {
			return s.demand[i].length > s.demand[j].length
		}
		return s.demand[i].width > s.demand[j].width
	})

	y := 0.0
	for y < s.roll.Length {
		stripHeight := 0.0
		placedAny := false

		for _, d := range s.demand {
			if d.remaining <= 0 {
				continue
			}
			x := 0.0
			for d.remaining > 0 && x+d.width <= s.roll.Width {
				if s.occupied(x, y, d.width, d.length) {
					x += s.step
					continue
				}
				s.commit(x, y, d.width, d.length)
				d.remaining--
				placedAny = true
				if d.length > stripHeight {
					stripHeight = d.length
				}
				x += d.width
			}
		}

		if !placedAny {
			break
		}
		y += stripHeight
	}
}

// fillFreeSpaces is the second generic pass: for remaining demand sorted
// by area descending, place one copy at a time into the best free
// rectangle, trying both orientations. The residual area of a free
// rectangle is the same for either orientation, so when both fit the
// unrotated one wins the tie.
func (s *session) fillFreeSpaces() {
	sort.SliceStable(s.demand, func(i, j int) bool {
		ai := s.demand[i].width * s.demand[i].length
		aj := s.demand[j].width * s.demand[j].length
		return ai > aj
	})

	for _, d := range s.demand {
		for d.remaining > 0 {
			placed := false
			for _, f := range s.freeSpaces() {
				fitsNormal := d.width <= f.w && d.length <= f.h
				fitsRotated := d.length <= f.w && d.width <= f.h
				if !fitsNormal && !fitsRotated {
					continue
				}
				w, h := d.width, d.length
				if !fitsNormal {
					w, h = d.length, d.width
				}
				s.commit(f.x, f.y, w, h)
				d.remaining--
				placed = true
				break
			}
			if !placed {
				// Identical copies of this size cannot fit either;
				// leave the rest for the fallback scanner.
				break
			}
		}
	}
}

// scanRemaining is the algorithm of last resort: a brute-force raster
// scan over grid positions, unrotated orientation first, selecting the
// bottom-left-most valid position. O(roll area) per piece, acceptable
// only because it runs on the small residual set the earlier passes
// could not place.
func (s *session) scanRemaining() {
	for _, d := range s.demand {
		for d.remaining > 0 {
			pos, ok := s.scanBottomLeft(d.width, d.length)
			if !ok {
				break
			}
			s.commit(pos.x, pos.y, pos.w, pos.h)
			d.remaining--
		}
	}
}

// scanBottomLeft finds the position with the smallest y (then smallest x)
// where a piece of the given size fits, in either orientation.
func (s *session) scanBottomLeft(w, l float64) (rect, bool) {
	best := rect{}
	found := false

	scan := func(pw, ph float64) (float64, float64, bool) {
		for y := 0.0; y+ph <= s.roll.Length; y += s.step {
			for x := 0.0; x+pw <= s.roll.Width; x += s.step {
				if !s.occupied(x, y, pw, ph) {
					return x, y, true
				}
			}
		}
		return 0, 0, false
	}

	if x, y, ok := scan(w, l); ok {
		best = rect{x: x, y: y, w: w, h: l}
		found = true
	}
	if x, y, ok := scan(l, w); ok {
		if !found || y < best.y || (y == best.y && x < best.x) {
			best = rect{x: x, y: y, w: l, h: w}
			found = true
		}
	}
	return best, found
}

// canonicalSize maps a placed size back to the demand pair it was
// requested as. A rotated placement carries swapped dimensions, so the
// tally sums both orientations against the original request.
func (s *session) canonicalSize(w, l float64) sizeKey {
	if _, ok := s.requested[sizeKey{w, l}]; ok {
		return sizeKey{w, l}
	}
	return sizeKey{l, w}
}

// reconcile guarantees the plan never reports more placements of any
// requested (width, length) pair than were requested for it. The combo
// placer can double-book demand when a pattern's primary and secondary
// sizes coincide, so excess placements are removed here,
// most-recently-added first.
func (s *session) reconcile() {
	counts := make(map[sizeKey]int)
	for _, p := range s.placed {
		counts[s.canonicalSize(p.w, p.h)]++
	}

	for k, count := range counts {
		limit := s.requested[k]
		for count > limit {
			for i := len(s.placed) - 1; i >= 0; i-- {
				if s.canonicalSize(s.placed[i].w, s.placed[i].h) == k {
					s.placed = append(s.placed[:i], s.placed[i+1:]...)
					break
				}
			}
			count--
		}
	}
}

func (s *session) result() []model.Placement {
	placements := make([]model.Placement, 0, len(s.placed))
	for _, p := range s.placed {
		placements = append(placements, model.Placement{
			X:      p.x,
			Y:      p.y,
			Width:  p.w,
			Length: p.h,
		})
	}
	return placements
}
