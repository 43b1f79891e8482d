package model

import "github.com/google/uuid"

// Roll represents the source material: a fixed-width, finite-length roll.
// All dimensions are in centimeters.
type Roll struct {
	Width  float64 `json:"width"`  // cm
	Length float64 `json:"length"` // cm
}

// Area returns the total roll area in square cm.
func (r Roll) Area() float64 {
	return r.Width * r.Length
}

// Piece represents a required rectangular cut and how many copies are needed.
type Piece struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Width    float64 `json:"width"`  // cm
	Length   float64 `json:"length"` // cm
	Quantity int     `json:"quantity"`
}

func NewPiece(label string, w, l float64, qty int) Piece {
	return Piece{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Length:   l,
		Quantity: qty,
	}
}

// Area returns the area of a single copy in square cm.
func (p Piece) Area() float64 {
	return p.Width * p.Length
}

// FitsOn reports whether a single copy can fit on the roll in at least
// one orientation. The optimizer itself does not validate this; callers
// should reject impossible pieces up front.
func (p Piece) FitsOn(roll Roll) bool {
	if p.Width <= roll.Width && p.Length <= roll.Length {
		return true
	}
	return p.Length <= roll.Width && p.Width <= roll.Length
}

// TotalPieceCount sums the requested quantities over a demand list.
func TotalPieceCount(pieces []Piece) int {
	total := 0
	for _, p := range pieces {
		total += p.Quantity
	}
	return total
}

// Placement represents one physical piece instance committed to the roll.
// Width and Length are the oriented dimensions: for a rotated piece they
// are the swapped dimensions of the original demand entry.
type Placement struct {
	X      float64 `json:"x"`      // cm from the left edge
	Y      float64 `json:"y"`      // cm from the top of the roll
	Width  float64 `json:"width"`  // cm
	Length float64 `json:"length"` // cm
}

// Area returns the placed area in square cm.
func (p Placement) Area() float64 {
	return p.Width * p.Length
}

// Overlaps reports whether the open interiors of two placements intersect.
// Shared edges do not count as overlap.
func (p Placement) Overlaps(o Placement) bool {
	return p.X < o.X+o.Width && p.X+p.Width > o.X &&
		p.Y < o.Y+o.Length && p.Y+p.Length > o.Y
}

// CutPlan holds the full solution for one optimization run.
type CutPlan struct {
	Roll         Roll        `json:"roll"`
	Placements   []Placement `json:"placements"`
	WastePercent float64     `json:"waste_percent"`
	Offcuts      []Offcut    `json:"offcuts,omitempty"`
}

// UsedArea returns the total area covered by placements.
func (cp CutPlan) UsedArea() float64 {
	var total float64
	for _, p := range cp.Placements {
		total += p.Area()
	}
	return total
}

// Utilization returns the usage percentage of the roll.
func (cp CutPlan) Utilization() float64 {
	ta := cp.Roll.Area()
	if ta == 0 {
		return 0
	}
	return (cp.UsedArea() / ta) * 100.0
}

// PlacedCount returns the number of committed placements.
func (cp CutPlan) PlacedCount() int {
	return len(cp.Placements)
}

// UnplacedCount reports how many requested copies did not make it into the
// plan. Under-placement is the only failure signal the optimizer gives.
func (cp CutPlan) UnplacedCount(pieces []Piece) int {
	n := TotalPieceCount(pieces) - len(cp.Placements)
	if n < 0 {
		return 0
	}
	return n
}

// SizeGroup is a distinct placed size with its occurrence count, used for
// legends and cutting-instruction summaries.
type SizeGroup struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Count  int     `json:"count"`
}

// GroupBySize collapses placements into distinct (width, length) groups in
// first-appearance order.
func (cp CutPlan) GroupBySize() []SizeGroup {
	type key struct{ w, l float64 }
	var order []key
	counts := make(map[key]int)
	for _, p := range cp.Placements {
		k := key{p.Width, p.Length}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	groups := make([]SizeGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, SizeGroup{Width: k.w, Length: k.l, Count: counts[k]})
	}
	return groups
}

// OptimizeSettings holds optimizer configuration.
type OptimizeSettings struct {
	// ForceHorizontal selects the simpler strip-plus-gap-fill pipeline
	// instead of the full multi-phase pipeline.
	ForceHorizontal bool `json:"force_horizontal"`

	// GridStep is the position scan resolution in cm. It is a heuristic
	// knob, not a correctness guarantee: smaller steps find tighter
	// positions at a quadratic cost in scan time.
	GridStep float64 `json:"grid_step"`

	// MinFreeDim is the smallest width or length (cm) a free rectangle
	// may have and still be tracked as a usable slot.
	MinFreeDim float64 `json:"min_free_dim"`
}

func DefaultSettings() OptimizeSettings {
	return OptimizeSettings{
		ForceHorizontal: false,
		GridStep:        1.0,
		MinFreeDim:      0.1,
	}
}

// Project ties everything together for save/load.
type Project struct {
	Name     string           `json:"name"`
	Roll     Roll             `json:"roll"`
	Pieces   []Piece          `json:"pieces"`
	Settings OptimizeSettings `json:"settings"`
	Unit     Unit             `json:"unit"`
	Plan     *CutPlan         `json:"plan,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Roll:     Roll{Width: 152, Length: 3000},
		Pieces:   []Piece{},
		Settings: DefaultSettings(),
		Unit:     UnitCentimeters,
	}
}
