package model

import "github.com/google/uuid"

// Offcut represents a usable rectangular remnant of the roll left over
// after cutting. Remnants below the minimum dimensions are treated as
// waste and never reported.
type Offcut struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`      // cm from the left edge
	Y      float64 `json:"y"`      // cm from the top of the roll
	Width  float64 `json:"width"`  // cm
	Length float64 `json:"length"` // cm
}

func NewOffcut(x, y, w, l float64) Offcut {
	return Offcut{
		ID:     uuid.New().String()[:8],
		X:      x,
		Y:      y,
		Width:  w,
		Length: l,
	}
}

// Area returns the offcut area in square cm.
func (o Offcut) Area() float64 {
	return o.Width * o.Length
}

// MinOffcutDimension is the minimum width or length (cm) for a remnant to
// be considered worth keeping rather than scrap.
const MinOffcutDimension = 10.0

// TotalOffcutArea sums the area of all offcuts.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
