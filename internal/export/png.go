package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/rollwise/rollcut/internal/model"
)

// maxImageDim caps the longer side of the rendered image in pixels.
const maxImageDim = 2048

// ExportPNG renders the cut plan as a PNG image: the roll as a light
// background with each placement filled in its size-group color and a
// one-pixel dark border. The image is scaled so the longer roll dimension
// maps to at most maxImageDim pixels.
func ExportPNG(path string, plan model.CutPlan) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	img := RenderPlan(plan)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// RenderPlan draws the plan into an in-memory image. Exposed separately
// so the HTTP layer can stream the render without touching disk.
func RenderPlan(plan model.CutPlan) *image.NRGBA {
	roll := plan.Roll

	scale := 10.0 // px per cm at the default roll sizes
	longest := roll.Width
	if roll.Length > longest {
		longest = roll.Length
	}
	if longest*scale > maxImageDim {
		scale = maxImageDim / longest
	}

	w := int(roll.Width * scale)
	h := int(roll.Length * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := imaging.New(w, h, color.NRGBA{R: 235, G: 235, B: 230, A: 255})

	colors := colorForSize(plan)
	for _, p := range plan.Placements {
		col := sizeColors[colors[[2]float64{p.Width, p.Length}]]
		x0 := int(p.X * scale)
		y0 := int(p.Y * scale)
		x1 := int((p.X + p.Width) * scale)
		y1 := int((p.Y + p.Length) * scale)

		rect := image.Rect(x0, y0, x1, y1)
		fill := color.NRGBA{R: uint8(col.R), G: uint8(col.G), B: uint8(col.B), A: 255}
		draw.Draw(dst, rect, image.NewUniform(fill), image.Point{}, draw.Src)
		drawBorder(dst, rect, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	}

	return dst
}

// drawBorder outlines a rectangle with a one-pixel frame.
func drawBorder(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1)
	bottom := image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y)
	right := image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y)

	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(dst, edge, src, image.Point{}, draw.Src)
	}
}
