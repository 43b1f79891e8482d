package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rollwise/rollcut/internal/model"
)

// Size-group colors — cycle through these for visual distinction. Pieces
// of the same size share a color, matching the PDF export.
var sizeColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// RollCanvas renders a visual representation of a cut plan.
type RollCanvas struct {
	widget.BaseWidget
	plan      model.CutPlan
	maxWidth  float32
	maxHeight float32
}

func NewRollCanvas(plan model.CutPlan, maxW, maxH float32) *RollCanvas {
	rc := &RollCanvas{
		plan:      plan,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	rc.ExtendBaseWidget(rc)
	return rc
}

func (rc *RollCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newRollCanvasRenderer(rc)
}

type rollCanvasRenderer struct {
	rc      *RollCanvas
	objects []fyne.CanvasObject
}

func newRollCanvasRenderer(rc *RollCanvas) *rollCanvasRenderer {
	r := &rollCanvasRenderer{rc: rc}
	r.rebuild()
	return r
}

func (r *rollCanvasRenderer) scale() float32 {
	rollW := float32(r.rc.plan.Roll.Width)
	rollL := float32(r.rc.plan.Roll.Length)
	scaleX := r.rc.maxWidth / rollW
	scaleY := r.rc.maxHeight / rollL
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *rollCanvasRenderer) rebuild() {
	r.objects = nil

	plan := r.rc.plan
	scale := r.scale()
	canvasW := float32(plan.Roll.Width) * scale
	canvasH := float32(plan.Roll.Length) * scale

	// Roll background
	bg := canvas.NewRectangle(color.NRGBA{R: 235, G: 235, B: 230, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Roll border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Color per distinct size, first-appearance order
	colorIndex := make(map[[2]float64]int)
	for i, g := range plan.GroupBySize() {
		colorIndex[[2]float64{g.Width, g.Length}] = i % len(sizeColors)
	}

	// Placed pieces
	for _, p := range plan.Placements {
		col := sizeColors[colorIndex[[2]float64{p.Width, p.Length}]]
		pw := float32(p.Width) * scale
		ph := float32(p.Length) * scale
		px := float32(p.X) * scale
		py := float32(p.Y) * scale

		pieceRect := canvas.NewRectangle(col)
		pieceRect.Resize(fyne.NewSize(pw, ph))
		pieceRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, pieceRect)

		pieceBorder := canvas.NewRectangle(color.Transparent)
		pieceBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		pieceBorder.StrokeWidth = 1
		pieceBorder.Resize(fyne.NewSize(pw, ph))
		pieceBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, pieceBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			label := canvas.NewText(fmt.Sprintf("%.0fx%.0f", p.Width, p.Length), color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}

	// Offcuts as outlined zones
	for _, o := range plan.Offcuts {
		zone := canvas.NewRectangle(color.Transparent)
		zone.StrokeColor = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
		zone.StrokeWidth = 1
		zone.Resize(fyne.NewSize(float32(o.Width)*scale, float32(o.Length)*scale))
		zone.Move(fyne.NewPos(float32(o.X)*scale, float32(o.Y)*scale))
		r.objects = append(r.objects, zone)
	}
}

func (r *rollCanvasRenderer) Layout(size fyne.Size)        {}
func (r *rollCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *rollCanvasRenderer) Destroy()                     {}
func (r *rollCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *rollCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	return fyne.NewSize(
		float32(r.rc.plan.Roll.Width)*scale,
		float32(r.rc.plan.Roll.Length)*scale,
	)
}

// RenderPlan creates a scrollable container showing a cut plan with its
// statistics and size breakdown.
func RenderPlan(plan *model.CutPlan, pieces []model.Piece, unit model.Unit) fyne.CanvasObject {
	if plan == nil || len(plan.Placements) == 0 {
		return widget.NewLabel("No plan yet. Add pieces, then click Optimize.")
	}

	header := widget.NewLabel(fmt.Sprintf(
		"Roll %s × %s — %d pieces, %.1f%% waste",
		unit.FormatLength(plan.Roll.Width), unit.FormatLength(plan.Roll.Length),
		plan.PlacedCount(), plan.WastePercent,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	rollCanvas := NewRollCanvas(*plan, 500, 700)

	items := []fyne.CanvasObject{header, rollCanvas, widget.NewSeparator()}

	if unplaced := plan.UnplacedCount(pieces); unplaced > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d pieces could not be placed! Use a longer roll.",
			unplaced,
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	// Per-size breakdown
	groups := plan.GroupBySize()
	if len(groups) > 1 {
		breakdownHeader := widget.NewLabel("Size Breakdown:")
		breakdownHeader.TextStyle = fyne.TextStyle{Bold: true}
		items = append(items, breakdownHeader)
		for _, g := range groups {
			items = append(items, widget.NewLabel(fmt.Sprintf(
				"  %s × %s: %d piece(s)",
				unit.FormatLength(g.Width), unit.FormatLength(g.Length), g.Count,
			)))
		}
	}

	if len(plan.Offcuts) > 0 {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"Usable offcuts: %d (%.2f %s²)",
			len(plan.Offcuts),
			unit.AreaFromInternal(model.TotalOffcutArea(plan.Offcuts)), unit.Suffix(),
		)))
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Utilization: %.1f%% of the roll", plan.Utilization(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
