// Package export provides functionality for exporting cut plans to
// various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/maruel/natural"
	"github.com/rollwise/rollcut/internal/model"
)

// sizeColor represents an RGB color assigned to a placed size group.
type sizeColor struct {
	R, G, B int
}

// sizeColors mirrors the color scheme used in the UI roll canvas widget.
// Placements of the same size share a color.
var sizeColors = []sizeColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 portrait in mm). Rolls are much longer than
// wide, so portrait keeps the diagram legible.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a cut plan: a layout diagram
// page followed by a summary page with cutting instructions.
func ExportPDF(path string, plan model.CutPlan, unit model.Unit) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan, unit)

	pdf.AddPage()
	renderSummaryPage(pdf, plan, unit)

	return pdf.OutputFileAndClose(path)
}

// colorForSize assigns each distinct placed size a color index in
// first-appearance order.
func colorForSize(plan model.CutPlan) map[[2]float64]int {
	indexes := make(map[[2]float64]int)
	for i, g := range plan.GroupBySize() {
		indexes[[2]float64{g.Width, g.Length}] = i % len(sizeColors)
	}
	return indexes
}

// renderPlanPage draws the roll layout diagram on the current PDF page.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.CutPlan, unit model.Unit) {
	roll := plan.Roll

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cut Plan: Roll %s x %s",
		unit.FormatLength(roll.Width), unit.FormatLength(roll.Length))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Used area: %.2f %s² | Waste: %.1f%%",
		plan.PlacedCount(), unit.AreaFromInternal(plan.UsedArea()), unit.Suffix(), plan.WastePercent)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Scale to fit the roll within the drawing area
	scaleX := drawWidth / roll.Width
	scaleY := drawHeight / roll.Length
	scale := math.Min(scaleX, scaleY)

	canvasW := roll.Width * scale
	canvasH := roll.Length * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Roll background (neutral fabric tone)
	pdf.SetFillColor(235, 235, 230)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	colors := colorForSize(plan)

	// Draw placements
	for _, p := range plan.Placements {
		col := sizeColors[colors[[2]float64{p.Width, p.Length}]]
		pw := p.Width * scale
		ph := p.Length * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Dimension label (only if rectangle is large enough)
		if pw > 12 && ph > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Length)
			dimsW := pdf.GetStringWidth(dims)
			if dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2-2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	// Offcuts as dashed outlines
	for _, o := range plan.Offcuts {
		pdf.SetDrawColor(150, 150, 150)
		pdf.SetLineWidth(0.2)
		pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
		pdf.Rect(offsetX+o.X*scale, offsetY+o.Y*scale, o.Width*scale, o.Length*scale, "D")
		pdf.SetDashPattern([]float64{}, 0)
	}

	drawDimensionAnnotations(pdf, roll, unit, scale, offsetX, offsetY, canvasW, canvasH)
	drawSizeLegend(pdf, plan, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and length labels outside the roll rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, roll model.Roll, unit model.Unit, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the roll)
	widthLabel := unit.FormatLength(roll.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Length annotation (to the left of the roll, rotated)
	lengthLabel := unit.FormatLength(roll.Length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawSizeLegend renders a compact legend of placed size groups at the
// bottom of the diagram page.
func drawSizeLegend(pdf *fpdf.Fpdf, plan model.CutPlan, startY float64) {
	groups := plan.GroupBySize()
	if len(groups) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Sizes placed:", "", 0, "L", false, 0, "")

	colors := colorForSize(plan)

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 28
	maxX := pageWidth - marginRight

	for _, g := range groups {
		col := sizeColors[colors[[2]float64{g.Width, g.Length}]]
		label := fmt.Sprintf("%.0fx%.0f (x%d)", g.Width, g.Length, g.Count)
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the cutting-instructions page.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.CutPlan, unit model.Unit) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Instructions", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Roll", fmt.Sprintf("%s x %s", unit.FormatLength(plan.Roll.Width), unit.FormatLength(plan.Roll.Length))},
		{"Pieces Placed", fmt.Sprintf("%d", plan.PlacedCount())},
		{"Utilization", fmt.Sprintf("%.1f%%", plan.Utilization())},
		{"Waste", fmt.Sprintf("%.1f%%", plan.WastePercent)},
		{"Usable Offcuts", fmt.Sprintf("%d", len(plan.Offcuts))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-size cut table, sizes in natural order
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cut List", "", 0, "L", false, 0, "")
	y += 9

	groups := plan.GroupBySize()
	sort.SliceStable(groups, func(i, j int) bool {
		a := fmt.Sprintf("%gx%g", groups[i].Width, groups[i].Length)
		b := fmt.Sprintf("%gx%g", groups[j].Width, groups[j].Length)
		return natural.Less(a, b)
	})

	colWidths := []float64{40, 40, 30, 40}
	headers := []string{"Width", "Length", "Count", "Area Each"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, g := range groups {
		xPos = marginLeft
		rowData := []string{
			unit.FormatLength(g.Width),
			unit.FormatLength(g.Length),
			fmt.Sprintf("%d", g.Count),
			fmt.Sprintf("%.2f %s²", unit.AreaFromInternal(g.Width*g.Length), unit.Suffix()),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Offcut inventory
	if len(plan.Offcuts) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Usable Offcuts", "", 0, "L", false, 0, "")
		y += 9

		pdf.SetFont("Helvetica", "", 9)
		for _, o := range plan.Offcuts {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s x %s at (%s, %s)",
				unit.FormatLength(o.Width), unit.FormatLength(o.Length),
				unit.FormatLength(o.X), unit.FormatLength(o.Y))
			pdf.CellFormat(170, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RollCut - Roll Material Cutting Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
