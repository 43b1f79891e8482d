package export

import (
	"fmt"

	"github.com/rollwise/rollcut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// ExportDXF writes the cut plan as a DXF drawing in centimeters: the roll
// outline on the ROLL layer, one closed polyline per piece on the PIECES
// layer, and offcut outlines on the OFFCUTS layer with a hidden line
// type. DXF uses a y-up coordinate system, so roll positions (measured
// from the top) are flipped on export.
func ExportDXF(path string, plan model.CutPlan) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	roll := plan.Roll
	// Roll y measured from the top becomes DXF y from the bottom.
	flipY := func(y, h float64) float64 {
		return roll.Length - y - h
	}

	d := dxf.NewDrawing()

	d.AddLayer("ROLL", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.LwPolyline(true,
		[]float64{0, 0},
		[]float64{roll.Width, 0},
		[]float64{roll.Width, roll.Length},
		[]float64{0, roll.Length},
	)

	d.AddLayer("PIECES", color.Green, dxf.DefaultLineType, true)
	for _, p := range plan.Placements {
		y := flipY(p.Y, p.Length)
		d.LwPolyline(true,
			[]float64{p.X, y},
			[]float64{p.X + p.Width, y},
			[]float64{p.X + p.Width, y + p.Length},
			[]float64{p.X, y + p.Length},
		)
	}

	if len(plan.Offcuts) > 0 {
		d.AddLayer("OFFCUTS", color.Red, table.LT_HIDDEN, true)
		for _, o := range plan.Offcuts {
			y := flipY(o.Y, o.Length)
			d.LwPolyline(true,
				[]float64{o.X, y},
				[]float64{o.X + o.Width, y},
				[]float64{o.X + o.Width, y + o.Length},
				[]float64{o.X, y + o.Length},
			)
		}
	}

	return d.SaveAs(path)
}
