package export

import (
	"fmt"

	"github.com/rollwise/rollcut/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the cut plan to an .xlsx workbook with a Summary
// sheet, a Placements sheet listing every piece position, and an Offcuts
// sheet when the plan has usable remnants. Dimensions are written in the
// given display unit.
func ExportExcel(path string, plan model.CutPlan, unit model.Unit) error {
	if len(plan.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	suffix := unit.Suffix()
	summaryRows := [][]interface{}{
		{"Roll Width (" + suffix + ")", unit.FromInternal(plan.Roll.Width)},
		{"Roll Length (" + suffix + ")", unit.FromInternal(plan.Roll.Length)},
		{"Pieces Placed", plan.PlacedCount()},
		{"Used Area (" + suffix + "²)", unit.AreaFromInternal(plan.UsedArea())},
		{"Utilization (%)", plan.Utilization()},
		{"Waste (%)", plan.WastePercent},
		{"Usable Offcuts", len(plan.Offcuts)},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	placements := "Placements"
	if _, err := f.NewSheet(placements); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	header := []interface{}{
		"#", "X (" + suffix + ")", "Y (" + suffix + ")",
		"Width (" + suffix + ")", "Length (" + suffix + ")",
	}
	if err := f.SetSheetRow(placements, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, p := range plan.Placements {
		row := []interface{}{
			i + 1,
			unit.FromInternal(p.X),
			unit.FromInternal(p.Y),
			unit.FromInternal(p.Width),
			unit.FromInternal(p.Length),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(placements, cell, &row); err != nil {
			return fmt.Errorf("failed to write placement row: %w", err)
		}
	}

	if len(plan.Offcuts) > 0 {
		offcuts := "Offcuts"
		if _, err := f.NewSheet(offcuts); err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
		header := []interface{}{
			"ID", "X (" + suffix + ")", "Y (" + suffix + ")",
			"Width (" + suffix + ")", "Length (" + suffix + ")", "Area (" + suffix + "²)",
		}
		if err := f.SetSheetRow(offcuts, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for i, o := range plan.Offcuts {
			row := []interface{}{
				o.ID,
				unit.FromInternal(o.X),
				unit.FromInternal(o.Y),
				unit.FromInternal(o.Width),
				unit.FromInternal(o.Length),
				unit.AreaFromInternal(o.Area()),
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(offcuts, cell, &row); err != nil {
				return fmt.Errorf("failed to write offcut row: %w", err)
			}
		}
	}

	return f.SaveAs(path)
}
