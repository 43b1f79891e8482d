package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rollwise/rollcut/internal/engine"
	"github.com/rollwise/rollcut/internal/export"
	pieceimporter "github.com/rollwise/rollcut/internal/importer"
	"github.com/rollwise/rollcut/internal/model"
	"github.com/rollwise/rollcut/internal/project"
	"github.com/rollwise/rollcut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	project model.Project
	config  model.AppConfig
	tabs    *container.AppTabs

	// UI references for dynamic updates
	piecesContainer *fyne.Container
	rollContainer   *fyne.Container
	resultContainer *fyne.Container
}

func NewApp(fyneApp fyne.App, window fyne.Window) *App {
	a := &App{
		fyneApp: fyneApp,
		window:  window,
		project: model.NewProject(),
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	a.config = config
	a.config.ApplyToProject(&a.project)
	a.applyTheme()

	return a
}

func (a *App) applyTheme() {
	switch a.config.Theme {
	case "light":
		a.fyneApp.Settings().SetTheme(NewRollCutThemeWithVariant(theme.VariantLight))
	case "dark":
		a.fyneApp.Settings().SetTheme(NewRollCutThemeWithVariant(theme.VariantDark))
	default:
		a.fyneApp.Settings().SetTheme(NewRollCutTheme())
	}
}

func (a *App) saveConfig() {
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		fmt.Printf("could not save app config: %v\n", err)
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileItems := []*fyne.MenuItem{
		fyne.NewMenuItem("New Project", func() {
			a.project = model.NewProject()
			a.config.ApplyToProject(&a.project)
			a.refreshPiecesList()
			a.refreshRollPanel()
			a.refreshResults()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
	}

	if recent := a.buildRecentMenu(); recent != nil {
		fileItems = append(fileItems, recent)
	}

	fileItems = append(fileItems,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Pieces from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Pieces from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Cutting Plan as PDF...", func() {
			a.exportPlan("pdf")
		}),
		fyne.NewMenuItem("Export Piece Labels as PDF...", func() {
			a.exportPlan("labels")
		}),
		fyne.NewMenuItem("Export Cutting Plan as DXF...", func() {
			a.exportPlan("dxf")
		}),
		fyne.NewMenuItem("Export Cutting Plan as Excel...", func() {
			a.exportPlan("xlsx")
		}),
		fyne.NewMenuItem("Export Cutting Plan as PNG...", func() {
			a.exportPlan("png")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)
	fileMenu := fyne.NewMenu("File", fileItems...)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Pieces", func() {
			a.project.Pieces = nil
			a.refreshPiecesList()
		}),
		fyne.NewMenuItem("Clear Results", func() {
			a.project.Plan = nil
			a.refreshResults()
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Optimize", func() {
			a.runOptimize()
			a.tabs.SelectIndex(2) // Switch to Results tab
		}),
		fyne.NewMenuItem("Compare Scenarios", func() {
			a.showCompareDialog()
		}),
		fyne.NewMenuItem("Purchase Estimate...", func() {
			a.showPurchaseDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup Settings...", func() {
			a.backupSettings()
		}),
		fyne.NewMenuItem("Restore Settings...", func() {
			a.restoreSettings()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		toolsMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) buildRecentMenu() *fyne.MenuItem {
	if len(a.config.RecentProjects) == 0 {
		return nil
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentProjects))
	for _, path := range a.config.RecentProjects {
		p := path // capture
		items = append(items, fyne.NewMenuItem(p, func() {
			a.openProjectFile(p)
		}))
	}
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = fyne.NewMenu("", items...)
	return recent
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RollCut",
		"RollCut — Roll Material Cutting Optimizer\n\n"+
			"A cross-platform desktop application for laying out\n"+
			"rectangular pieces on fixed-width roll material.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	piecesTab := container.NewTabItem("Pieces", a.buildPiecesPanel())
	rollTab := container.NewTabItem("Roll & Settings", a.buildRollPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(piecesTab, rollTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// ─── Pieces Panel ──────────────────────────────────────────

func (a *App) buildPiecesPanel() fyne.CanvasObject {
	a.piecesContainer = container.NewVBox()
	a.refreshPiecesList()

	addBtn := widget.NewButtonWithIcon("Add Piece", theme.ContentAddIcon(), func() {
		a.showAddPieceDialog()
	})
	optimizeBtn := widget.NewButtonWithIcon("Optimize", theme.MediaPlayIcon(), func() {
		a.runOptimize()
		a.tabs.SelectIndex(2)
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Required Pieces", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
			optimizeBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.piecesContainer),
	)
}

func (a *App) refreshPiecesList() {
	a.piecesContainer.RemoveAll()

	if len(a.project.Pieces) == 0 {
		a.piecesContainer.Add(widget.NewLabel("No pieces added yet. Click 'Add Piece' to begin."))
		return
	}

	unit := a.project.Unit
	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width ("+unit.Suffix()+")", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Length ("+unit.Suffix()+")", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.piecesContainer.Add(header)
	a.piecesContainer.Add(widget.NewSeparator())

	for i := range a.project.Pieces {
		idx := i // capture
		p := a.project.Pieces[idx]
		row := container.NewGridWithColumns(6,
			widget.NewLabel(p.Label),
			widget.NewLabel(unit.FormatLength(p.Width)),
			widget.NewLabel(unit.FormatLength(p.Length)),
			widget.NewLabel(fmt.Sprintf("%d", p.Quantity)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditPieceDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.project.Pieces = append(a.project.Pieces[:idx], a.project.Pieces[idx+1:]...)
				a.refreshPiecesList()
			}),
		)
		a.piecesContainer.Add(row)
	}
}

func (a *App) showAddPieceDialog() {
	unit := a.project.Unit

	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Piece name")
	labelEntry.SetText(fmt.Sprintf("Piece %d", len(a.project.Pieces)+1))

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Width in " + unit.Suffix())

	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder("Length in " + unit.Suffix())

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")

	form := dialog.NewForm("Add Piece", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Width ("+unit.Suffix()+")", widthEntry),
			widget.NewFormItem("Length ("+unit.Suffix()+")", lengthEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || l <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, length, and quantity must be > 0"), a.window)
				return
			}

			piece := model.NewPiece(labelEntry.Text, unit.ToInternal(w), unit.ToInternal(l), q)
			a.project.Pieces = append(a.project.Pieces, piece)
			a.refreshPiecesList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

func (a *App) showEditPieceDialog(idx int) {
	unit := a.project.Unit
	p := a.project.Pieces[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetText(p.Label)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.FormatFloat(unit.FromInternal(p.Width), 'f', -1, 64))

	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(strconv.FormatFloat(unit.FromInternal(p.Length), 'f', -1, 64))

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(fmt.Sprintf("%d", p.Quantity))

	form := dialog.NewForm("Edit Piece", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Label", labelEntry),
			widget.NewFormItem("Width ("+unit.Suffix()+")", widthEntry),
			widget.NewFormItem("Length ("+unit.Suffix()+")", lengthEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			l, _ := strconv.ParseFloat(lengthEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || l <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, length, and quantity must be > 0"), a.window)
				return
			}

			a.project.Pieces[idx].Label = labelEntry.Text
			a.project.Pieces[idx].Width = unit.ToInternal(w)
			a.project.Pieces[idx].Length = unit.ToInternal(l)
			a.project.Pieces[idx].Quantity = q
			a.refreshPiecesList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

// ─── Roll & Settings Panel ─────────────────────────────────

// rollPreset defines a common roll size for quick selection (cm).
type rollPreset struct {
	Label  string
	Width  float64
	Length float64
}

// Common roll presets covering standard upholstery and vinyl widths.
var rollPresets = []rollPreset{
	{Label: "Custom", Width: 0, Length: 0},
	{Label: "Fabric 152 cm x 30 m", Width: 152, Length: 3000},
	{Label: "Fabric 140 cm x 30 m", Width: 140, Length: 3000},
	{Label: "Vinyl 137 cm x 25 m", Width: 137, Length: 2500},
	{Label: "Wide Fabric 280 cm x 30 m", Width: 280, Length: 3000},
	{Label: "Short Roll 152 cm x 10 m", Width: 152, Length: 1000},
}

func (a *App) buildRollPanel() fyne.CanvasObject {
	a.rollContainer = container.NewVBox()
	a.refreshRollPanel()
	return container.NewVScroll(a.rollContainer)
}

func (a *App) refreshRollPanel() {
	a.rollContainer.RemoveAll()

	unit := a.project.Unit
	s := &a.project.Settings

	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.FormatFloat(unit.FromInternal(a.project.Roll.Width), 'f', -1, 64))
	widthEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			a.project.Roll.Width = unit.ToInternal(v)
		}
	}

	lengthEntry := widget.NewEntry()
	lengthEntry.SetText(strconv.FormatFloat(unit.FromInternal(a.project.Roll.Length), 'f', -1, 64))
	lengthEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			a.project.Roll.Length = unit.ToInternal(v)
		}
	}

	presetNames := make([]string, len(rollPresets))
	for i, p := range rollPresets {
		presetNames[i] = p.Label
	}
	presetSelect := widget.NewSelect(presetNames, func(selected string) {
		for _, p := range rollPresets {
			if p.Label == selected && p.Width > 0 {
				a.project.Roll.Width = p.Width
				a.project.Roll.Length = p.Length
				widthEntry.SetText(strconv.FormatFloat(unit.FromInternal(p.Width), 'f', -1, 64))
				lengthEntry.SetText(strconv.FormatFloat(unit.FromInternal(p.Length), 'f', -1, 64))
				break
			}
		}
	})
	presetSelect.PlaceHolder = "Select a preset roll..."

	rollSection := widget.NewCard("Roll Material", "", container.NewGridWithColumns(2,
		widget.NewLabel("Preset"), presetSelect,
		widget.NewLabel("Width ("+unit.Suffix()+")"), widthEntry,
		widget.NewLabel("Length ("+unit.Suffix()+")"), lengthEntry,
	))

	gridEntry := widget.NewEntry()
	gridEntry.SetText(strconv.FormatFloat(s.GridStep, 'f', -1, 64))
	gridEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			s.GridStep = v
		}
	}

	horizontalCheck := widget.NewCheck("", func(b bool) { s.ForceHorizontal = b })
	horizontalCheck.Checked = s.ForceHorizontal

	optimizerSection := widget.NewCard("Optimizer", "", container.NewGridWithColumns(2,
		widget.NewLabel("Scan Grid Step (cm)"), gridEntry,
		widget.NewLabel("Horizontal Strips Only"), horizontalCheck,
	))

	unitSelect := widget.NewSelect([]string{"Centimeters", "Meters"}, func(selected string) {
		before := a.project.Unit
		if selected == "Meters" {
			a.project.Unit = model.UnitMeters
		} else {
			a.project.Unit = model.UnitCentimeters
		}
		if a.project.Unit != before {
			a.config.DisplayUnit = a.project.Unit
			a.saveConfig()
			a.refreshPiecesList()
			a.refreshRollPanel()
			a.refreshResults()
		}
	})
	if unit == model.UnitMeters {
		unitSelect.SetSelected("Meters")
	} else {
		unitSelect.SetSelected("Centimeters")
	}

	themeSelect := widget.NewSelect([]string{"System", "Light", "Dark"}, func(selected string) {
		a.config.Theme = strings.ToLower(selected)
		a.applyTheme()
		a.saveConfig()
	})
	switch a.config.Theme {
	case "light":
		themeSelect.SetSelected("Light")
	case "dark":
		themeSelect.SetSelected("Dark")
	default:
		themeSelect.SetSelected("System")
	}

	displaySection := widget.NewCard("Display", "", container.NewGridWithColumns(2,
		widget.NewLabel("Measurement Unit"), unitSelect,
		widget.NewLabel("Theme"), themeSelect,
	))

	a.rollContainer.Add(rollSection)
	a.rollContainer.Add(optimizerSection)
	a.rollContainer.Add(displaySection)
	a.rollContainer.Refresh()
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Add pieces, then click Optimize."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderPlan(a.project.Plan, a.project.Pieces, a.project.Unit))
	a.resultContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) runOptimize() {
	if len(a.project.Pieces) == 0 {
		dialog.ShowInformation("Nothing to optimize", "Add at least one piece first.", a.window)
		return
	}

	opt := engine.New(a.project.Settings)
	plan := opt.Optimize(a.project.Roll, a.project.Pieces)
	a.project.Plan = &plan
	a.refreshResults()
}

func (a *App) showCompareDialog() {
	if len(a.project.Pieces) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add at least one piece first.", a.window)
		return
	}

	scenarios := engine.BuildDefaultScenarios(a.project.Settings)
	results := engine.CompareScenarios(scenarios, a.project.Roll, a.project.Pieces)

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%s\n    placed %d, unplaced %d, waste %.1f%%\n\n",
			r.Scenario.Name, r.PlacedCount, r.UnplacedCount, r.WastePercent))
	}
	dialog.ShowInformation("Scenario Comparison", sb.String(), a.window)
}

func (a *App) showPurchaseDialog() {
	wasteEntry := widget.NewEntry()
	wasteEntry.SetText("15")

	priceEntry := widget.NewEntry()
	priceEntry.SetText("0")

	form := dialog.NewForm("Purchase Estimate", "Calculate", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Waste Factor (%)", wasteEntry),
			widget.NewFormItem("Price per Roll", priceEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			waste, _ := strconv.ParseFloat(wasteEntry.Text, 64)
			price, _ := strconv.ParseFloat(priceEntry.Text, 64)

			est := model.CalculatePurchaseEstimate(a.project.Pieces, a.project.Roll, waste, price)
			msg := fmt.Sprintf(
				"Total piece area: %.2f %s²\n"+
					"One roll: %.2f %s²\n"+
					"Exact rolls needed: %.2f\n"+
					"Minimum rolls: %d\n"+
					"Recommended (with %.0f%% waste): %d rolls",
				a.project.Unit.AreaFromInternal(est.TotalPieceArea), a.project.Unit.Suffix(),
				a.project.Unit.AreaFromInternal(est.RollArea), a.project.Unit.Suffix(),
				est.RollsNeededExact, est.RollsNeededMin, est.WastePercent, est.RollsWithWaste,
			)
			if est.EstimatedCost > 0 {
				msg += fmt.Sprintf("\nEstimated cost: %.2f", est.EstimatedCost)
			}
			dialog.ShowInformation("Purchase Estimate", msg, a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(380, 220))
	form.Show()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.Save(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		project.AddRecentProject(&a.config, path)
		a.saveConfig()
	}, a.window)
	d.SetFileName(a.project.Name + ".rollcut")
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openProjectFile(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openProjectFile(path string) {
	proj, err := project.Load(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project = proj
	project.AddRecentProject(&a.config, path)
	a.saveConfig()
	a.refreshPiecesList()
	a.refreshRollPanel()
	if a.project.Plan != nil {
		a.refreshResults()
	}
}

func (a *App) exportPlan(format string) {
	if a.project.Plan == nil || len(a.project.Plan.Placements) == 0 {
		dialog.ShowInformation("No results", "Run the optimizer first before exporting.", a.window)
		return
	}

	defaultName := a.project.Name + "." + format
	if format == "labels" {
		defaultName = a.project.Name + "-labels.pdf"
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()

		var exportErr error
		switch format {
		case "pdf":
			exportErr = export.ExportPDF(path, *a.project.Plan, a.project.Unit)
		case "labels":
			exportErr = export.ExportLabels(path, *a.project.Plan)
		case "dxf":
			exportErr = export.ExportDXF(path, *a.project.Plan)
		case "xlsx":
			exportErr = export.ExportExcel(path, *a.project.Plan, a.project.Unit)
		case "png":
			exportErr = export.ExportPNG(path, *a.project.Plan)
		}
		if exportErr != nil {
			dialog.ShowError(exportErr, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Cutting plan saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) backupSettings() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Backup Complete",
			fmt.Sprintf("Settings saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName("rollcut-backup.json")
	d.Show()
}

func (a *App) restoreSettings() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = backup.Config
		a.saveConfig()
		a.applyTheme()
		dialog.ShowInformation("Restore Complete",
			"Settings restored. New projects will use the restored defaults.", a.window)
	}, a.window)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := pieceimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := pieceimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result pieceimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		// Just log warnings, don't block
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Pieces) > 0 {
		a.project.Pieces = append(a.project.Pieces, result.Pieces...)
		a.refreshPiecesList()

		msg := fmt.Sprintf("Successfully imported %d pieces.", len(result.Pieces))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}
