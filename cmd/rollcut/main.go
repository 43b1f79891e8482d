// RollCut — Roll Material Cutting Optimizer
//
// A cross-platform desktop application for laying out rectangular
// pieces on fixed-width roll material and exporting cutting plans.
//
// Build:
//   go build -o rollcut ./cmd/rollcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o rollcut.exe ./cmd/rollcut
//   GOOS=darwin  GOARCH=amd64 go build -o rollcut-darwin ./cmd/rollcut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/rollwise/rollcut/internal/ui"
)

func main() {
	application := app.NewWithID("com.rollwise.rollcut")

	window := application.NewWindow("RollCut — Roll Material Cutting Optimizer")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()

	window.ShowAndRun()
}
