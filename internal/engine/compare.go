package engine

import (
	"fmt"

	"github.com/rollwise/rollcut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.OptimizeSettings
}

// ComparisonResult holds the plan and computed statistics for a single
// scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Plan          model.CutPlan
	PlacedCount   int
	UnplacedCount int
	WastePercent  float64
}

// CompareScenarios runs the optimizer once per scenario on the same roll
// and demand, enabling side-by-side comparison of pipeline modes and
// scan resolutions.
func CompareScenarios(scenarios []ComparisonScenario, roll model.Roll, pieces []model.Piece) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings)
		plan := opt.Optimize(roll, pieces)

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Plan:          plan,
			PlacedCount:   plan.PlacedCount(),
			UnplacedCount: plan.UnplacedCount(pieces),
			WastePercent:  plan.WastePercent,
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if scenarios based on the current
// settings: the other pipeline mode and a finer scan grid.
func BuildDefaultScenarios(base model.OptimizeSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	altMode := base
	altMode.ForceHorizontal = !base.ForceHorizontal
	name := "Multi-Phase Pipeline"
	if altMode.ForceHorizontal {
		name = "Horizontal Strip Pipeline"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Settings: altMode})

	step := base.GridStep
	if step <= 0 {
		step = model.DefaultSettings().GridStep
	}
	finer := base
	finer.GridStep = step / 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Finer Grid (%.2g cm)", finer.GridStep),
		Settings: finer,
	})

	return scenarios
}
