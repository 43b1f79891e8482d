package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default roll dimensions applied to new projects (cm)
	DefaultRollWidth  float64 `json:"default_roll_width"`
	DefaultRollLength float64 `json:"default_roll_length"`

	// Default optimizer settings applied to new projects
	DefaultGridStep        float64 `json:"default_grid_step"`
	DefaultForceHorizontal bool    `json:"default_force_horizontal"`

	// Application preferences
	DisplayUnit    Unit     `json:"display_unit"`
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultRollWidth:       152.0,
		DefaultRollLength:      3000.0,
		DefaultGridStep:        defaults.GridStep,
		DefaultForceHorizontal: defaults.ForceHorizontal,
		DisplayUnit:            UnitMeters,
		RecentProjects:         []string{},
		Theme:                  "system",
	}
}

// ApplyToProject copies the saved defaults into a freshly created project.
func (c AppConfig) ApplyToProject(p *Project) {
	if c.DefaultRollWidth > 0 {
		p.Roll.Width = c.DefaultRollWidth
	}
	if c.DefaultRollLength > 0 {
		p.Roll.Length = c.DefaultRollLength
	}
	if c.DefaultGridStep > 0 {
		p.Settings.GridStep = c.DefaultGridStep
	}
	p.Settings.ForceHorizontal = c.DefaultForceHorizontal
	if c.DisplayUnit != "" {
		p.Unit = c.DisplayUnit
	}
}
