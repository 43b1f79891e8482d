package model

import "fmt"

// Unit is the measurement unit used for display. The optimizer always
// works in centimeters internally.
type Unit string

const (
	UnitMeters      Unit = "meters"
	UnitCentimeters Unit = "centimeters"
)

// Factor returns the multiplier that converts a display value into
// centimeters (100 for meters, 1 for centimeters).
func (u Unit) Factor() float64 {
	if u == UnitMeters {
		return 100.0
	}
	return 1.0
}

// ToInternal converts a display value to centimeters.
func (u Unit) ToInternal(v float64) float64 {
	return v * u.Factor()
}

// FromInternal converts a centimeter value to the display unit.
func (u Unit) FromInternal(cm float64) float64 {
	return cm / u.Factor()
}

// AreaFromInternal converts square cm to the display unit squared.
func (u Unit) AreaFromInternal(sqcm float64) float64 {
	f := u.Factor()
	return sqcm / (f * f)
}

// FormatLength renders a centimeter value in the display unit. Meters get
// three decimal places, centimeters one, matching the input precision used
// elsewhere.
func (u Unit) FormatLength(cm float64) string {
	if u == UnitMeters {
		return fmt.Sprintf("%.3f m", u.FromInternal(cm))
	}
	return fmt.Sprintf("%.1f cm", cm)
}

// Suffix returns the short unit suffix for table headers.
func (u Unit) Suffix() string {
	if u == UnitMeters {
		return "m"
	}
	return "cm"
}
