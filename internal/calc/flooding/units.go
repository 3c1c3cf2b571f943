package flooding

import "fmt"

// Unit is a linear dimension unit accepted for room measurements.
type Unit string

const (
	UnitMeters      Unit = "m"
	UnitCentimeters Unit = "cm"
	UnitMillimeters Unit = "mm"
	UnitFeet        Unit = "ft"
	UnitInches      Unit = "in"
)

// unitToMeters holds the closed set of supported units.
var unitToMeters = map[Unit]float64{
	UnitMeters:      1.0,
	UnitCentimeters: 0.01,
	UnitMillimeters: 0.001,
	UnitFeet:        0.3048,
	UnitInches:      0.0254,
}

// Units lists the supported units in menu order.
func Units() []Unit {
	return []Unit{UnitMeters, UnitCentimeters, UnitMillimeters, UnitFeet, UnitInches}
}

// ConvertToMeters converts a value expressed in unit to meters.
func ConvertToMeters(value float64, unit Unit) (float64, error) {
	factor, ok := unitToMeters[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	return value * factor, nil
}
