package flooding

import (
	"errors"
	"math"
	"testing"
)

func TestConvertToMeters(t *testing.T) {
	cases := []struct {
		value float64
		unit  Unit
		want  float64
	}{
		{1, UnitMeters, 1},
		{100, UnitCentimeters, 1},
		{1000, UnitMillimeters, 1},
		{10, UnitFeet, 3.048},
		{12, UnitInches, 0.3048},
	}
	for _, c := range cases {
		got, err := ConvertToMeters(c.value, c.unit)
		if err != nil {
			t.Fatalf("ConvertToMeters(%v, %q) failed: %v", c.value, c.unit, err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ConvertToMeters(%v, %q) = %v, want %v", c.value, c.unit, got, c.want)
		}
	}
}

func TestConvertToMetersRoundTrip(t *testing.T) {
	const entered = 17.25
	m, err := ConvertToMeters(entered, UnitFeet)
	if err != nil {
		t.Fatalf("ConvertToMeters failed: %v", err)
	}
	back := m / 0.3048
	if math.Abs(back-entered) > 1e-9 {
		t.Errorf("round trip = %v, want %v", back, entered)
	}
}

func TestConvertToMetersInvalidUnit(t *testing.T) {
	_, err := ConvertToMeters(1, Unit("yd"))
	if !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("err = %v, want ErrInvalidUnit", err)
	}
}

func TestUnitsClosedSet(t *testing.T) {
	units := Units()
	if len(units) != 5 {
		t.Fatalf("len(Units()) = %d, want 5", len(units))
	}
	for _, u := range units {
		if _, err := ConvertToMeters(1, u); err != nil {
			t.Errorf("unit %q not convertible: %v", u, err)
		}
	}
}
