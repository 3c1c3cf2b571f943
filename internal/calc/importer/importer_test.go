package importer

import (
	"math"
	"testing"

	flooding "Vulcan/internal/calc/flooding"
)

func TestParseRow(t *testing.T) {
	row := []string{"Server Room", "6", "5", "3", "m", "Electrical Equipment", "1.2", "75", "no"}
	got, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow failed: %v", err)
	}
	if got.RoomName != "Server Room" {
		t.Errorf("room = %q, want %q", got.RoomName, "Server Room")
	}
	if got.LengthM != 6 || got.WidthM != 5 || got.HeightM != 3 {
		t.Errorf("dims = %v/%v/%v, want 6/5/3", got.LengthM, got.WidthM, got.HeightM)
	}
	if got.Hazard != flooding.HazardElectrical {
		t.Errorf("hazard = %q, want electrical", got.Hazard)
	}
	if got.SafetyFactor != 1.2 || got.CylinderSizeLb != 75 {
		t.Errorf("settings = %v/%v, want 1.2/75", got.SafetyFactor, got.CylinderSizeLb)
	}
	if got.IncludeReserve {
		t.Error("include_reserve = true, want false")
	}
}

func TestParseRowDefaults(t *testing.T) {
	row := []string{"Room", "6", "5", "3", "", "Surface Fire"}
	got, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow failed: %v", err)
	}
	if got.SafetyFactor != flooding.DefaultSafetyFactor {
		t.Errorf("safety = %v, want default", got.SafetyFactor)
	}
	if got.CylinderSizeLb != flooding.DefaultCylinderSizeLb {
		t.Errorf("cylinder = %v, want default", got.CylinderSizeLb)
	}
	if !got.IncludeReserve {
		t.Error("include_reserve defaulted to false, want true")
	}
}

func TestParseRowUnitConversion(t *testing.T) {
	row := []string{"Room", "600", "500", "300", "cm", "Surface Fire"}
	got, err := parseRow(row)
	if err != nil {
		t.Fatalf("parseRow failed: %v", err)
	}
	if math.Abs(got.LengthM-6) > 1e-12 || math.Abs(got.HeightM-3) > 1e-12 {
		t.Errorf("dims = %v/%v/%v, want 6/5/3 m", got.LengthM, got.WidthM, got.HeightM)
	}
}

func TestParseRowRejects(t *testing.T) {
	cases := [][]string{
		{"Room", "6", "5"},                            // too short
		{"Room", "six", "5", "3", "m", "Surface Fire"}, // bad number
		{"Room", "6", "5", "3", "yd", "Surface Fire"},  // bad unit
	}
	for _, row := range cases {
		if _, err := parseRow(row); err == nil {
			t.Errorf("parseRow(%v) succeeded, want error", row)
		}
	}
}
