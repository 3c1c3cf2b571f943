package batch

import (
	"strings"
	"testing"

	flooding "Vulcan/internal/calc/flooding"
)

func room(name string, hazard flooding.Hazard) Room {
	return Room{
		RoomName: name,
		Input: flooding.Input{
			LengthM:        6,
			WidthM:         5,
			HeightM:        3,
			Hazard:         hazard,
			SafetyFactor:   1.1,
			CylinderSizeLb: 100,
			IncludeReserve: true,
		},
	}
}

func TestCalculateBatch(t *testing.T) {
	in := Input{Items: []Room{
		room("Server Room", flooding.HazardElectrical),
		room("Paint Store", flooding.HazardSurfaceFire),
	}}
	out, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(out.Results))
	}
	if out.Results[0].RoomName != "Server Room" {
		t.Errorf("room name = %q, want %q", out.Results[0].RoomName, "Server Room")
	}
	// Same geometry, different hazards: results must differ.
	if out.Results[0].BaseLb == out.Results[1].BaseLb {
		t.Error("electrical and surface-fire results are identical")
	}
}

func TestCalculateBatchEmpty(t *testing.T) {
	if _, err := Calculate(Input{}); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestCalculateBatchFailFast(t *testing.T) {
	bad := room("Bad Room", flooding.HazardSurfaceFire)
	bad.LengthM = 0
	in := Input{Items: []Room{room("OK Room", flooding.HazardSurfaceFire), bad}}

	out, err := Calculate(in)
	if err == nil {
		t.Fatal("expected error for invalid item")
	}
	if !strings.Contains(err.Error(), "Bad Room") {
		t.Errorf("error %q does not name the failing room", err)
	}
	if len(out.Results) != 0 {
		t.Errorf("partial results returned on failure: %d", len(out.Results))
	}
}
