package export

import (
	"strconv"
	"testing"

	batch "Vulcan/internal/calc/batch"
	flooding "Vulcan/internal/calc/flooding"
)

func TestBuildWorkbook(t *testing.T) {
	in := batch.Input{Items: []batch.Room{
		{RoomName: "Server Room", Input: flooding.Input{
			LengthM: 6, WidthM: 5, HeightM: 3,
			Hazard: flooding.HazardElectrical, SafetyFactor: 1.1,
			CylinderSizeLb: 100, IncludeReserve: true,
		}},
		{RoomName: "Hold 2", Input: flooding.Input{
			LengthM: 10, WidthM: 8, HeightM: 4,
			Hazard: flooding.HazardMarineCargo, SafetyFactor: 1.1,
			CylinderSizeLb: 100, IncludeReserve: false,
		}},
	}}
	out, err := batch.Calculate(in)
	if err != nil {
		t.Fatalf("batch.Calculate failed: %v", err)
	}

	f, err := BuildWorkbook(in, out)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	if v, _ := f.GetCellValue(sheet, "A1"); v != "Room" {
		t.Errorf("A1 = %q, want %q", v, "Room")
	}
	if v, _ := f.GetCellValue(sheet, "A2"); v != "Server Room" {
		t.Errorf("A2 = %q, want %q", v, "Server Room")
	}
	if v, _ := f.GetCellValue(sheet, "B3"); v != string(flooding.HazardMarineCargo) {
		t.Errorf("B3 = %q, want %q", v, flooding.HazardMarineCargo)
	}
	if v, _ := f.GetCellValue(sheet, "A4"); v != "TOTAL" {
		t.Errorf("A4 = %q, want TOTAL", v)
	}

	// Totals row sums the cylinder counts.
	wantCyl := out.Results[0].CylindersTotal + out.Results[1].CylindersTotal
	v, _ := f.GetCellValue(sheet, "M4")
	gotCyl, err := strconv.Atoi(v)
	if err != nil || gotCyl != wantCyl {
		t.Errorf("M4 = %q, want %d", v, wantCyl)
	}
}
