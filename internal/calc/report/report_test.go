package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	flooding "Vulcan/internal/calc/flooding"
)

func testRequest() Request {
	sf := 1.1
	size := 100.0
	reserve := true
	return Request{
		ProjectName:    "Project A",
		RoomName:       "CO2 Room",
		NozzleTag:      "E1-N1",
		Unit:           flooding.UnitMeters,
		Length:         6,
		Width:          5,
		Height:         3,
		Hazard:         flooding.HazardSurfaceFire,
		SafetyFactor:   &sf,
		CylinderSizeLb: &size,
		IncludeReserve: &reserve,
	}
}

func TestRequestInputConvertsUnits(t *testing.T) {
	req := testRequest()
	req.Unit = flooding.UnitFeet
	req.Length, req.Width, req.Height = 10, 10, 10

	in, err := req.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if math.Abs(in.LengthM-3.048) > 1e-12 {
		t.Errorf("length_m = %v, want 3.048", in.LengthM)
	}
}

func TestRequestInputInvalidUnit(t *testing.T) {
	req := testRequest()
	req.Unit = "furlong"
	if _, err := req.Input(); !errors.Is(err, flooding.ErrInvalidUnit) {
		t.Errorf("err = %v, want ErrInvalidUnit", err)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	var req Request
	req.Normalize()
	if req.RoomName != "CO2 Room" {
		t.Errorf("room = %q, want default", req.RoomName)
	}
	if req.NozzleTag != "E1-N1" {
		t.Errorf("nozzle = %q, want default", req.NozzleTag)
	}
	if req.Unit != flooding.UnitMeters {
		t.Errorf("unit = %q, want m", req.Unit)
	}
}

func TestFormatText(t *testing.T) {
	req := testRequest()
	in, err := req.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	res, err := flooding.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	text := FormatText(req, in, res)
	for _, want := range []string{
		"Project: Project A",
		"Hazard: Surface Fire",
		"- 90.00 m3",
		"- Main bank: 2",
		"- Reserve bank: 2",
		"- Total: 4",
		"Nozzle Tag (schematic): E1-N1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestWritePDF(t *testing.T) {
	req := testRequest()
	in, err := req.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	res, err := flooding.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, req, in, res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if buf.Len() < 1000 {
		t.Errorf("PDF suspiciously small: %d bytes", buf.Len())
	}
}
