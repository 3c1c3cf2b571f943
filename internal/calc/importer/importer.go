// Package importer reads room definitions from an uploaded spreadsheet and
// runs the flooding calculation for each row.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	batch "Vulcan/internal/calc/batch"
	flooding "Vulcan/internal/calc/flooding"
)

// Expected columns, one room per row after the header:
// room_name, length, width, height, unit, hazard, safety_factor,
// cylinder_size_lb, include_reserve. Trailing columns may be omitted.
func parseRow(row []string) (batch.Room, error) {
	if len(row) < 6 {
		return batch.Room{}, fmt.Errorf("bad row")
	}

	length, err := toFloat(row[1])
	if err != nil {
		return batch.Room{}, err
	}
	width, err := toFloat(row[2])
	if err != nil {
		return batch.Room{}, err
	}
	height, err := toFloat(row[3])
	if err != nil {
		return batch.Room{}, err
	}

	unit := flooding.Unit(strings.TrimSpace(row[4]))
	if unit == "" {
		unit = flooding.UnitMeters
	}
	lengthM, err := flooding.ConvertToMeters(length, unit)
	if err != nil {
		return batch.Room{}, err
	}
	widthM, err := flooding.ConvertToMeters(width, unit)
	if err != nil {
		return batch.Room{}, err
	}
	heightM, err := flooding.ConvertToMeters(height, unit)
	if err != nil {
		return batch.Room{}, err
	}

	in := flooding.Input{
		LengthM:        lengthM,
		WidthM:         widthM,
		HeightM:        heightM,
		Hazard:         flooding.Hazard(strings.TrimSpace(row[5])),
		SafetyFactor:   flooding.DefaultSafetyFactor,
		CylinderSizeLb: flooding.DefaultCylinderSizeLb,
		IncludeReserve: true,
	}
	if len(row) > 6 && row[6] != "" {
		if in.SafetyFactor, err = toFloat(row[6]); err != nil {
			return batch.Room{}, err
		}
	}
	if len(row) > 7 && row[7] != "" {
		if in.CylinderSizeLb, err = toFloat(row[7]); err != nil {
			return batch.Room{}, err
		}
	}
	if len(row) > 8 && row[8] != "" {
		in.IncludeReserve = toBool(row[8])
	}

	return batch.Room{RoomName: strings.TrimSpace(row[0]), Input: in}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}
