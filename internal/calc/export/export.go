// Package export builds an xlsx workbook from calculated scenarios so results
// can be handed off to estimators.
package export

import (
	batch "Vulcan/internal/calc/batch"

	"github.com/xuri/excelize/v2"
)

var header = []interface{}{
	"Room", "Hazard", "Length (m)", "Width (m)", "Height (m)",
	"Volume (m3)", "Volume (ft3)", "Base CO2 (lb)", "Total CO2 (lb)",
	"Total CO2 (kg)", "Main Cylinders", "Reserve Cylinders", "Total Cylinders",
}

// BuildWorkbook writes one row per room plus a totals row.
func BuildWorkbook(in batch.Input, out batch.Output) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	var totalLb, totalKg float64
	var totalCyl int
	for i, res := range out.Results {
		item := in.Items[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			res.RoomName, string(item.Hazard),
			item.LengthM, item.WidthM, item.HeightM,
			res.VolumeM3, res.VolumeFt3, res.BaseLb, res.TotalLb, res.TotalKg,
			res.CylindersMain, res.CylindersReserve, res.CylindersTotal,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
		totalLb += res.TotalLb
		totalKg += res.TotalKg
		totalCyl += res.CylindersTotal
	}

	cell, err := excelize.CoordinatesToCellName(1, len(out.Results)+2)
	if err != nil {
		return nil, err
	}
	totals := []interface{}{
		"TOTAL", "", "", "", "", "", "", "", totalLb, totalKg, "", "", totalCyl,
	}
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return nil, err
	}
	return f, nil
}
