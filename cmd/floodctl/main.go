// floodctl is the offline companion to the calculation service: it runs one
// flooding calculation from flags, prints the results block and optionally
// writes the PDF report or an xlsx workbook. No network or database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	batch "Vulcan/internal/calc/batch"
	export "Vulcan/internal/calc/export"
	flooding "Vulcan/internal/calc/flooding"
	report "Vulcan/internal/calc/report"
)

func main() {
	var (
		project  = flag.String("project", "Project A", "project name")
		room     = flag.String("room", "CO2 Room", "room name")
		length   = flag.Float64("length", 6, "room length")
		width    = flag.Float64("width", 5, "room width")
		height   = flag.Float64("height", 3, "room height")
		unit     = flag.String("unit", "m", "dimension unit: m, cm, mm, ft, in")
		hazard   = flag.String("hazard", string(flooding.HazardSurfaceFire), "hazard category")
		safety   = flag.Float64("safety", flooding.DefaultSafetyFactor, "safety factor")
		cylinder = flag.Float64("cylinder", flooding.DefaultCylinderSizeLb, "cylinder size, lb")
		reserve  = flag.Bool("reserve", true, "include reserve bank")
		nozzle   = flag.String("nozzle", "E1-N1", "nozzle tag for the schematic")
		pdfPath  = flag.String("pdf", "", "write the PDF report to this path")
		xlsxPath = flag.String("xlsx", "", "write an xlsx workbook to this path")
	)
	flag.Parse()

	req := report.Request{
		ProjectName:    *project,
		RoomName:       *room,
		NozzleTag:      *nozzle,
		Unit:           flooding.Unit(*unit),
		Length:         *length,
		Width:          *width,
		Height:         *height,
		Hazard:         flooding.Hazard(*hazard),
		SafetyFactor:   safety,
		CylinderSizeLb: cylinder,
		IncludeReserve: reserve,
	}
	req.Normalize()

	in, err := req.Input()
	if err != nil {
		log.Fatal(err)
	}
	res, err := flooding.Calculate(in)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(report.FormatText(req, in, res))

	if *pdfPath != "" {
		f, err := os.Create(*pdfPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := report.Write(f, req, in, res); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PDF written:", *pdfPath)
	}

	if *xlsxPath != "" {
		bin := batch.Input{Items: []batch.Room{{RoomName: req.RoomName, Input: in}}}
		out := batch.Output{Results: []batch.RoomResult{{RoomName: req.RoomName, Result: res}}}
		wb, err := export.BuildWorkbook(bin, out)
		if err != nil {
			log.Fatal(err)
		}
		if err := wb.SaveAs(*xlsxPath); err != nil {
			log.Fatal(err)
		}
		wb.Close()
		fmt.Println("Workbook written:", *xlsxPath)
	}
}
