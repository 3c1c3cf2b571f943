// Package report renders a calculation into a PDF document or a plain-text
// summary for the CLI and the results endpoint.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	flooding "Vulcan/internal/calc/flooding"

	"github.com/phpdave11/gofpdf"
)

// Request carries the project metadata and the room dimensions as entered,
// before unit conversion. Optional settings follow the same pointer convention
// as the flooding handler.
type Request struct {
	ProjectName    string          `json:"project_name"`
	RoomName       string          `json:"room_name"`
	NozzleTag      string          `json:"nozzle_tag"`
	Unit           flooding.Unit   `json:"unit"`
	Length         float64         `json:"length"`
	Width          float64         `json:"width"`
	Height         float64         `json:"height"`
	Hazard         flooding.Hazard `json:"hazard"`
	SafetyFactor   *float64        `json:"safety_factor"`
	CylinderSizeLb *float64        `json:"cylinder_size_lb"`
	IncludeReserve *bool           `json:"include_reserve"`
}

// Normalize fills the presentation defaults. Numeric defaults are resolved by
// Input, not here.
func (r *Request) Normalize() {
	if r.RoomName == "" {
		r.RoomName = "CO2 Room"
	}
	if r.NozzleTag == "" {
		r.NozzleTag = "E1-N1"
	}
	if r.Unit == "" {
		r.Unit = flooding.UnitMeters
	}
}

// Input converts the entered dimensions to meters and resolves defaults.
func (r Request) Input() (flooding.Input, error) {
	length, err := flooding.ConvertToMeters(r.Length, r.Unit)
	if err != nil {
		return flooding.Input{}, err
	}
	width, err := flooding.ConvertToMeters(r.Width, r.Unit)
	if err != nil {
		return flooding.Input{}, err
	}
	height, err := flooding.ConvertToMeters(r.Height, r.Unit)
	if err != nil {
		return flooding.Input{}, err
	}

	in := flooding.Input{
		LengthM:        length,
		WidthM:         width,
		HeightM:        height,
		Hazard:         r.Hazard,
		SafetyFactor:   flooding.DefaultSafetyFactor,
		CylinderSizeLb: flooding.DefaultCylinderSizeLb,
		IncludeReserve: true,
	}
	if r.SafetyFactor != nil {
		in.SafetyFactor = *r.SafetyFactor
	}
	if r.CylinderSizeLb != nil {
		in.CylinderSizeLb = *r.CylinderSizeLb
	}
	if r.IncludeReserve != nil {
		in.IncludeReserve = *r.IncludeReserve
	}
	return in, nil
}

const safetyNote = "Safety Note: CO2 total flooding systems produce lethal concentrations. " +
	"This report is conceptual/preliminary only. Confirm final design, safety interlocks, " +
	"time delays, ventilation shutdown, lockout valves, and compliance with the applicable " +
	"NFPA 12 edition and local AHJ requirements."

// Write renders the full PDF report to w.
func Write(w io.Writer, req Request, in flooding.Input, res flooding.Result) error {
	req.Normalize()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetTextColor(31, 78, 121)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "CO2 Total Flooding Calculator Report (Conceptual) - NFPA 12")
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	reserveTxt := "No"
	if res.IncludeReserve {
		reserveTxt = "Yes"
	}

	section(pdf, "Project Information")
	table(pdf, [][2]string{
		{"Field", "Value"},
		{"Project Name", req.ProjectName},
		{"Room Name", req.RoomName},
		{"Input Units", string(req.Unit)},
		{"Hazard Type", string(req.Hazard)},
		{"Safety Factor", fmt.Sprintf("%.2f", in.SafetyFactor)},
		{"Cylinder Size", fmt.Sprintf("%.0f lb (~%.1f kg)", res.CylinderSizeLb, res.CylinderSizeKg)},
		{"Reserve Bank Included", reserveTxt},
		{"Nozzle Tag (schematic)", req.NozzleTag},
	})

	section(pdf, "Inputs")
	table(pdf, [][2]string{
		{"Dimension", "Entered / Meters"},
		{"Length", fmt.Sprintf("%.2f %s   /   %.2f m", req.Length, req.Unit, in.LengthM)},
		{"Width", fmt.Sprintf("%.2f %s   /   %.2f m", req.Width, req.Unit, in.WidthM)},
		{"Height", fmt.Sprintf("%.2f %s   /   %.2f m", req.Height, req.Unit, in.HeightM)},
	})

	section(pdf, "Summary Highlights")
	table(pdf, [][2]string{
		{"Key Summary", "Value"},
		{"Total CO2 Required", fmt.Sprintf("%.2f lb   (%.2f kg)", res.TotalLb, res.TotalKg)},
		{"Total Cylinders", fmt.Sprintf("%d", res.CylindersTotal)},
	})

	section(pdf, "Calculation Results")
	table(pdf, [][2]string{
		{"Metric", "Value"},
		{"Net Room Volume", fmt.Sprintf("%.2f m3   (%.2f ft3)", res.VolumeM3, res.VolumeFt3)},
		{"Base CO2 Required", fmt.Sprintf("%.2f lb", res.BaseLb)},
		{"Total CO2 Required (with safety factor)", fmt.Sprintf("%.2f lb   (%.2f kg)", res.TotalLb, res.TotalKg)},
		{"Main Bank Cylinders", fmt.Sprintf("%d", res.CylindersMain)},
		{"Reserve Bank Cylinders", fmt.Sprintf("%d", res.CylindersReserve)},
		{"Total Cylinders", fmt.Sprintf("%d", res.CylindersTotal)},
	})

	// The schematic needs most of a page; start a fresh one.
	pdf.AddPage()
	section(pdf, "Preliminary Piping Schematic (Conceptual)")
	drawSchematic(pdf, req.NozzleTag, res)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, safetyNote, "", "L", false)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetDrawColor(128, 128, 128)
	for i, row := range rows {
		if i == 0 {
			pdf.SetFillColor(47, 85, 151)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetFont("Helvetica", "B", 9)
		} else if i%2 == 0 {
			pdf.SetFillColor(211, 211, 211)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 9)
		} else {
			pdf.SetFillColor(245, 245, 245)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(80, 6, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(100, 6, row[1], "1", 1, "L", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

// FormatText renders the same summary the calculator shows on screen.
func FormatText(req Request, in flooding.Input, r flooding.Result) string {
	req.Normalize()

	reserveTxt := "No"
	if r.IncludeReserve {
		reserveTxt = "Yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", req.ProjectName)
	fmt.Fprintf(&b, "Room: %s\n", req.RoomName)
	fmt.Fprintf(&b, "Hazard: %s\n", req.Hazard)
	fmt.Fprintf(&b, "Cylinder Size: %.0f lb (~%.1f kg)\n", r.CylinderSizeLb, r.CylinderSizeKg)
	fmt.Fprintf(&b, "Reserve Bank Included: %s\n\n", reserveTxt)
	fmt.Fprintf(&b, "Net Volume:\n  - %.2f m3\n  - %.2f ft3\n\n", r.VolumeM3, r.VolumeFt3)
	fmt.Fprintf(&b, "Dimensions (%s):\n  - L: %.2f, W: %.2f, H: %.2f\n\n", req.Unit, req.Length, req.Width, req.Height)
	fmt.Fprintf(&b, "CO2 Requirement:\n  - Base: %.2f lb\n  - Total (SF=%g): %.2f lb  (%.2f kg)\n\n",
		r.BaseLb, in.SafetyFactor, r.TotalLb, r.TotalKg)
	fmt.Fprintf(&b, "Cylinders:\n  - Main bank: %d\n  - Reserve bank: %d\n  - Total: %d\n\n",
		r.CylindersMain, r.CylindersReserve, r.CylindersTotal)
	fmt.Fprintf(&b, "Nozzle Tag (schematic): %s\n", req.NozzleTag)
	b.WriteString("Note: Schematic is preliminary/conceptual (not a shop drawing).\n")
	return b.String()
}
