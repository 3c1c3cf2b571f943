package report

import (
	"fmt"

	flooding "Vulcan/internal/calc/flooding"

	"github.com/phpdave11/gofpdf"
)

// Schematic canvas in drawing units, mapped onto the page at scale.
const (
	schemW     = 520.0
	schemH     = 330.0
	schemScale = 0.32
)

// drawSchematic renders the isometric-style preliminary piping schematic:
// cylinder bank at the origin with N/E/S/W axes, a vertical riser, a sloped
// run and the tagged nozzle.
func drawSchematic(pdf *gofpdf.Fpdf, nozzleTag string, res flooding.Result) {
	x0 := pdf.GetX()
	y0 := pdf.GetY()

	// Drawing-space coordinates have y up; the page has y down.
	px := func(u float64) float64 { return x0 + u*schemScale }
	py := func(v float64) float64 { return y0 + (schemH-v)*schemScale }
	line := func(x1, y1, x2, y2 float64) {
		pdf.Line(px(x1), py(y1), px(x2), py(y2))
	}
	label := func(x, y float64, s string) {
		pdf.Text(px(x), py(y), s)
	}

	ox := schemW * 0.33
	oy := schemH * 0.22

	// Axes
	pdf.SetDrawColor(38, 64, 166)
	pdf.SetTextColor(38, 64, 166)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "", 7)
	const axisLen = 170.0
	line(ox, oy, ox-axisLen*0.70, oy+axisLen*0.55)
	label(ox-axisLen*0.73, oy+axisLen*0.58, "N")
	line(ox, oy, ox+axisLen*0.80, oy+axisLen*0.45)
	label(ox+axisLen*0.83, oy+axisLen*0.48, "E")
	line(ox, oy, ox+axisLen*0.55, oy-axisLen*0.50)
	label(ox+axisLen*0.58, oy-axisLen*0.55, "S")
	line(ox, oy, ox-axisLen*0.70, oy-axisLen*0.40)
	label(ox-axisLen*0.74, oy-axisLen*0.45, "W")
	pdf.SetTextColor(0, 0, 0)

	// Cylinder bank (one drawn, annotated xN)
	const cylW, cylH = 34.0, 82.0
	cylX := ox - cylW/2
	cylY := oy + 6
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.35)
	pdf.Rect(px(cylX), py(cylY+cylH), cylW*schemScale, cylH*schemScale, "D")
	line(cylX+5, cylY+cylH, cylX+cylW-5, cylY+cylH)
	pdf.SetFont("Helvetica", "", 6.5)
	label(ox-65, cylY-16, fmt.Sprintf("%d x %.0f lb Cylinders (~%.1f kg)",
		res.CylindersMain, res.CylinderSizeLb, res.CylinderSizeKg))

	// Valve (VOA) above the cylinder
	valveX := ox
	valveY := cylY + cylH + 10
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.25)
	pdf.Circle(px(valveX), py(valveY), 4*schemScale, "D")
	label(valveX+8, valveY-3, "20mm VOA")

	// Pipe route: riser, sloped run, small drop, nozzle
	p0 := [2]float64{valveX, valveY}
	p1 := [2]float64{valveX, valveY + 95}
	p2 := [2]float64{p1[0] + 250, p1[1] + 90}
	p3 := [2]float64{p2[0], p2[1] - 18}
	nz := [2]float64{p3[0] + 12, p3[1]}

	line(p0[0], p0[1], p1[0], p1[1])
	line(p1[0], p1[1], p2[0], p2[1])
	line(p2[0], p2[1], p3[0], p3[1])
	line(p3[0], p3[1], nz[0], nz[1])

	// Fitting markers
	pdf.SetDrawColor(0, 128, 0)
	for _, pt := range [][2]float64{p0, p1, p2} {
		pdf.Circle(px(pt[0]), py(pt[1]), 3*schemScale, "D")
	}

	// Node numbers
	pdf.SetDrawColor(0, 0, 0)
	label(p0[0]-10, p0[1]-12, "5")
	label((p0[0]+p1[0])/2-8, (p0[1]+p1[1])/2, "6")
	label(p1[0]-10, p1[1]-12, "7")
	label(p2[0]-10, p2[1]-12, "8")

	// Nozzle symbol and tag
	pdf.Circle(px(nz[0]), py(nz[1]), 4*schemScale, "D")
	line(nz[0]-6, nz[1], nz[0]+6, nz[1])
	line(nz[0], nz[1]-6, nz[0], nz[1]+6)
	label(nz[0]+10, nz[1]-3, nozzleTag)

	pdf.SetLineWidth(0.2)
	pdf.SetY(y0 + schemH*schemScale + 5)
}
