// Package flooding computes CO2 agent quantities and cylinder counts for
// total-flooding suppression systems from a simplified NFPA 12 flooding-factor
// table.
package flooding

import (
	"errors"
	"fmt"
	"math"
)

type Hazard string

const (
	HazardSurfaceFire Hazard = "Surface Fire"
	HazardElectrical  Hazard = "Electrical Equipment"
	HazardMarineCargo Hazard = "Marine Cargo"
)

// Hazards lists the recognized hazard categories in menu order.
func Hazards() []Hazard {
	return []Hazard{HazardSurfaceFire, HazardElectrical, HazardMarineCargo}
}

const (
	M3ToFt3 = 35.3147
	LbToKg  = 0.453592

	DefaultSafetyFactor   = 1.1
	DefaultCylinderSizeLb = 100.0
)

var (
	ErrInvalidDimension    = errors.New("invalid dimension")
	ErrInvalidSafetyFactor = errors.New("invalid safety factor")
	ErrInvalidCylinderSize = errors.New("invalid cylinder size")
	ErrInvalidHazard       = errors.New("invalid hazard")
	ErrInvalidUnit         = errors.New("invalid unit")
)

type Input struct {
	LengthM        float64 `json:"length_m"`
	WidthM         float64 `json:"width_m"`
	HeightM        float64 `json:"height_m"`
	Hazard         Hazard  `json:"hazard"`
	SafetyFactor   float64 `json:"safety_factor"`
	CylinderSizeLb float64 `json:"cylinder_size_lb"`
	IncludeReserve bool    `json:"include_reserve"`
}

type Result struct {
	VolumeM3         float64 `json:"volume_m3"`
	VolumeFt3        float64 `json:"volume_ft3"`
	BaseLb           float64 `json:"base_lb"`
	TotalLb          float64 `json:"total_lb"`
	TotalKg          float64 `json:"total_kg"`
	CylindersMain    int     `json:"cylinders_main"`
	CylindersReserve int     `json:"cylinders_reserve"`
	CylindersTotal   int     `json:"cylinders_total"`
	IncludeReserve   bool    `json:"include_reserve"`
	CylinderSizeLb   float64 `json:"cylinder_size_lb"`
	CylinderSizeKg   float64 `json:"cylinder_size_kg"`
}

// surfaceFireTable maps room volume (ft3, inclusive upper bound) to the
// flooding factor in ft3 per lb of CO2. Order matters: evaluated top down,
// first match wins. Volumes above the last bound use surfaceFireLargeDivisor.
var surfaceFireTable = []struct {
	UpToFt3 float64
	Divisor float64
}{
	{140, 14},
	{500, 15},
	{1600, 16},
	{4500, 18},
	{50000, 20},
}

const surfaceFireLargeDivisor = 22

const (
	electricalSmallLimitFt3 = 2000
	electricalSmallDivisor  = 10
	electricalLargeDivisor  = 12
	electricalFloorLb       = 200 // minimum charge for large electrical enclosures
	marineCargoDivisor      = 30
)

func baseAgentLb(volumeFt3 float64, hazard Hazard) (float64, error) {
	switch hazard {
	case HazardSurfaceFire:
		for _, row := range surfaceFireTable {
			if volumeFt3 <= row.UpToFt3 {
				return volumeFt3 / row.Divisor, nil
			}
		}
		return volumeFt3 / surfaceFireLargeDivisor, nil
	case HazardElectrical:
		if volumeFt3 <= electricalSmallLimitFt3 {
			return volumeFt3 / electricalSmallDivisor, nil
		}
		return math.Max(electricalFloorLb, volumeFt3/electricalLargeDivisor), nil
	case HazardMarineCargo:
		return volumeFt3 / marineCargoDivisor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHazard, hazard)
	}
}

// Calculate derives the agent quantity and cylinder counts for one room. It is
// a pure function: no partial results, the first violated precondition aborts
// the whole calculation.
func Calculate(in Input) (Result, error) {
	switch {
	case in.LengthM <= 0:
		return Result{}, fmt.Errorf("%w: length must be > 0", ErrInvalidDimension)
	case in.WidthM <= 0:
		return Result{}, fmt.Errorf("%w: width must be > 0", ErrInvalidDimension)
	case in.HeightM <= 0:
		return Result{}, fmt.Errorf("%w: height must be > 0", ErrInvalidDimension)
	case in.SafetyFactor <= 0:
		return Result{}, fmt.Errorf("%w: safety factor must be > 0", ErrInvalidSafetyFactor)
	case in.CylinderSizeLb <= 0:
		return Result{}, fmt.Errorf("%w: cylinder size must be > 0", ErrInvalidCylinderSize)
	}

	volumeM3 := in.LengthM * in.WidthM * in.HeightM
	volumeFt3 := volumeM3 * M3ToFt3

	baseLb, err := baseAgentLb(volumeFt3, in.Hazard)
	if err != nil {
		return Result{}, err
	}

	totalLb := baseLb * in.SafetyFactor
	totalKg := totalLb * LbToKg

	// Any fractional remainder requires a whole extra cylinder.
	cylMain := int(math.Ceil(totalLb / in.CylinderSizeLb))

	cylReserve := 0
	if in.IncludeReserve {
		cylReserve = cylMain
	}

	return Result{
		VolumeM3:         volumeM3,
		VolumeFt3:        volumeFt3,
		BaseLb:           baseLb,
		TotalLb:          totalLb,
		TotalKg:          totalKg,
		CylindersMain:    cylMain,
		CylindersReserve: cylReserve,
		CylindersTotal:   cylMain + cylReserve,
		IncludeReserve:   in.IncludeReserve,
		CylinderSizeLb:   in.CylinderSizeLb,
		CylinderSizeKg:   in.CylinderSizeLb * LbToKg,
	}, nil
}
