package flooding

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Request is the wire form of Input. Optional settings are pointers so an
// omitted field gets the design default while an explicit zero still fails
// validation.
type Request struct {
	LengthM        float64  `json:"length_m"`
	WidthM         float64  `json:"width_m"`
	HeightM        float64  `json:"height_m"`
	Hazard         Hazard   `json:"hazard"`
	SafetyFactor   *float64 `json:"safety_factor"`
	CylinderSizeLb *float64 `json:"cylinder_size_lb"`
	IncludeReserve *bool    `json:"include_reserve"`
}

// Input resolves defaults and returns the engine input.
func (r Request) Input() Input {
	in := Input{
		LengthM:        r.LengthM,
		WidthM:         r.WidthM,
		HeightM:        r.HeightM,
		Hazard:         r.Hazard,
		SafetyFactor:   DefaultSafetyFactor,
		CylinderSizeLb: DefaultCylinderSizeLb,
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
	return in
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(req.Input())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
