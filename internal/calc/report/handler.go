package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	flooding "Vulcan/internal/calc/flooding"
)

type Handler struct{}

// Generate runs the calculation for the posted request and streams the PDF
// report as a download.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Normalize()

	in, err := req.Input()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := flooding.Calculate(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.ReplaceAll(req.RoomName, " ", "_") + "_CO2_Report.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := Write(w, req, in, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Summary returns the plain-text results block instead of a PDF.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Normalize()

	in, err := req.Input()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := flooding.Calculate(in)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, FormatText(req, in, res))
}
