package export

import (
	"encoding/json"
	"net/http"

	batch "Vulcan/internal/calc/batch"
)

type Handler struct{}

// Workbook calculates the posted rooms and streams the results as an xlsx
// download.
func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	var input batch.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := batch.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, err := BuildWorkbook(input, out)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"co2_flooding_results.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
