package importer

import (
	"encoding/json"
	"net/http"

	batch "Vulcan/internal/calc/batch"
	flooding "Vulcan/internal/calc/flooding"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Results []batch.RoomResult `json:"results"`
}

// Rooms accepts an xlsx upload and calculates every parseable row. Malformed
// rows are skipped rather than failing the whole import.
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []batch.RoomResult
	for i := 1; i < len(rows); i++ {
		room, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := flooding.Calculate(room.Input)
		if err != nil {
			continue
		}
		results = append(results, batch.RoomResult{RoomName: room.RoomName, Result: res})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}
