// Package history saves and recalls past flooding calculations so a user can
// re-export a report without re-entering the room data.
package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	auth "Vulcan/internal/auth"
	flooding "Vulcan/internal/calc/flooding"
	report "Vulcan/internal/calc/report"
	repo "Vulcan/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
}

type savedPayload struct {
	Request report.Request  `json:"request"`
	Result  flooding.Result `json:"result"`
}

// Save recomputes the posted request server-side and stores it. The stored
// result is never trusted from the client.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req report.Request
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

	payload, err := json.Marshal(savedPayload{Request: req, Result: res})
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveCalculation(r.Context(), userID, repo.CalculationRecord{
		ProjectName:    req.ProjectName,
		RoomName:       req.RoomName,
		Hazard:         string(req.Hazard),
		TotalLb:        res.TotalLb,
		CylindersTotal: res.CylindersTotal,
		Payload:        payload,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recs, err := h.Repo.ListCalculations(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	rec, err := h.Repo.GetCalculation(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Calculation not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
