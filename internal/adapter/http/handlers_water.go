package adapthttp

import (
	"net/http"

	"nutritrack/internal/app"
)

type waterTodayResponse struct {
	Today string `json:"today"`
	app.WaterDay
}

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	today, err := dayQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	day, err := s.water.Day(r.Context(), userFromContext(r).ID, today)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, waterTodayResponse{Today: today, WaterDay: day})
}

// handleWaterEvent logs a signed intake amount, e.g. {"deltaLiters": 0.25}.
func (s *Server) handleWaterEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var body struct {
		DeltaLiters float64 `json:"deltaLiters"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	intake, err := s.water.AddIntake(r.Context(), userFromContext(r).ID, body.DeltaLiters)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, intake)
}

func (s *Server) handleWaterReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	day, err := s.water.ResetDay(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleWaterRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.water.ListRecent(r.Context(), userFromContext(r).ID, intQuery(r, "limit", 20))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWaterUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	removed, day, err := s.water.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"undone":      removed != nil,
		"event":       removed,
		"totalLiters": day.TotalLiters,
	})
}
