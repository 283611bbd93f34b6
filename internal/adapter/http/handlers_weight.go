package adapthttp

import (
	"net/http"
	"time"

	"nutritrack/internal/domain"
)

// weightDay is today's latest measurement. Label is the entry rendered in the
// requested unit system, "--" when nothing was logged.
type weightDay struct {
	Today string              `json:"today"`
	Entry *domain.WeightEntry `json:"entry"`
	Label string              `json:"label"`
}

func newWeightDay(today string, e *domain.WeightEntry, unit domain.UnitSystem) weightDay {
	d := weightDay{Today: today, Entry: e, Label: domain.FormatWeight(0, unit)}
	if e != nil {
		d.Label = domain.FormatWeight(e.ValueKg, unit)
	}
	return d
}

func (s *Server) handleWeightToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)
	today := domain.LocalDay(time.Now())

	switch r.Method {
	case http.MethodGet:
		unit, err := unitQuery(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		entry, err := s.weight.GetTodayWeight(ctx, user.ID, today)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newWeightDay(today, entry, unit))

	case http.MethodPut:
		var body struct {
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, day, err := s.weight.RecordWeight(ctx, user.ID, body.Value, body.Unit)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		unit, _ := domain.ParseUnitSystem(body.Unit)
		writeJSON(w, http.StatusOK, newWeightDay(day, entry, unit))

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleWeightRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	items, err := s.weight.ListRecent(r.Context(), userFromContext(r).ID, intQuery(r, "limit", 14))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWeightUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	deleted, entry, today, err := s.weight.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted, "weight": newWeightDay(today, entry, "")})
}
