package adapthttp

import (
	"net/http"
	"time"

	"nutritrack/internal/domain"
)

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	user := userFromContext(r)
	days := intQuery(r, "days", 90)
	unit, err := unitQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if unit == "" {
		unit = domain.Metric
		if p, perr := s.profile.Get(r.Context(), user.ID); perr == nil && p.UnitSystem != "" {
			unit = p.UnitSystem
		}
	}

	points, err := s.charts.GetDaily(r.Context(), user.ID, days, unit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"today": domain.LocalDay(time.Now()),
		"items": points,
	})
}
