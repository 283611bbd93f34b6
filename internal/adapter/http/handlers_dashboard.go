package adapthttp

import (
	"net/http"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	unit, err := unitQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	day, err := dayQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	d, err := s.dashboard.Today(r.Context(), userFromContext(r).ID, day, unit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
