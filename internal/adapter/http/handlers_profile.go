package adapthttp

import (
	"net/http"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		p, err := s.profile.Get(ctx, user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p})

	case http.MethodPut:
		var in domain.ProfileInput
		if err := parseJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.profile.Save(ctx, user.ID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p, "plan": app.PlanFor(p, "")})

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleProfilePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	unit, err := unitQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	plan, err := s.profile.Plan(r.Context(), userFromContext(r).ID, unit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
