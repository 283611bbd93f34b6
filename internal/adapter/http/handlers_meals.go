package adapthttp

import (
	"net/http"
)

func (s *Server) handleMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		day, err := dayQuery(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		items, total, err := s.meals.ListDay(ctx, user.ID, day)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"day": day, "items": items, "totalKcal": total})

	case http.MethodPost:
		var body struct {
			Name string `json:"name"`
			Kcal int    `json:"kcal"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		meal, err := s.meals.LogMeal(ctx, user.ID, body.Name, body.Kcal)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, meal)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleMealDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.meals.Delete(r.Context(), userFromContext(r).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
