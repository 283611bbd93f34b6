package adapthttp

import (
	"net/http"
	"strconv"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

// floatQuery parses a required numeric query parameter.
func floatQuery(r *http.Request, key string) (float64, error) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: key, Message: "must be a number"}
	}
	return v, nil
}

// handleCalcTargets computes a plan from query parameters without storing
// anything: weight, height, age, sex, goal, activity (factor or level name),
// optional targetWeight (defaults to weight) and unit.
func (s *Server) handleCalcTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	q := r.URL.Query()

	in := domain.ProfileInput{
		Sex:        q.Get("sex"),
		Goal:       q.Get("goal"),
		UnitSystem: q.Get("unit"),
	}
	var err error
	if in.Weight, err = floatQuery(r, "weight"); err != nil {
		writeServiceError(w, err)
		return
	}
	if in.Height, err = floatQuery(r, "height"); err != nil {
		writeServiceError(w, err)
		return
	}
	if in.AgeYears, err = strconv.Atoi(q.Get("age")); err != nil {
		writeServiceError(w, &domain.ValidationError{Field: "age", Message: "must be a whole number"})
		return
	}
	in.TargetWeight = in.Weight
	if q.Get("targetWeight") != "" {
		if in.TargetWeight, err = floatQuery(r, "targetWeight"); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	activity := q.Get("activity")
	if f, ferr := strconv.ParseFloat(activity, 64); ferr == nil {
		in.ActivityFactor = f
	} else {
		in.ActivityLevel = activity
	}

	p, err := in.Normalize()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	p.StartWeightKg = p.WeightKg
	writeJSON(w, http.StatusOK, app.PlanFor(&p, ""))
}

// handleCalcBMI returns BMI, its category and, when sex is given, the
// healthy weight range for the height.
func (s *Server) handleCalcBMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	unit, err := unitQuery(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if unit == "" {
		unit = domain.Metric
	}
	weight, err := floatQuery(r, "weight")
	if err == nil {
		err = domain.CheckWeight("weight", weight, unit)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	height, err := floatQuery(r, "height")
	if err == nil {
		err = domain.CheckHeight("height", height, unit)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	kg := domain.WeightToKg(weight, unit)
	cm := domain.LengthToCm(height, unit)
	bmi := domain.ComputeBMI(kg, cm)
	body := map[string]any{
		"bmi":      bmi,
		"category": domain.BMICategoryFor(bmi),
		"unit":     unit,
	}
	if raw := r.URL.Query().Get("sex"); raw != "" {
		sex, err := domain.ParseSex(raw)
		if err != nil {
			writeServiceError(w, &domain.ValidationError{Field: "sex", Message: "must be male or female"})
			return
		}
		body["healthyRange"] = domain.HealthyWeightRange(cm, sex).In(unit)
	}
	writeJSON(w, http.StatusOK, body)
}
