package adapthttp

import (
	"net/http"

	"nutritrack/internal/app"

	"github.com/rs/cors"
)

// Services are the application services the HTTP adapter drives.
type Services struct {
	Auth      *app.AuthService
	Sessions  *app.SessionResolver
	Profile   *app.ProfileService
	Weight    *app.WeightService
	Water     *app.WaterService
	Meals     *app.MealService
	Charts    *app.ChartsService
	Dashboard *app.DashboardService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	authSvc   *app.AuthService
	resolver  *app.SessionResolver
	profile   *app.ProfileService
	weight    *app.WeightService
	water     *app.WaterService
	meals     *app.MealService
	charts    *app.ChartsService
	dashboard *app.DashboardService

	webDir           string
	oidcConfig       OIDCConfig
	corsOrigins      []string
	authLimiter      *rateLimiterStore
	disableAuth      bool
	trustForwardAuth bool
	trustProxy       bool
}

// New creates a Server wired to the given application services.
func New(svc Services, webDir string) *Server {
	return &Server{
		authSvc:     svc.Auth,
		resolver:    svc.Sessions,
		profile:     svc.Profile,
		weight:      svc.Weight,
		water:       svc.Water,
		meals:       svc.Meals,
		charts:      svc.Charts,
		dashboard:   svc.Dashboard,
		webDir:      webDir,
		authLimiter: newRateLimiterStore(1, 5),
	}
}

// WithoutAuth disables authentication; every request acts as a fixed
// development user. Intended for tests and local runs.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// WithOIDC enables single sign-on.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithForwardAuth trusts the Remote-User header set by a reverse proxy.
func (s *Server) WithForwardAuth() *Server {
	s.trustForwardAuth = true
	return s
}

// WithTrustedProxy keys the auth rate limiter on X-Forwarded-For instead of
// the connection's remote address.
func (s *Server) WithTrustedProxy() *Server {
	s.trustProxy = true
	return s
}

// WithCORS allows cross-origin requests with credentials from origins.
func (s *Server) WithCORS(origins []string) *Server {
	s.corsOrigins = origins
	return s
}

// WithAuthRateLimit sets the per-IP token bucket for login endpoints.
// A non-positive rps disables limiting.
func (s *Server) WithAuthRateLimit(rps float64, burst int) *Server {
	if rps <= 0 {
		s.authLimiter = nil
		return s
	}
	s.authLimiter = newRateLimiterStore(rps, burst)
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/config", s.handleConfig)
	api.Handle("/login", s.rateLimit(http.HandlerFunc(s.handleLogin)))
	api.HandleFunc("/logout", s.handleLogout)
	api.Handle("/setup", s.rateLimit(http.HandlerFunc(s.handleSetupUser)))
	api.HandleFunc("/session", s.handleSession)
	api.Handle("/auth/sso/login", s.rateLimit(http.HandlerFunc(s.handleSSOLogin)))
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api.HandleFunc("/calc/targets", s.handleCalcTargets)
	api.HandleFunc("/calc/bmi", s.handleCalcBMI)

	protect := func(pattern string, h http.HandlerFunc) {
		api.Handle(pattern, s.authMiddleware(h))
	}

	protect("/profile", s.handleProfile)
	protect("/profile/plan", s.handleProfilePlan)

	protect("/weight/today", s.handleWeightToday)
	protect("/weight/recent", s.handleWeightRecent)
	protect("/weight/undo-last", s.handleWeightUndoLast)

	protect("/water/today", s.handleWaterToday)
	protect("/water/event", s.handleWaterEvent)
	protect("/water/reset", s.handleWaterReset)
	protect("/water/recent", s.handleWaterRecent)
	protect("/water/undo-last", s.handleWaterUndoLast)

	protect("/meals", s.handleMeals)
	protect("/meals/{id}", s.handleMealDelete)

	protect("/dashboard", s.handleDashboard)
	protect("/charts/daily", s.handleChartsDaily)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	var h http.Handler = withNoCache(root)
	if len(s.corsOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler(h)
	}
	return s.loggingMiddleware(h)
}
