package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "nutritrack/internal/adapter/http"
	"nutritrack/internal/adapter/memory"
	"nutritrack/internal/adapter/postgres"
	"nutritrack/internal/app"
	"nutritrack/internal/config"
	"nutritrack/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

// repos groups the ports a storage backend provides.
type repos struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	profiles domain.ProfileRepository
	weights  domain.WeightRepository
	water    domain.WaterRepository
	meals    domain.MealRepository
}

func main() {
	cfg := config.Load()

	var r repos
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, using in-memory store")
		db := memory.New()
		r = repos{db, db.NewSessionRepo(), db, db, db, db}
	} else {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		r = repos{db, postgres.NewSessionRepo(db), db, db, db, db}
	}

	authSvc := app.NewAuthService(r.users, r.sessions).WithSessionTTL(cfg.SessionTTL)
	profileSvc := app.NewProfileService(r.profiles)
	mealSvc := app.NewMealService(r.meals)
	waterSvc := app.NewWaterService(r.water)

	svc := adapthttp.Services{
		Auth:      authSvc,
		Sessions:  app.NewSessionResolver(authSvc, profileSvc),
		Profile:   profileSvc,
		Weight:    app.NewWeightService(r.weights, r.profiles),
		Water:     waterSvc,
		Meals:     mealSvc,
		Charts:    app.NewChartsService(r.weights, r.water, r.meals),
		Dashboard: app.NewDashboardService(profileSvc, mealSvc, waterSvc),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	srv := adapthttp.New(svc, cfg.WebDir).
		WithOIDC(oidcCfg).
		WithCORS(cfg.CORSAllowedOrigins).
		WithAuthRateLimit(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	if cfg.TrustForwardAuth {
		srv.WithForwardAuth()
	}
	if cfg.TrustProxy {
		srv.WithTrustedProxy()
	}

	go purgeSessions(ctx, authSvc, time.Hour)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// purgeSessions deletes expired sessions every interval until ctx ends.
func purgeSessions(ctx context.Context, auth *app.AuthService, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := auth.PurgeExpiredSessions(ctx); err != nil {
				log.Printf("purge sessions: %v", err)
			}
		}
	}
}
