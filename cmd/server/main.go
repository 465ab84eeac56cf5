package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/config"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/currency"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/db"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/migrations"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/scenario"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/seed"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

type server struct {
	auth   *authService
	engine *scenario.Engine
	tables tables.Provider
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database, seed.Config{
		AdminMobile:   cfg.AdminMobile,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("failed to run startup seed: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seed inserted %d default rows", stats.Inserts)
	}

	provider := &tables.Fallback{Providers: []tables.Provider{
		&tables.SQLStore{DB: database},
		&tables.CSVDir{Dir: cfg.CSVDir},
	}}
	set := tables.Load(provider)

	fx := currency.NewResolver(currency.NewAPISource(cfg.ExchangeAPIURL), set.Exchange)

	srv := &server{
		auth:   newAuthService(database, cfg.SessionSecret),
		engine: scenario.New(set, fx),
		tables: provider,
	}

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)
	r.Post("/signup", srv.handleSignup)
	r.Post("/login", srv.handleLogin)
	r.Get("/logout", srv.handleLogout)
	r.Get("/api/tables/{table}", srv.handleTableRead)
	r.Post("/api/vessel/estimate", srv.handleVesselEstimate)
	r.Post("/api/cargo/estimate", srv.handleCargoEstimate)
	r.Post("/api/rail/estimate", srv.handleRailEstimate)
	r.Post("/api/storage/estimate", srv.handleStorageEstimate)
	r.Post("/api/stevedore/estimate", srv.handleStevedoreEstimate)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/signup" || r.URL.Path == "/login" {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAuthenticated(r *http.Request, auth *authService) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}

	_, ok := auth.verifySessionValue(cookie.Value)
	return ok
}

func (s *server) handleTableRead(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimSpace(chi.URLParam(r, "table"))
	if !tables.KnownTable(table) {
		writeError(w, http.StatusNotFound, "unknown table")
		return
	}

	rows, err := s.tables.Rows(table)
	if err != nil {
		log.Printf("read table %s: %v", table, err)
		writeError(w, http.StatusInternalServerError, "failed to read table")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"table": table, "rows": rows})
}
