package config

import (
	"log"
	"os"
)

const (
	defaultDBPath         = "./spls.db"
	defaultPort           = "8080"
	defaultCSVDir         = "./db"
	defaultExchangeAPIURL = "https://api.exchangerate.host/latest?base=USD&symbols=INR"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	AdminMobile    string
	AdminPassword  string
	SessionSecret  string
	DBPath         string
	CSVDir         string
	ExchangeAPIURL string
	Port           string
	Env            string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		AdminMobile:    os.Getenv("ADMIN_MOBILE"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DBPath:         os.Getenv("DB_PATH"),
		CSVDir:         os.Getenv("CSV_DIR"),
		ExchangeAPIURL: os.Getenv("EXCHANGE_API_URL"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("APP_ENV"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.CSVDir == "" {
		cfg.CSVDir = defaultCSVDir
	}
	if cfg.ExchangeAPIURL == "" {
		cfg.ExchangeAPIURL = defaultExchangeAPIURL
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.AdminMobile == "" {
		log.Print("warning: ADMIN_MOBILE is not set")
	}
	if cfg.AdminPassword == "" {
		log.Print("warning: ADMIN_PASSWORD is not set")
	}
	if cfg.SessionSecret == "" {
		log.Print("warning: SESSION_SECRET is not set")
	}

	return cfg
}

// IsDev reports whether the app runs in development mode. Migrations are
// applied automatically only in dev.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == "dev" || c.Env == "development"
}
