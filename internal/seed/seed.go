package seed

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Defaults inserted when the corresponding master is empty. They keep the
// estimators usable on a fresh database before any rate export is loaded.
const (
	defaultWagonType    = "BOXN"
	defaultRakeSize     = "59"
	defaultFreeHours    = "8"
	defaultINRPerUSD    = "82.5"
	defaultTHCContainer = "18"
	defaultTHCBreakBulk = "24"
)

// Config contains the values required by startup seed.
type Config struct {
	AdminMobile   string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(tx, cfg.AdminMobile, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureCurrencyRow(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureDefaultWagon(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureTerminalHandling(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(tx *sql.Tx, mobile, password string, stats *Stats) error {
	if mobile == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE mobile = ? LIMIT 1)`, mobile).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO users (mobile, password_hash) VALUES (?, ?)`, mobile, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureCurrencyRow(tx *sql.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM "VM_currency_lookup"`).Scan(&count); err != nil {
		return fmt.Errorf("count currency rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := tx.Exec(`INSERT INTO "VM_currency_lookup" ("INR", "USD") VALUES (?, '1')`, defaultINRPerUSD); err != nil {
		return fmt.Errorf("insert default currency row: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureDefaultWagon(tx *sql.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM "RM_WagonMaster"`).Scan(&count); err != nil {
		return fmt.Errorf("count wagon rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO "RM_WagonMaster" ("wagon_type", "Wagon_Group", "Rake_Size", "Free_Hours")
		VALUES (?, 'Open', ?, ?)
	`, defaultWagonType, defaultRakeSize, defaultFreeHours); err != nil {
		return fmt.Errorf("insert default wagon: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureTerminalHandling(tx *sql.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM "RM_TerminalHandling"`).Scan(&count); err != nil {
		return fmt.Errorf("count terminal handling rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, row := range [][2]string{
		{"containerised", defaultTHCContainer},
		{"non_containerised", defaultTHCBreakBulk},
	} {
		if _, err := tx.Exec(`INSERT INTO "RM_TerminalHandling" ("cargo_type", "THC_rate") VALUES (?, ?)`, row[0], row[1]); err != nil {
			return fmt.Errorf("insert terminal handling rate: %w", err)
		}
		stats.Inserts++
	}
	return nil
}
