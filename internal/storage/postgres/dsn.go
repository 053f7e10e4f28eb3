package postgres

import (
	"fmt"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
)

// DSN returns DB_DSN when set, otherwise a keyword/value string built from the
// individual settings. Both lib/pq and pgx accept this form.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
