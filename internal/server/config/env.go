package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// .env file first when one is present.
func parseEnv(config *Config) {
	// missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		config.BotToken = v
	}
	if v := os.Getenv("SUPER_ADMIN"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.SuperAdminID = id
		}
	}
	if v := os.Getenv("EMPLOYEE_CODE_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			config.EmployeeCodeWidth = w
		}
	}
	if v := os.Getenv("POLL_TIMEOUT_SECONDS"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			config.PollTimeout = time.Duration(s) * time.Second
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}
