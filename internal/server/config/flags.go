package config

import (
	"flag"
	"os"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-t string   Telegram bot token
//	-a int64    bootstrap super-admin external id
//	-w int      employee code zero-padding width
//	-p int      long-poll timeout, seconds
//	-l string   log level
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// components (e.g. go test) do not interfere.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-a", "-w", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BotToken, "t", config.BotToken, "telegram bot token")
	fs.Int64Var(&config.SuperAdminID, "a", config.SuperAdminID, "super admin external id")
	fs.IntVar(&config.EmployeeCodeWidth, "w", config.EmployeeCodeWidth, "employee code width")
	pollSeconds := fs.Int("p", int(config.PollTimeout.Seconds()), "poll timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PollTimeout = time.Duration(*pollSeconds) * time.Second
}
