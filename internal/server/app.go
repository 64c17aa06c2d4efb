// Package server initializes and runs the attendance bot application.
// It opens the database, applies migrations, wires the services and the
// session handler, and runs the Telegram poller until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/mohammaddehghani/telegramrepbot/internal/logging"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/bot"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/config"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/services"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/session"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	bot    *bot.Bot
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger := logging.NewLogrusLogger(level)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	identity := services.NewIdentityService(db, m, cfg)
	access := services.NewAccessService(db, m, cfg)
	if cfg.SuperAdminID != 0 {
		// idempotent; makes the bootstrap id visible in the stored grant list
		if err := access.Grant(ctx, cfg.SuperAdminID); err != nil {
			return nil, fmt.Errorf("bootstrap grant error: %w", err)
		}
	}
	ledger := services.NewLedgerService(db, m)
	reports := services.NewReportService(db, m, cfg)
	exports := services.NewExportService(db, m, reports, cfg)

	handler := session.NewHandler(identity, access, ledger, reports, exports, session.NewMemoryStore(), logger)

	b, err := bot.New(cfg.BotToken, int(cfg.PollTimeout.Seconds()), handler, logger)
	if err != nil {
		return nil, err
	}

	return &App{config: cfg, logger: logger, db: db, bot: b}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.bot.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
