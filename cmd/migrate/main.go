package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/application/storedata"
	"github.com/storeadmin/backend/internal/infrastructure/cache"
	"github.com/storeadmin/backend/internal/infrastructure/config"
	"github.com/storeadmin/backend/internal/infrastructure/legacy"
	"github.com/storeadmin/backend/internal/infrastructure/logger"
	"github.com/storeadmin/backend/internal/infrastructure/persistence"
)

// Copies every store document from the legacy MongoDB world into the
// relational tables. Safe to re-run: saves are upserts.
func main() {
	var (
		logLevel string
		timeout  time.Duration
	)
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.DurationVar(&timeout, "timeout", 30*time.Minute, "Overall migration timeout")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := persistence.EnsureSchema(db.DB); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	legacyStore, err := legacy.NewMongoStore(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to legacy store", zap.Error(err))
	}
	defer func() {
		_ = legacyStore.Close(context.Background())
	}()

	reconciler := storedata.NewReconciler(
		persistence.NewGormTableStore(db.DB),
		cache.NewRedisBackupCache(redisClient, cfg.App.Name),
		legacyStore,
		cfg.DataAdmin.ConfirmationCode,
		log,
	)

	migrationLog, err := reconciler.MigrateAllLegacyDataToRelational(ctx)
	for _, line := range migrationLog {
		fmt.Println(line)
	}
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Migration complete", zap.Int("stores", len(migrationLog)))
}
