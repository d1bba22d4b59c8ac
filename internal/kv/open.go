package kv

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/festy23/goalboard/internal/config"
	"github.com/festy23/goalboard/internal/database/database"
	"github.com/festy23/goalboard/internal/database/migrate"
)

// Open connects the backend selected by storage and namespaces it with storage.KeyPrefix.
func Open(ctx context.Context, storage appConfig.StorageConfig, redisCfg appConfig.RedisConfig, logger *zap.SugaredLogger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch {
	case storage.UsesDatabase():
		store, err = openDatabase(storage, logger)
	case storage.Backend == appConfig.BackendRedis:
		store, err = DialRedis(ctx, redisCfg, logger)
	case storage.Backend == appConfig.BackendMemory:
		logger.Warnw("using in-memory storage, state is lost on restart")
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Infow("storage ready", "backend", storage.Backend, "key_prefix", storage.KeyPrefix)
	return WithPrefix(store, storage.KeyPrefix), nil
}

// openDatabase connects through gorm and prepares the kv_entries table: PostgreSQL
// through golang-migrate, SQLite through AutoMigrate.
func openDatabase(storage appConfig.StorageConfig, logger *zap.SugaredLogger) (Store, error) {
	var (
		db     *gorm.DB
		err    error
		schema func(*gorm.DB) error
	)
	if storage.Backend == appConfig.BackendSQLite {
		db, err = database.NewSQLite(storage.SQLitePath, logger)
		schema = EnsureSchema
	} else {
		db, err = database.New(logger)
		schema = func(db *gorm.DB) error { return migrate.Migrate(db, logger) }
	}
	if err != nil {
		return nil, err
	}

	if err := schema(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to prepare kv schema: %w", err)
	}

	return NewGormStore(db, logger), nil
}
