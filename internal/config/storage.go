package config

import "fmt"

// Storage backends.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Policies for stored state that fails to decode.
const (
	OnCorruptFail  = "fail"
	OnCorruptReset = "reset"
)

// StorageConfig holds persistence configuration for task and goal collections.
type StorageConfig struct {
	// Backend selects the key-value store (postgres, sqlite, redis, memory).
	Backend string
	// KeyPrefix is prepended to every persisted key.
	KeyPrefix string
	// OnCorrupt decides what happens when a stored collection is not valid JSON (fail, reset).
	OnCorrupt string
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string
}

// LoadStorageConfigFromEnv loads storage configuration from environment variables.
func LoadStorageConfigFromEnv() StorageConfig {
	return StorageConfig{
		Backend:    GetEnv("STORAGE_BACKEND", BackendPostgres),
		KeyPrefix:  GetEnv("STORAGE_KEY_PREFIX", ""),
		OnCorrupt:  GetEnv("STATE_ON_CORRUPT", OnCorruptFail),
		SQLitePath: GetEnv("SQLITE_PATH", "goalboard.db"),
	}
}

// Validate validates storage configuration.
func (c StorageConfig) Validate() error {
	validBackends := map[string]bool{
		BackendPostgres: true,
		BackendSQLite:   true,
		BackendRedis:    true,
		BackendMemory:   true,
	}
	if !validBackends[c.Backend] {
		return fmt.Errorf("invalid STORAGE_BACKEND: %s (must be: postgres, sqlite, redis, memory)", c.Backend)
	}

	if c.OnCorrupt != OnCorruptFail && c.OnCorrupt != OnCorruptReset {
		return fmt.Errorf("invalid STATE_ON_CORRUPT: %s (must be: fail, reset)", c.OnCorrupt)
	}

	if c.Backend == BackendSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required for sqlite backend")
	}

	return nil
}

// UsesDatabase reports whether the backend is served through gorm.
func (c StorageConfig) UsesDatabase() bool {
	return c.Backend == BackendPostgres || c.Backend == BackendSQLite
}

// ResetOnCorrupt reports whether corrupt state should be replaced by defaults.
func (c StorageConfig) ResetOnCorrupt() bool {
	return c.OnCorrupt == OnCorruptReset
}
