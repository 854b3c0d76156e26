package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/driplog/drip/internal/storage/postgres"
	"github.com/driplog/drip/internal/storage/sqlite"
)

// IsPostgresConfig reports whether the config value names a PostgreSQL
// database rather than a SQLite file path.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password. Those are rejected at startup; credentials
// belong in the OS keyring, the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	valid, err := postgres.ValidateConnString(connStr)
	return !valid && errors.Is(err, postgres.ErrEmbeddedCredentials)
}

// NewFromConfig builds the Provider matching the config value: a PostgreSQL
// store for connection strings, a SQLite store for file paths (with ~
// expanded).
func NewFromConfig(config string) Provider {
	if IsPostgresConfig(config) {
		return postgres.New(config)
	}
	return sqlite.NewStore(ExpandPath(config))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
