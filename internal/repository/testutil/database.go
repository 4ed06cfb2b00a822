package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/themizzi/swagtest/internal/config"
	"github.com/themizzi/swagtest/internal/database"
)

// TestDatabase is a migrated schema private to one test
type TestDatabase struct {
	DB         *sql.DB
	SchemaName string
	admin      *sql.DB
}

// SetupTestDatabase creates a fresh schema holding the order tables and drops it
// when the test ends. Skipped unless POSTGRES_HOSTNAME is set.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	if !config.PostgresConfigured(os.Getenv) {
		t.Skip(config.EnvPostgresHost + " not set, skipping PostgreSQL test")
	}

	cfg, err := config.LoadPostgresConfig(func(key string) string {
		if v := os.Getenv(key); v != "" || key != "POSTGRES_PASSWORD" {
			return v
		}
		return "postgres"
	})
	if err != nil {
		t.Fatalf("Failed to load postgres config: %v", err)
	}

	admin, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}

	td := &TestDatabase{
		SchemaName: "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		admin:      admin,
	}
	t.Cleanup(func() { td.Teardown(t) })

	if _, err := admin.Exec("CREATE SCHEMA " + td.SchemaName); err != nil {
		t.Fatalf("Failed to create schema %s: %v", td.SchemaName, err)
	}

	td.DB, err = sql.Open("postgres", fmt.Sprintf("%s&search_path=%s", cfg.ConnectionString(), td.SchemaName))
	if err != nil {
		t.Fatalf("Failed to open schema %s: %v", td.SchemaName, err)
	}
	td.DB.SetMaxOpenConns(5)

	if err := database.RunMigrations(td.DB); err != nil {
		t.Fatalf("Failed to migrate schema %s: %v", td.SchemaName, err)
	}
	return td
}

// Teardown closes the schema connection and drops the schema. Safe to call twice.
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	if td.DB != nil {
		td.DB.Close()
		td.DB = nil
	}
	if td.admin == nil {
		return
	}
	if _, err := td.admin.Exec("DROP SCHEMA IF EXISTS " + td.SchemaName + " CASCADE"); err != nil {
		t.Logf("Warning: failed to drop schema %s: %v", td.SchemaName, err)
	}
	td.admin.Close()
	td.admin = nil
}
