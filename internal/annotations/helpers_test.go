package annotations

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"swatch/internal/db"
)

func newDatabaseForTest(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Bootstrap(filepath.Join(t.TempDir(), "scales.db"))
	if err != nil {
		t.Fatalf("bootstrap test database: %v", err)
	}

	// annotation_sources references colour_scales.
	if _, err := database.Exec(
		"INSERT INTO colour_scales(scale_key, updated_at) VALUES (?, ?)",
		"tips:host",
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		t.Fatalf("insert colour scale: %v", err)
	}

	return database
}
