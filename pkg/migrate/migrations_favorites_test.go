package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFavoritesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_favorites.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no favorites migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS favorites",
		"FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE",
		"CREATE UNIQUE INDEX IF NOT EXISTS favorites_user_item_key ON favorites (user_id, item_id)",
		"DROP TABLE IF EXISTS favorites",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
