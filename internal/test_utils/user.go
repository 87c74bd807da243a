package test_utils

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
)

// CreateTestUser inserts a user row and returns its id, for repo tests that
// need to satisfy the expenses/sessions foreign keys.
func CreateTestUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()

	var id int
	err := db.QueryRow(
		`INSERT INTO users (uid, username, password_hash, display_name, created_at)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		uuid.New().String(), username, "not-a-real-hash", username, time.Now().UTC().Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}
