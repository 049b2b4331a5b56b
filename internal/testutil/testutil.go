// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"atsmatch/internal/db"
	"atsmatch/internal/models"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses TEST_DATABASE_URL and skips the test when it is not set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		database.Pool.Exec(ctx, "DELETE FROM analyses")
		database.Close()
	}

	return database, cleanup
}

// CreateTestAnalysis stores an analysis created at the given time and returns it.
func CreateTestAnalysis(t *testing.T, database *db.DB, label string, createdAt time.Time) *models.Analysis {
	t.Helper()

	a := &models.Analysis{
		Source:          models.SourceText,
		Score:           50,
		Label:           label,
		TotalJDKeywords: 2,
		TotalMatched:    1,
		CreatedAt:       createdAt,
	}
	if err := database.RecordAnalysis(context.Background(), a); err != nil {
		t.Fatalf("failed to create test analysis: %v", err)
	}
	return a
}
