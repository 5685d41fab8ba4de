package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/database"
)

// NewTestDB creates an isolated in-memory database for a test and closes it
// on cleanup
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}
