package sqlxrepos

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/vicsion901-rgb/onlyteaching/storage/database"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("setupDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db, "sqlite"); err != nil {
		t.Fatalf("setupDB() failed: %v", err)
	}
	return db
}
