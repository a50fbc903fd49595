package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StavrosT-sys/Enhanced-Vocab112/store/sqlite"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}
