package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDatabase(DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNewDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := NewDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, Ping(db))
}

func TestContainsFoldEscapesWildcards(t *testing.T) {
	assert.Equal(t, `50\% off \_ today \\ now`, likeEscaper.Replace(`50% off _ today \ now`))
}
