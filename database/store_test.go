package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var now = time.Now()

// newTestStore wires a GORMStore to a sqlmock connection. Queries are matched
// by regexp fragment, not full SQL, to keep the tests from breaking on GORM
// formatting details.
func newTestStore(t *testing.T) (*GORMStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGORMStore(gdb), mock
}

func todoColumns() []string {
	return []string{"id", "title", "description", "priority", "status", "created_by_id", "create_date", "modified_date"}
}

func userColumns() []string {
	return []string{"id", "first_name", "last_name", "username", "email", "password_hash", "is_superuser", "token_version"}
}
