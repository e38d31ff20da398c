package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec(`CREATE TABLE user_entity_consumption (
		userid TEXT NOT NULL,
		resourceid TEXT NOT NULL,
		status INTEGER,
		Progress INTEGER,
		PRIMARY KEY (userid, resourceid))`).Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "user_entity_consumption")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["userid"])
	assert.Equal(t, "integer", colMap["status"])
	assert.Equal(t, "integer", colMap["progress"], "names are lower-cased")

	// PRAGMA table_info returns no rows for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("UserID", "VARCHAR(64)", "NO", "PRI", nil, "").
		AddRow("status", "int", "YES", "", "0", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `user_entity_consumption`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "user_entity_consumption")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "userid", columns[0].Field)
	assert.Equal(t, "varchar(64)", columns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery("SHOW COLUMNS").WillReturnError(assert.AnError)
	_, err = GetTableColumns(db, "missing")
	assert.ErrorContains(t, err, "failed to get columns for table missing")
}
