package postgres

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	createThings = "CREATE TABLE things (id INT);"
	createOthers = "CREATE TABLE others (id INT);"
)

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"migrations/0002_others.sql": {Data: []byte(upMarker + "\n" + createOthers + "\n" + downMarker + "\nDROP TABLE others;\n")},
		"migrations/0001_things.sql": {Data: []byte(createThings)},
		"migrations/README.md":       {Data: []byte("not a migration")},
	}
}

func TestApplyMigrations_AppliesPendingInOrder(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(createMigrationsTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectQuery(selectMigrationApplied).WithArgs("0001_things.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(selectMigrationApplied).WithArgs("0002_others.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("\n" + createOthers + "\n").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(insertMigration).WithArgs("0002_others.sql").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := applyMigrations(context.Background(), zap.NewNop(), mock, testMigrations())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMigrations_FailureRollsBack(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("syntax error")

	mock.ExpectExec(createMigrationsTable).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(selectMigrationApplied).WithArgs("0001_things.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(createThings).WillReturnError(boom)
	mock.ExpectRollback()

	err := applyMigrations(context.Background(), zap.NewNop(), mock, testMigrations())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "0001_things.sql")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpSection(t *testing.T) {
	assert.Equal(t, createThings, upSection(createThings))
	assert.Equal(t, "\nA;\n", upSection(upMarker+"\nA;\n"+downMarker+"\nB;\n"))
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	b, err := migrationsFS.ReadFile("migrations/0001_parties_people.sql")
	require.NoError(t, err)
	up := upSection(string(b))
	assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS parties")
	assert.Contains(t, up, "email         TEXT    NOT NULL UNIQUE")
	assert.NotContains(t, up, "DROP TABLE")
}
