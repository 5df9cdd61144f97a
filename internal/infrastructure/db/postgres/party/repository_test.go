package party

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "party-manager-api/internal/domain/party"
	"party-manager-api/internal/domain/sentinel"
)

var partyColumns = []string{"id", "party_type", "display_name", "status", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_CreateParty(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		expect  func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(InsertParty).
					WithArgs(id.String(), "person", "John Doe", "active").
					WillReturnRows(pgxmock.NewRows(partyColumns).
						AddRow(id.String(), "person", "John Doe", "active", now, now))
			},
		},
		{
			name: "integrity violation",
			expect: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(InsertParty).
					WithArgs(id.String(), "person", "John Doe", "active").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: sentinel.ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.expect(mock)

			p, err := NewRepository(mock).CreateParty(context.Background(), domain.Party{
				ID:          id,
				DisplayName: "John Doe",
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, id, p.ID)
				assert.Equal(t, domain.TypePerson, p.Type)
				assert.Equal(t, domain.StatusActive, p.Status)
				assert.Equal(t, "John Doe", p.DisplayName)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateParty_GeneratesID(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	id := uuid.New()

	mock.ExpectQuery(InsertParty).
		WithArgs(pgxmock.AnyArg(), "person", "Jane Roe", "active").
		WillReturnRows(pgxmock.NewRows(partyColumns).AddRow(id.String(), "person", "Jane Roe", "active", now, now))

	p, err := NewRepository(mock).CreateParty(context.Background(), domain.Party{DisplayName: "Jane Roe"})
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateDisplayName(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(UpdateDisplayNameByID).
		WithArgs("Johnny Doe", id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewRepository(mock).UpdateDisplayName(context.Background(), id, "Johnny Doe"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ArchiveParty(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	dbErr := errors.New("connection reset")

	mock.ExpectExec(UpdateStatusByID).
		WithArgs("archived", id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(UpdateStatusByID).
		WithArgs("archived", id.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(UpdateStatusByID).
		WithArgs("archived", id.String()).
		WillReturnError(dbErr)

	repo := NewRepository(mock)
	require.NoError(t, repo.ArchiveParty(context.Background(), id))
	require.NoError(t, repo.ArchiveParty(context.Background(), id), "archiving twice is not an error")
	require.ErrorIs(t, repo.ArchiveParty(context.Background(), id), dbErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
