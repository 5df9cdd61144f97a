package party

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"party-manager-api/internal/domain/party"
	"party-manager-api/internal/domain/sentinel"
	"party-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) party.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateParty(ctx context.Context, req party.Party) (*party.Party, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Type == "" {
		req.Type = party.TypePerson
	}
	if req.Status == "" {
		req.Status = party.StatusActive
	}

	p := new(Party)
	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		InsertParty,
		req.ID.String(), string(req.Type), req.DisplayName, string(req.Status),
	).Scan(
		&p.ID,
		&p.PartyType,
		&p.DisplayName,
		&p.Status,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgIntegrityViolation(err) {
			return nil, fmt.Errorf("insert party: %w", sentinel.ErrIntegrityViolation)
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) UpdateDisplayName(ctx context.Context, id party.ID, displayName string) error {
	_, err := postgres.Conn(ctx, r.db).Exec(ctx, UpdateDisplayNameByID, displayName, id.String())
	if err != nil {
		if postgres.IsPgIntegrityViolation(err) {
			return fmt.Errorf("update party display name: %w", sentinel.ErrIntegrityViolation)
		}
		return err
	}

	return nil
}

// ArchiveParty leaves an already archived party untouched.
func (r *Repository) ArchiveParty(ctx context.Context, id party.ID) error {
	_, err := postgres.Conn(ctx, r.db).Exec(ctx, UpdateStatusByID, string(party.StatusArchived), id.String())
	return err
}
