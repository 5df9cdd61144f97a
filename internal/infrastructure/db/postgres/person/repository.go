package person

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainParty "party-manager-api/internal/domain/party"
	"party-manager-api/internal/domain/person"
	"party-manager-api/internal/domain/sentinel"
	"party-manager-api/internal/infrastructure/db/postgres"
	"party-manager-api/internal/infrastructure/db/postgres/party"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) person.Repository {
	return &Repository{db: db}
}

func scanComposed(row pgx.Row) (*Person, error) {
	p := &Person{Party: new(party.Party)}
	err := row.Scan(
		&p.ID,
		&p.PartyID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&p.Email,
		&p.Phone,
		&p.IsActive,

		&p.Party.ID,
		&p.Party.PartyType,
		&p.Party.DisplayName,
		&p.Party.Status,
		&p.Party.CreatedAt,
		&p.Party.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) FetchPeople(ctx context.Context, skip, limit int) (person.People, error) {
	rows, err := postgres.Conn(ctx, r.db).Query(ctx, SelectPeople, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := People{}
	for rows.Next() {
		p, err := scanComposed(rows)
		if err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchPersonByID(ctx context.Context, id person.ID) (*person.Person, error) {
	p, err := scanComposed(postgres.Conn(ctx, r.db).QueryRow(ctx, SelectPersonByID, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, SelectEmailExists, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) EmailTakenByOther(ctx context.Context, email string, id person.ID) (bool, error) {
	var exists bool
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, SelectEmailExistsExcept, email, id.String()).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreatePerson(ctx context.Context, req person.Person) (*person.Person, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	p := new(Person)
	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		InsertPerson,
		req.ID.String(), req.PartyID.String(), req.FirstName, req.LastName, req.DateOfBirth, req.Email, req.Phone,
	).Scan(
		&p.ID,
		&p.PartyID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&p.Email,
		&p.Phone,
		&p.IsActive,
	)
	if err != nil {
		if postgres.IsPgIntegrityViolation(err) {
			return nil, fmt.Errorf("insert person: %w", sentinel.ErrIntegrityViolation)
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

// UpdatePerson writes the mutable fields of an active person. party_id is
// never part of the statement. It reports whether a row was updated.
func (r *Repository) UpdatePerson(ctx context.Context, req person.Person) (bool, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, UpdatePersonByID,
		req.FirstName, req.LastName, req.DateOfBirth, req.Email, req.Phone, req.ID.String(),
	)
	if err != nil {
		if postgres.IsPgIntegrityViolation(err) {
			return false, fmt.Errorf("update person: %w", sentinel.ErrIntegrityViolation)
		}
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// FetchPartyID looks the person up regardless of is_active.
func (r *Repository) FetchPartyID(ctx context.Context, id person.ID) (*domainParty.ID, error) {
	var partyID uuid.UUID
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, SelectPartyIDByID, id.String()).Scan(&partyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &partyID, nil
}

// DeactivatePerson reports whether the person was active before the call.
func (r *Repository) DeactivatePerson(ctx context.Context, id person.ID) (bool, error) {
	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, DeactivatePersonByID, id.String())
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
