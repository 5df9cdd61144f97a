package person

import (
	"context"

	"party-manager-api/internal/domain/party"
)

type Repository interface {
	FetchPersonByID(ctx context.Context, id ID) (*Person, error)
	FetchPeople(ctx context.Context, skip, limit int) (People, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, id ID) (bool, error)
	CreatePerson(ctx context.Context, req Person) (*Person, error)
	UpdatePerson(ctx context.Context, req Person) (bool, error)
	FetchPartyID(ctx context.Context, id ID) (*party.ID, error)
	DeactivatePerson(ctx context.Context, id ID) (bool, error)
}
