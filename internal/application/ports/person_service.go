package ports

import (
	"context"

	"party-manager-api/internal/domain/person"
)

type PersonService interface {
	FindPersonByID(ctx context.Context, id person.ID) (*person.Person, error)
	FindPeople(ctx context.Context, skip, limit int) (person.People, error)
	CreatePerson(ctx context.Context, p person.Person) (*person.Person, error)
	UpdatePerson(ctx context.Context, id person.ID, patch person.Patch) (*person.Person, error)
	DeletePerson(ctx context.Context, id person.ID) (bool, error)
}
