package person

import (
	"time"

	"github.com/google/uuid"

	"party-manager-api/internal/infrastructure/db/postgres/party"
)

type (
	Person struct {
		ID          uuid.UUID
		PartyID     uuid.UUID
		FirstName   string
		LastName    string
		DateOfBirth *time.Time
		Email       string
		Phone       *string
		IsActive    bool

		Party *party.Party
	}
	People []*Person
)
