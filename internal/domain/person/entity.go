package person

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"party-manager-api/internal/domain/party"
)

type (
	ID = uuid.UUID
	// Person is the composed view: the person row plus its party.
	Person struct {
		ID          ID
		PartyID     party.ID
		FirstName   string
		LastName    string
		DateOfBirth *time.Time
		Email       string
		Phone       *string
		IsActive    bool

		Party *party.Party
	}
	People []*Person

	// Patch holds the fields of a partial update, nil meaning "leave as is".
	Patch struct {
		FirstName   *string
		LastName    *string
		DateOfBirth *time.Time
		Email       *string
		Phone       *string
	}
)

func DisplayName(firstName, lastName string) string {
	return firstName + " " + lastName
}

// NormalizeEmail trims the address and lowercases its domain. The local part
// keeps its case.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

func (p Patch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.DateOfBirth == nil &&
		p.Email == nil &&
		p.Phone == nil
}

func (p Patch) TouchesName() bool {
	return p.FirstName != nil || p.LastName != nil
}

// Apply copies the provided patch fields onto the person.
func (p *Person) Apply(patch Patch) {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		dob := *patch.DateOfBirth
		p.DateOfBirth = &dob
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		phone := *patch.Phone
		p.Phone = &phone
	}
}
