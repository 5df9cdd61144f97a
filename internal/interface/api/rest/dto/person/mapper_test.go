package person

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"party-manager-api/internal/domain/party"
	"party-manager-api/internal/domain/person"
)

func strPtr(s string) *string { return &s }

func TestToResponsePerson(t *testing.T) {
	dob := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	p := person.Person{
		ID:          uuid.New(),
		PartyID:     uuid.New(),
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: &dob,
		Email:       "john.doe@example.com",
		IsActive:    true,
	}
	p.Party = &party.Party{ID: p.PartyID, Type: party.TypePerson, DisplayName: "John Doe", Status: party.StatusActive}

	resp := ToResponsePerson(p)

	assert.Equal(t, p.ID, resp.ID)
	require.NotNil(t, resp.DateOfBirth)
	assert.Equal(t, "1990-05-15", *resp.DateOfBirth)
	assert.Nil(t, resp.Phone)
	assert.Equal(t, Party{ID: p.PartyID, PartyType: "person", DisplayName: "John Doe", Status: "active"}, resp.Party)
}

func TestToDomainPerson(t *testing.T) {
	p, err := ToDomainPerson(CreateRequest{
		FirstName:   "  José ",
		LastName:    "Doe ",
		Email:       " jose@example.com ",
		DateOfBirth: strPtr("1990-05-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, "José", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "jose@example.com", p.Email)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, 1990, p.DateOfBirth.Year())

	p, err = ToDomainPerson(CreateRequest{FirstName: "John", LastName: "Doe", Email: "John@Example.COM"})
	require.NoError(t, err)
	assert.Equal(t, "John@example.com", p.Email, "domain is case-folded, local part kept")

	_, err = ToDomainPerson(CreateRequest{DateOfBirth: strPtr("yesterday")})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestToDomainPatch(t *testing.T) {
	patch, err := ToDomainPatch(UpdateRequest{})
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())

	patch, err = ToDomainPatch(UpdateRequest{Email: strPtr(" john@EXAMPLE.com")})
	require.NoError(t, err)
	require.NotNil(t, patch.Email)
	assert.Equal(t, "john@example.com", *patch.Email)

	patch, err = ToDomainPatch(UpdateRequest{FirstName: strPtr(" Johnny "), Phone: strPtr("+1-555-0199")})
	require.NoError(t, err)
	require.NotNil(t, patch.FirstName)
	assert.Equal(t, "Johnny", *patch.FirstName)
	assert.Nil(t, patch.LastName)
	assert.Nil(t, patch.Email)
	require.NotNil(t, patch.Phone)
	assert.Equal(t, "+1-555-0199", *patch.Phone)
}
