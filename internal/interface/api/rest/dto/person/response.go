package person

import (
	"github.com/google/uuid"
)

type (
	Party struct {
		ID          uuid.UUID `json:"id"`
		PartyType   string    `json:"party_type"`
		DisplayName string    `json:"display_name"`
		Status      string    `json:"status"`
	}
	Person struct {
		ID          uuid.UUID `json:"id"`
		Party       Party     `json:"party"`
		FirstName   string    `json:"first_name"`
		LastName    string    `json:"last_name"`
		DateOfBirth *string   `json:"date_of_birth"`
		Email       string    `json:"email"`
		Phone       *string   `json:"phone"`
		IsActive    bool      `json:"is_active"`
	}
	People []Person
)
