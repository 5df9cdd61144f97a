package party

import (
	"time"

	"github.com/google/uuid"
)

type Party struct {
	ID          uuid.UUID
	PartyType   string
	DisplayName string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
