package party

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID     = uuid.UUID
	Type   string
	Status string
	Party  struct {
		ID          ID
		Type        Type
		DisplayName string
		Status      Status

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)

const (
	TypePerson Type = "person"

	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)
