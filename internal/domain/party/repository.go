package party

import (
	"context"
)

type Repository interface {
	CreateParty(ctx context.Context, req Party) (*Party, error)
	UpdateDisplayName(ctx context.Context, id ID, displayName string) error
	ArchiveParty(ctx context.Context, id ID) error
}
