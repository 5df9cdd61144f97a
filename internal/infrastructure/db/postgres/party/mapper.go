package party

import (
	domain "party-manager-api/internal/domain/party"
)

func fromDBModel(model *Party) *domain.Party {
	return &domain.Party{
		ID:          model.ID,
		Type:        domain.Type(model.PartyType),
		DisplayName: model.DisplayName,
		Status:      domain.Status(model.Status),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
